package builders

import (
	"errors"

	"github.com/misho104/SUSY-crosssection/core"
)

// NextSlice creates next and hasNext functions from provided rows.
// preprocess is an optional function which converts a single slice element
// to a row before yielding it.
func NextSlice[T any](values []T, preprocess func(T) core.Row) (func() (core.Row, error), func() bool) {
	index := 0

	hasNext := func() bool {
		return index < len(values)
	}

	// iterator functions
	next := func() (core.Row, error) {
		if !hasNext() {
			return nil, errors.New("no next row")
		}

		row := preprocess(values[index])
		index++
		return row, nil
	}

	return next, hasNext
}

// NextNil creates next and hasNext functions that don't return anything (no rows)
func NextNil() (func() (core.Row, error), func() bool) {
	hasNext := func() bool {
		return false
	}

	// iterator functions
	next := func() (core.Row, error) {
		return nil, errors.New("no next row")
	}

	return next, hasNext
}
