package mock

import (
	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/builders"
)

// Source is an in-memory grid-table source for tests.
type Source struct {
	header core.Header
	rows   []core.Row

	// LastOptions records the reader options passed to the latest Rows call.
	LastOptions map[string]any
}

func NewSource(header core.Header, rows []core.Row) *Source {
	return &Source{
		header: header,
		rows:   rows,
	}
}

func (s *Source) Rows(opts map[string]any) (core.ResultStream, error) {
	s.LastOptions = opts

	next, hasNext := builders.NextSlice(s.rows, func(r core.Row) core.Row { return r })

	return builders.NewResultBuilder().
		WithNextFunc(next, hasNext).
		WithHeader(s.header).
		Build(), nil
}
