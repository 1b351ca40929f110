// Package fitters holds the numeric backends that fit a 1-D function to
// samples under a given interpolation kind.
package fitters

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errNoValidKindAliases = errors.New("no valid kind aliases provided")
	ErrUnknownKind        = errors.New("no fitter registered for provided kind")
)

// Fitter builds a 1-D function from samples given with ascending xs.
// How queries outside the sampled range behave is up to the implementation.
type Fitter interface {
	Fit(xs, ys []float64) (func(float64) float64, error)
}

// registeredFitters holds implemented fit backends - specific backends
// register themselves in their init functions.
var registeredFitters = make(map[string]Fitter)

// register registers a new backend for a specific fit kind
func register(fitter Fitter, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidKindAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredFitters[strings.ToLower(alias)] = fitter
	}

	if invalidCount == len(aliases) {
		return errNoValidKindAliases
	}

	return nil
}

// Get returns the backend registered under the given kind.
func Get(kind string) (Fitter, error) {
	fitter, ok := registeredFitters[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return fitter, nil
}

// Kinds lists every registered kind alias.
func Kinds() []string {
	kinds := make([]string, 0, len(registeredFitters))
	for kind := range registeredFitters {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
