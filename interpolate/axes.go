package interpolate

import (
	"errors"
	"fmt"
	"math"
)

// Scale selects the transform applied to one axis before fitting.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

var ErrUnknownScale = errors.New("unknown axis scale")

// Axes moves sample coordinates into the space where the numeric fit is
// well-behaved and converts fitted values back into original units.
// Unknown scales fail at construction, not at evaluation time.
type Axes struct {
	wx  []func(float64) float64
	wy  func(float64) float64
	inv func(float64) float64
}

func identity(x float64) float64 { return x }

func transforms(s Scale) (forward, inverse func(float64) float64, err error) {
	switch s {
	case ScaleLinear:
		return identity, identity, nil
	case ScaleLog:
		return math.Log, math.Exp, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownScale, s)
}

// NewAxes builds the wrapper for the given independent-axis scales and the
// dependent-axis scale.
func NewAxes(independent []Scale, dependent Scale) (*Axes, error) {
	a := &Axes{}
	for _, s := range independent {
		forward, _, err := transforms(s)
		if err != nil {
			return nil, err
		}
		a.wx = append(a.wx, forward)
	}

	forward, inverse, err := transforms(dependent)
	if err != nil {
		return nil, err
	}
	a.wy = forward
	a.inv = inverse

	return a, nil
}

// Levels returns the number of independent axes.
func (a *Axes) Levels() int {
	return len(a.wx)
}

// X transforms one coordinate of the given independent axis.
func (a *Axes) X(axis int, v float64) float64 {
	return a.wx[axis](v)
}

// Y transforms a dependent-axis sample.
func (a *Axes) Y(v float64) float64 {
	return a.wy(v)
}

// Correct wraps a fit performed in transformed space so that it accepts
// query points and returns values in original units.
func (a *Axes) Correct(fit func([]float64) float64) func([]float64) float64 {
	return func(point []float64) float64 {
		transformed := make([]float64, len(point))
		for i, x := range point {
			transformed[i] = a.wx[i](x)
		}
		return a.inv(fit(transformed))
	}
}
