package fitters

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Register backends
func init() {
	_ = register(newGonum(func() interp.FittablePredictor { return &interp.PiecewiseLinear{} }), "linear")
	_ = register(newGonum(func() interp.FittablePredictor { return &interp.NaturalCubic{} }), "cubic", "spline")
	_ = register(newGonum(func() interp.FittablePredictor { return &interp.AkimaSpline{} }), "akima")
	_ = register(newGonum(func() interp.FittablePredictor { return &interp.FritschButland{} }), "pchip", "monotone")
	_ = register(newGonum(func() interp.FittablePredictor { return &interp.PiecewiseConstant{} }), "previous")
}

var _ Fitter = (*Gonum)(nil)

// Gonum adapts a gonum/interp predictor into a Fitter. A fresh predictor is
// built per Fit call, so one Gonum value serves any number of fits.
type Gonum struct {
	newPredictor func() interp.FittablePredictor
}

func newGonum(newPredictor func() interp.FittablePredictor) *Gonum {
	return &Gonum{newPredictor: newPredictor}
}

func (g *Gonum) Fit(xs, ys []float64) (func(float64) float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched sample lengths: %d vs %d", len(xs), len(ys))
	}

	predictor := g.newPredictor()
	if err := predictor.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("predictor.Fit: %w", err)
	}

	return predictor.Predict, nil
}
