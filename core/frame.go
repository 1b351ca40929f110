package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoParameters  = errors.New("frame needs at least one parameter")
	ErrPointMismatch = errors.New("point width does not match parameter count")
)

// Frame is the materialized slice of a grid table for a single value
// column: parameter coordinates as index levels plus the central value and
// the two uncertainty deviations per point.
//
// A frame is append-only while a reader fills it and read-only afterwards;
// the interpolation layer never mutates it, so a filled frame is safe to
// share between concurrent readers.
type Frame struct {
	params []string
	points [][]float64
	value  []float64
	uncP   []float64
	uncM   []float64
}

// NewFrame creates an empty frame indexed by the given parameter names.
func NewFrame(params []string) (*Frame, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}
	return &Frame{params: append([]string(nil), params...)}, nil
}

// Append adds one grid point. The point must carry one coordinate per
// parameter.
func (f *Frame) Append(point []float64, value, uncP, uncM float64) error {
	if len(point) != len(f.params) {
		return fmt.Errorf("%w: got %d coordinates for %d parameters", ErrPointMismatch, len(point), len(f.params))
	}

	f.points = append(f.points, append([]float64(nil), point...))
	f.value = append(f.value, value)
	f.uncP = append(f.uncP, uncP)
	f.uncM = append(f.uncM, uncM)
	return nil
}

// Len returns the number of grid points.
func (f *Frame) Len() int {
	return len(f.points)
}

// Levels returns the number of index levels, i.e. parameters.
func (f *Frame) Levels() int {
	return len(f.params)
}

// Params returns the ordered parameter names.
func (f *Frame) Params() []string {
	return append([]string(nil), f.params...)
}

// Point returns the coordinates of the i-th grid point.
func (f *Frame) Point(i int) []float64 {
	return append([]float64(nil), f.points[i]...)
}

func (f *Frame) Value(i int) float64 { return f.value[i] }
func (f *Frame) UncP(i int) float64  { return f.uncP[i] }
func (f *Frame) UncM(i int) float64  { return f.uncM[i] }

// Header lists the frame columns for formatters: the parameters followed by
// value, unc+ and unc-.
func (f *Frame) Header() Header {
	return append(append(Header{}, f.params...), "value", "unc+", "unc-")
}

// Rows materializes the frame content for formatters.
func (f *Frame) Rows() []Row {
	rows := make([]Row, 0, len(f.points))
	for i, point := range f.points {
		row := make(Row, 0, len(point)+3)
		for _, x := range point {
			row = append(row, x)
		}
		row = append(row, f.value[i], f.uncP[i], f.uncM[i])
		rows = append(rows, row)
	}
	return rows
}
