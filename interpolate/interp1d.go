package interpolate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/fitters"
)

var ErrDimension = errors.New("parameter index is not one-dimensional")

// axesPresets are the supported independent/dependent scale combinations
// for one-dimensional tables.
var axesPresets = map[string]func() (*Axes, error){
	"linear":    func() (*Axes, error) { return NewAxes([]Scale{ScaleLinear}, ScaleLinear) },
	"log":       func() (*Axes, error) { return NewAxes([]Scale{ScaleLinear}, ScaleLog) },
	"loglinear": func() (*Axes, error) { return NewAxes([]Scale{ScaleLog}, ScaleLinear) },
	"loglog":    func() (*Axes, error) { return NewAxes([]Scale{ScaleLog}, ScaleLog) },
}

var _ Interpolator = (*OneDim)(nil)

// OneDim interpolates tables indexed by exactly one parameter. The fit of
// each series is delegated to the backend registered under the configured
// kind; queries outside the sampled range behave however that backend
// behaves.
type OneDim struct {
	fitter fitters.Fitter
	axes   *Axes
}

type oneDimConfig struct {
	kind string
	axes string
}

type OneDimOption func(*oneDimConfig)

// WithKind selects the fit kind, e.g. "linear" or "cubic". See the fitters
// package for the registered kinds.
func WithKind(kind string) OneDimOption {
	return func(c *oneDimConfig) {
		c.kind = kind
	}
}

// WithAxes selects the axis-scale preset: one of "linear", "log",
// "loglinear" or "loglog".
func WithAxes(preset string) OneDimOption {
	return func(c *oneDimConfig) {
		c.axes = preset
	}
}

// NewOneDim builds a one-dimensional interpolator. Unknown kinds and axis
// presets fail here, not when interpolating.
func NewOneDim(opts ...OneDimOption) (*OneDim, error) {
	config := oneDimConfig{
		kind: "linear",
		axes: "linear",
	}
	for _, opt := range opts {
		opt(&config)
	}

	newAxes, ok := axesPresets[config.axes]
	if !ok {
		return nil, fmt.Errorf("%w: axes preset %q", ErrUnknownScale, config.axes)
	}
	axes, err := newAxes()
	if err != nil {
		return nil, err
	}

	fitter, err := fitters.Get(config.kind)
	if err != nil {
		return nil, fmt.Errorf("fitters.Get: %w", err)
	}

	return &OneDim{
		fitter: fitter,
		axes:   axes,
	}, nil
}

// Interpolate fits the central, upper and lower series of the frame and
// wraps them into one queryable object. The minus uncertainty is taken by
// absolute value, so its stored sign cannot invert the adjustment
// direction.
func (o *OneDim) Interpolate(frame *core.Frame) (*WithUncertainties, error) {
	if frame.Levels() != 1 {
		return nil, fmt.Errorf("%w: got %d index levels", ErrDimension, frame.Levels())
	}

	n := frame.Len()
	xs := make([]float64, n)
	central := make([]float64, n)
	upper := make([]float64, n)
	lower := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = frame.Point(i)[0]
		central[i] = frame.Value(i)
		upper[i] = central[i] + frame.UncP(i)
		lower[i] = central[i] - math.Abs(frame.UncM(i))
	}

	// fit the three series concurrently
	fits := make([]EvalFunc, 3)
	g := &errgroup.Group{}
	for i, series := range [][]float64{central, upper, lower} {
		i, series := i, series
		g.Go(func() error {
			fit, err := o.fitSeries(xs, series)
			if err != nil {
				return err
			}
			fits[i] = fit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewWithUncertainties(fits[0], fits[1], fits[2], frame.Params()), nil
}

// fitSeries fits one series in transformed space and wraps the result back
// into original units.
func (o *OneDim) fitSeries(xs, ys []float64) (EvalFunc, error) {
	n := len(xs)
	tx := make([]float64, n)
	ty := make([]float64, n)
	for i := 0; i < n; i++ {
		tx[i] = o.axes.X(0, xs[i])
		ty[i] = o.axes.Y(ys[i])
	}
	sortSeries(tx, ty)

	fit, err := o.fitter.Fit(tx, ty)
	if err != nil {
		return nil, fmt.Errorf("fitter.Fit: %w", err)
	}

	corrected := o.axes.Correct(func(point []float64) float64 {
		return fit(point[0])
	})
	return corrected, nil
}

// sortSeries orders both slices by ascending x, as the fit backends require.
func sortSeries(xs, ys []float64) {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })

	sortedX := make([]float64, len(xs))
	sortedY := make([]float64, len(ys))
	for i, idx := range order {
		sortedX[i] = xs[idx]
		sortedY[i] = ys[idx]
	}
	copy(xs, sortedX)
	copy(ys, sortedY)
}
