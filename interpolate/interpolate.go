package interpolate

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/misho104/SUSY-crosssection/core"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter name")
	ErrBadPoint         = errors.New("query point does not match parameters")
)

// EvalFunc evaluates a fitted function at a point given in original units.
type EvalFunc func(point []float64) float64

// Interpolator builds a queryable fit from a frame with uncertainties.
type Interpolator interface {
	Interpolate(frame *core.Frame) (*WithUncertainties, error)
}

// Point addresses a query point positionally, by parameter name, or both.
// Named values fill the remaining slots via the parameter order of the
// fitted frame and take precedence over positional ones.
type Point struct {
	Pos   []float64
	Named map[string]float64
}

// At is shorthand for a purely positional point.
func At(pos ...float64) Point {
	return Point{Pos: pos}
}

// Band is a fitted central value with its deviations: UncP is the upward
// deviation and UncM the downward one as a signed negative number.
type Band struct {
	Central float64
	UncP    float64
	UncM    float64
}

// WithUncertainties is an interpolation result of values accompanied by
// uncertainties: three independently fitted functions plus the parameter
// name resolution. It is immutable and cheap to share; construction happens
// once per interpolation, evaluation any number of times.
type WithUncertainties struct {
	f0         EvalFunc
	fp         EvalFunc
	fm         EvalFunc
	params     []string
	paramIndex map[string]int
}

// NewWithUncertainties wraps the central, central+unc and central-unc fits.
// params gives the positional order used to resolve named point values.
func NewWithUncertainties(central, upper, lower EvalFunc, params []string) *WithUncertainties {
	paramIndex := make(map[string]int, len(params))
	for i, name := range params {
		paramIndex[name] = i
	}
	return &WithUncertainties{
		f0:         central,
		fp:         upper,
		fm:         lower,
		params:     append([]string(nil), params...),
		paramIndex: paramIndex,
	}
}

// resolve merges positional and named values into a full coordinate slice.
func (w *WithUncertainties) resolve(p Point) ([]float64, error) {
	n := len(w.params)
	if len(p.Pos) > n {
		return nil, fmt.Errorf("%w: got %d positional values for %d parameters", ErrBadPoint, len(p.Pos), n)
	}

	point := make([]float64, n)
	filled := make([]bool, n)
	for i, v := range p.Pos {
		point[i] = v
		filled[i] = true
	}
	for name, v := range p.Named {
		i, ok := w.paramIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
		}
		point[i] = v
		filled[i] = true
	}

	var missing []string
	for i, ok := range filled {
		if !ok {
			missing = append(missing, w.params[i])
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing %s", ErrBadPoint, strings.Join(missing, ", "))
	}

	return point, nil
}

// F0 returns the fitted central value.
func (w *WithUncertainties) F0(p Point) (float64, error) {
	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}
	return w.f0(point), nil
}

// Fp returns the fitted value of central plus positive uncertainty.
func (w *WithUncertainties) Fp(p Point) (float64, error) {
	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}
	return w.fp(point), nil
}

// Fm returns the fitted value of central minus negative uncertainty.
func (w *WithUncertainties) Fm(p Point) (float64, error) {
	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}
	return w.fm(point), nil
}

// UncPAt returns the fitted positive uncertainty.
func (w *WithUncertainties) UncPAt(p Point) (float64, error) {
	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}
	return w.uncPAt(point), nil
}

// UncMAt returns the fitted negative uncertainty as a signed negative
// number.
func (w *WithUncertainties) UncMAt(p Point) (float64, error) {
	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}
	return w.uncMAt(point), nil
}

// BandAt returns the central value together with both deviations.
func (w *WithUncertainties) BandAt(p Point) (Band, error) {
	point, err := w.resolve(p)
	if err != nil {
		return Band{}, err
	}
	return Band{
		Central: w.f0(point),
		UncP:    w.uncPAt(point),
		UncM:    w.uncMAt(point),
	}, nil
}

func (w *WithUncertainties) uncPAt(point []float64) float64 {
	return w.fp(point) - w.f0(point)
}

func (w *WithUncertainties) uncMAt(point []float64) float64 {
	return -(w.f0(point) - w.fm(point))
}

type evalConfig struct {
	uncLevel float64
}

type EvalOption func(*evalConfig)

// WithUncLevel selects how many uncertainty bands above (positive) or below
// (negative) the central value to report. The default level 0 reports the
// central value itself.
func WithUncLevel(level float64) EvalOption {
	return func(c *evalConfig) {
		c.uncLevel = level
	}
}

// Eval returns the fitted value with the requested uncertainty level.
func (w *WithUncertainties) Eval(p Point, opts ...EvalOption) (float64, error) {
	config := evalConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	point, err := w.resolve(p)
	if err != nil {
		return 0, err
	}

	v := w.f0(point)
	switch {
	case config.uncLevel > 0:
		v += config.uncLevel * w.uncPAt(point)
	case config.uncLevel < 0:
		v += config.uncLevel * math.Abs(w.uncMAt(point))
	}
	return v, nil
}
