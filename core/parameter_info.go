package core

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParameterInfo binds one parameter of the grid to a table column.
//
// Parameter values are usually parsed from text and may carry round-off
// errors that misalign points which belong to the same grid coordinate.
// Granularity, when positive, is the rounding quantum used to snap such
// values back onto the intended grid; zero means no rounding.
type ParameterInfo struct {
	Column      string
	Granularity float64
}

var parameterInfoKeys = []string{"column", "granularity"}

// ParameterInfoFromJSON builds and validates a ParameterInfo from a raw
// JSON object. Unrecognized keys are logged and ignored.
func ParameterInfoFromJSON(raw json.RawMessage) (*ParameterInfo, error) {
	fields, err := objectFields("ParameterInfo", raw)
	if err != nil {
		return nil, err
	}
	warnUnknownKeys("ParameterInfo", fields, parameterInfoKeys)

	p := &ParameterInfo{}
	if err := requiredField("ParameterInfo", fields, "column", &p.Column); err != nil {
		return nil, err
	}
	if err := optionalField("ParameterInfo", fields, "granularity", &p.Granularity); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type parameterInfoPersistent struct {
	Column      string  `json:"column"`
	Granularity float64 `json:"granularity,omitempty"`
}

// MarshalJSON omits the granularity when no rounding is configured.
func (p *ParameterInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(&parameterInfoPersistent{
		Column:      p.Column,
		Granularity: p.Granularity,
	})
}

// Validate checks the content.
func (p *ParameterInfo) Validate() error {
	if p.Column == "" {
		return fmt.Errorf("%w: ParameterInfo.column is missing", ErrInvalidValue)
	}
	if p.Granularity != 0 && !(p.Granularity > 0) {
		return fmt.Errorf("%w: ParameterInfo.granularity is not positive: %v", ErrInvalidValue, p.Granularity)
	}
	return nil
}

// Round snaps a raw value onto the parameter grid.
func (p *ParameterInfo) Round(v float64) float64 {
	if p.Granularity <= 0 {
		return v
	}
	return math.Round(v/p.Granularity) * p.Granularity
}
