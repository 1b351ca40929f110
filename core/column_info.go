package core

import (
	"encoding/json"
	"fmt"
)

// ColumnInfo annotates a single column of a grid table.
//
// The name, not the positional index, is the principal identifier of a
// column; the index is kept so that validation can pin every column to its
// slot in the table. Unit is carried as an opaque string for callers that
// parse units; an empty string means the column is dimensionless.
type ColumnInfo struct {
	Index int
	Name  string
	Unit  string
}

var columnInfoKeys = []string{"index", "name", "unit"}

// ColumnInfoFromJSON builds and validates a ColumnInfo from a raw JSON
// object. Unrecognized keys are logged and ignored.
func ColumnInfoFromJSON(raw json.RawMessage) (*ColumnInfo, error) {
	fields, err := objectFields("ColumnInfo", raw)
	if err != nil {
		return nil, err
	}
	warnUnknownKeys("ColumnInfo", fields, columnInfoKeys)

	c := &ColumnInfo{}
	if err := requiredField("ColumnInfo", fields, "index", &c.Index); err != nil {
		return nil, err
	}
	if err := requiredField("ColumnInfo", fields, "name", &c.Name); err != nil {
		return nil, err
	}
	if err := optionalField("ColumnInfo", fields, "unit", &c.Unit); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type columnInfoPersistent struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Unit  string `json:"unit,omitempty"`
}

// MarshalJSON omits the unit when the column is dimensionless.
func (c *ColumnInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(&columnInfoPersistent{
		Index: c.Index,
		Name:  c.Name,
		Unit:  c.Unit,
	})
}

// Validate checks the content.
func (c *ColumnInfo) Validate() error {
	if c.Index < 0 {
		return fmt.Errorf("%w: ColumnInfo.index must be non-negative: %d", ErrInvalidValue, c.Index)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: column %d has no name", ErrInvalidValue, c.Index)
	}
	return nil
}
