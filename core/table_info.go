package core

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// TableInfo aggregates the annotations of one grid table.
//
// Columns describe the table structure; Parameters and Values give the
// semantics on top of it. Document is display-only metadata and must never
// influence validation or interpolation. ReaderOptions is an opaque bag
// passed through to the table-reading collaborator.
//
// Construction does not validate: callers load or assemble a TableInfo and
// then invoke Validate explicitly. Consumers treat a validated TableInfo as
// read-only.
type TableInfo struct {
	Document      map[string]any
	Columns       []*ColumnInfo
	Parameters    []*ParameterInfo
	Values        []*ValueInfo
	ReaderOptions map[string]any
}

var tableInfoKeys = []string{"document", "columns", "parameters", "values", "reader_options"}

// LoadTableInfo reads an annotation file, deserializes and validates it.
func LoadTableInfo(path string) (*TableInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	info, err := TableInfoFromJSON(data)
	if err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return info, nil
}

// TableInfoFromJSON deserializes the top-level annotation object. Column
// indices are assigned by position within the "columns" list. The result is
// not validated; callers invoke Validate themselves.
func TableInfoFromJSON(raw []byte) (*TableInfo, error) {
	fields, err := objectFields("TableInfo", json.RawMessage(raw))
	if err != nil {
		return nil, err
	}
	warnUnknownKeys("TableInfo", fields, tableInfoKeys)

	info := &TableInfo{
		Document:      map[string]any{},
		ReaderOptions: map[string]any{},
	}
	if err := optionalField("TableInfo", fields, "document", &info.Document); err != nil {
		return nil, err
	}
	if err := optionalField("TableInfo", fields, "reader_options", &info.ReaderOptions); err != nil {
		return nil, err
	}
	if len(info.Document) == 0 {
		logger.Warn("no document is given")
	}

	var columns []struct {
		Name string `json:"name"`
		Unit string `json:"unit"`
	}
	if err := optionalField("TableInfo", fields, "columns", &columns); err != nil {
		return nil, err
	}
	for i, c := range columns {
		info.Columns = append(info.Columns, &ColumnInfo{Index: i, Name: c.Name, Unit: c.Unit})
	}

	var parameters []json.RawMessage
	if err := optionalField("TableInfo", fields, "parameters", &parameters); err != nil {
		return nil, err
	}
	for _, raw := range parameters {
		p, err := ParameterInfoFromJSON(raw)
		if err != nil {
			return nil, err
		}
		info.Parameters = append(info.Parameters, p)
	}

	var values []json.RawMessage
	if err := optionalField("TableInfo", fields, "values", &values); err != nil {
		return nil, err
	}
	for _, raw := range values {
		v, err := ValueInfoFromJSON(raw)
		if err != nil {
			return nil, err
		}
		info.Values = append(info.Values, v)
	}

	return info, nil
}

type tableInfoPersistent struct {
	Document      map[string]any   `json:"document,omitempty"`
	Columns       []map[string]any `json:"columns,omitempty"`
	Parameters    []*ParameterInfo `json:"parameters,omitempty"`
	Values        []*ValueInfo     `json:"values,omitempty"`
	ReaderOptions map[string]any   `json:"reader_options,omitempty"`
}

// MarshalJSON emits the documented top-level schema: column entries carry
// name and unit only, since indices are positional on load.
func (ti *TableInfo) MarshalJSON() ([]byte, error) {
	columns := make([]map[string]any, 0, len(ti.Columns))
	for _, c := range ti.Columns {
		entry := map[string]any{"name": c.Name}
		if c.Unit != "" {
			entry["unit"] = c.Unit
		}
		columns = append(columns, entry)
	}

	return json.Marshal(&tableInfoPersistent{
		Document:      ti.Document,
		Columns:       columns,
		Parameters:    ti.Parameters,
		Values:        ti.Values,
		ReaderOptions: ti.ReaderOptions,
	})
}

// Validate checks every sub-entity and then the table-level cross
// references. The first violation found aborts the validation.
func (ti *TableInfo) Validate() error {
	for _, c := range ti.Columns {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, p := range ti.Parameters {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, v := range ti.Values {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	// column indices match positions and names are unique
	names := make(map[string]bool, len(ti.Columns))
	for i, c := range ti.Columns {
		if c.Index != i {
			return fmt.Errorf("%w: mismatched column index: position %d has %d", ErrInvalidValue, i, c.Index)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: duplicated column name: %s", ErrInvalidValue, c.Name)
		}
		names[c.Name] = true
	}

	// every referenced column exists
	for _, p := range ti.Parameters {
		if !names[p.Column] {
			return fmt.Errorf("%w: unknown column name: %s", ErrInvalidValue, p.Column)
		}
	}
	for _, v := range ti.Values {
		for _, name := range valueColumnRefs(v) {
			if !names[name] {
				return fmt.Errorf("%w: unknown column name: %s", ErrInvalidValue, name)
			}
		}
	}

	return nil
}

// valueColumnRefs lists every column a ValueInfo refers to: its own column
// plus all uncertainty sources.
func valueColumnRefs(v *ValueInfo) []string {
	refs := []string{v.Column}
	for name := range v.UncP {
		refs = append(refs, name)
	}
	for name := range v.UncM {
		refs = append(refs, name)
	}
	return refs
}

// GetColumn returns the column annotation with the given name. Lookup is
// linear; tables have tens of columns at most.
func (ti *TableInfo) GetColumn(name string) (*ColumnInfo, error) {
	for _, c := range ti.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// Dump renders the document metadata for display.
func (ti *TableInfo) Dump() string {
	results := []string{"[Document]"}

	keys := make([]string, 0, len(ti.Document))
	for k := range ti.Document {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		results = append(results, fmt.Sprintf("  %s: %v", k, ti.Document[k]))
	}

	return strings.Join(results, "\n")
}
