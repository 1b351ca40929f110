package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/builders"
)

var csvOptionKeys = []string{"sep", "comment", "skiprows"}

var _ Source = (*CSVSource)(nil)

// CSVSource reads a grid table from a CSV file. The annotations name the
// columns, so the file content is data only; a header line is dropped with
// the "skiprows" option.
//
// Recognized reader options: "sep" (field delimiter, single character),
// "comment" (comment character) and "skiprows" (leading records to drop).
type CSVSource struct {
	path string
}

func NewCSV(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Rows(opts map[string]any) (core.ResultStream, error) {
	for key := range opts {
		if !slices.Contains(csvOptionKeys, key) {
			core.Log().Warnf("unknown reader option for CSV source: %q", key)
		}
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	if sep, err := optionChar(opts, "sep"); err != nil {
		return nil, err
	} else if sep != 0 {
		r.Comma = sep
	}
	if comment, err := optionChar(opts, "comment"); err != nil {
		return nil, err
	} else if comment != 0 {
		r.Comment = comment
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("r.ReadAll: %w", err)
	}

	skip, err := optionInt(opts, "skiprows")
	if err != nil {
		return nil, err
	}
	if skip > len(records) {
		skip = len(records)
	}
	records = records[skip:]

	next, hasNext := builders.NextSlice(records, func(record []string) core.Row {
		row := make(core.Row, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		return row
	})

	return builders.NewResultBuilder().
		WithNextFunc(next, hasNext).
		Build(), nil
}

// optionChar reads a single-character option, returning 0 when unset.
func optionChar(opts map[string]any, key string) (rune, error) {
	raw, ok := opts[key]
	if !ok {
		return 0, nil
	}
	s, ok := raw.(string)
	if !ok || len([]rune(s)) != 1 {
		return 0, fmt.Errorf("reader option %q must be a single character: %v", key, raw)
	}
	return []rune(s)[0], nil
}

// optionInt reads a numeric option, accepting the float64 that JSON
// decoding produces. Returns 0 when unset.
func optionInt(opts map[string]any, key string) (int, error) {
	raw, ok := opts[key]
	if !ok {
		return 0, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("reader option %q must be a number: %v", key, raw)
}
