// Package reader materializes annotated grid tables from their raw sources.
package reader

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/misho104/SUSY-crosssection/core"
)

var (
	ErrRowWidth = errors.New("row width does not match column annotations")
	ErrBadCell  = errors.New("cell is not numeric")
)

// Source yields the raw rows of one grid table. The options come from the
// annotation's reader_options and are interpreted by each source; unknown
// options are logged and ignored.
type Source interface {
	Rows(opts map[string]any) (core.ResultStream, error)
}

// Table is a fully materialized grid table: one frame per annotated value
// column, keyed by the value column name.
type Table struct {
	id     string
	info   *core.TableInfo
	frames map[string]*core.Frame
}

// Load validates the annotations, drains the source and resolves every
// annotated value column into a frame.
//
// Parameter coordinates are granularity-rounded. The uncertainty sources of
// each direction are combined in quadrature: relative sources scale with
// the central value, absolute sources are taken as-is. Minus uncertainties
// are stored as non-negative magnitudes.
func Load(info *core.TableInfo, src Source) (*Table, error) {
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("info.Validate: %w", err)
	}

	stream, err := src.Rows(info.ReaderOptions)
	if err != nil {
		return nil, fmt.Errorf("src.Rows: %w", err)
	}
	defer stream.Close()

	var rows [][]float64
	for stream.HasNext() {
		row, err := stream.Next()
		if err != nil {
			return nil, fmt.Errorf("stream.Next: %w", err)
		}
		if len(row) != len(info.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, annotations define %d columns",
				ErrRowWidth, len(rows), len(row), len(info.Columns))
		}

		numeric := make([]float64, len(row))
		for i, cell := range row {
			v, err := toFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", len(rows), info.Columns[i].Name, err)
			}
			numeric[i] = v
		}
		rows = append(rows, numeric)
	}

	t := &Table{
		id:     uuid.New().String(),
		info:   info,
		frames: make(map[string]*core.Frame, len(info.Values)),
	}

	paramNames := make([]string, len(info.Parameters))
	paramCols := make([]int, len(info.Parameters))
	for i, p := range info.Parameters {
		column, err := info.GetColumn(p.Column)
		if err != nil {
			return nil, err
		}
		paramNames[i] = column.Name
		paramCols[i] = column.Index
	}

	for _, v := range info.Values {
		frame, err := t.buildFrame(v, paramNames, paramCols, rows)
		if err != nil {
			return nil, err
		}
		t.frames[v.Column] = frame
	}

	core.Log().Debugf("table %s: %d rows, %d value columns", t.id, len(rows), len(t.frames))

	return t, nil
}

func (t *Table) buildFrame(v *core.ValueInfo, paramNames []string, paramCols []int, rows [][]float64) (*core.Frame, error) {
	frame, err := core.NewFrame(paramNames)
	if err != nil {
		return nil, err
	}

	valueColumn, err := t.info.GetColumn(v.Column)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		point := make([]float64, len(paramCols))
		for i, col := range paramCols {
			point[i] = t.info.Parameters[i].Round(row[col])
		}

		value := row[valueColumn.Index]
		uncP, err := t.combine(v.UncP, row, value)
		if err != nil {
			return nil, err
		}
		uncM, err := t.combine(v.UncM, row, value)
		if err != nil {
			return nil, err
		}

		if err := frame.Append(point, value, uncP, uncM); err != nil {
			return nil, err
		}
	}

	return frame, nil
}

// combine sums the source deviations of one direction in quadrature and
// returns the total as a non-negative magnitude.
func (t *Table) combine(sources map[string]core.UncertaintyType, row []float64, central float64) (float64, error) {
	total := 0.0
	for name, typ := range sources {
		column, err := t.info.GetColumn(name)
		if err != nil {
			return 0, err
		}

		deviation := row[column.Index]
		if typ == core.UncertaintyRelative {
			deviation *= central
		}
		total += deviation * deviation
	}
	return math.Sqrt(total), nil
}

// ID returns the identity assigned to this table at load time, used in
// diagnostics.
func (t *Table) ID() string {
	return t.id
}

// Info returns the annotations this table was loaded with.
func (t *Table) Info() *core.TableInfo {
	return t.info
}

// Frame returns the frame of the named value column.
func (t *Table) Frame(value string) (*core.Frame, error) {
	frame, ok := t.frames[value]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrColumnNotFound, value)
	}
	return frame, nil
}

// ValueNames lists the loaded value columns in lexical order.
func (t *Table) ValueNames() []string {
	names := make([]string, 0, len(t.frames))
	for name := range t.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toFloat converts a raw source cell to a float64.
func toFloat(cell any) (float64, error) {
	switch v := cell.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadCell, v)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("%w: %v (%T)", ErrBadCell, cell, cell)
}
