package format

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/misho104/SUSY-crosssection/core"
)

var _ core.Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) parse(header core.Header, rows []core.Row) [][]string {
	data := [][]string{
		header,
	}
	for _, row := range rows {
		var csvRow []string
		for _, rec := range row {
			csvRow = append(csvRow, fmt.Sprint(rec))
		}
		data = append(data, csvRow)
	}

	return data
}

func (cf *CSV) Format(header core.Header, rows []core.Row, _ *core.FormatterOptions) ([]byte, error) {
	data := cf.parse(header, rows)

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	err := w.WriteAll(data)
	if err != nil {
		return nil, fmt.Errorf("w.WriteAll: %w", err)
	}

	return b.Bytes(), nil
}
