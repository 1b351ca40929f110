package format_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/format"
)

var (
	testHeader = core.Header{"mass", "value", "unc+", "unc-"}
	testRows   = []core.Row{
		{500.0, 10.0, 0.5, 0.4},
		{600.0, 8.0, 0.4, 0.3},
	}
)

func TestJSONFormat(t *testing.T) {
	r := require.New(t)

	out, err := format.NewJSON().Format(testHeader, testRows, nil)
	r.NoError(err)

	var parsed []map[string]any
	r.NoError(json.Unmarshal(out, &parsed))
	r.Len(parsed, 2)
	r.Equal(500.0, parsed[0]["mass"])
	r.Equal(0.4, parsed[0]["unc-"])
}

func TestJSONFormat_ShortHeader(t *testing.T) {
	r := require.New(t)

	out, err := format.NewJSON().Format(core.Header{"mass"}, []core.Row{{500.0, 10.0}}, nil)
	r.NoError(err)

	var parsed []map[string]any
	r.NoError(json.Unmarshal(out, &parsed))
	r.Contains(parsed[0], "<unknown-field-1>")
}

func TestCSVFormat(t *testing.T) {
	r := require.New(t)

	out, err := format.NewCSV().Format(testHeader, testRows, nil)
	r.NoError(err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	r.Len(lines, 3)
	r.Equal("mass,value,unc+,unc-", lines[0])
	r.Equal("500,10,0.5,0.4", lines[1])
}

func TestTableFormat(t *testing.T) {
	r := require.New(t)

	out, err := format.NewTable().Format(testHeader, testRows, nil)
	r.NoError(err)

	rendered := string(out)
	r.Contains(rendered, "mass")
	r.Contains(rendered, "unc+")
	r.Contains(rendered, "500")

	// rows are numbered from 1 by default
	r.Contains(rendered, "1")

	// and from ChunkStart+1 when paging
	out, err = format.NewTable().Format(testHeader, testRows, &core.FormatterOptions{ChunkStart: 10})
	r.NoError(err)
	r.Contains(string(out), "11")
}
