package core_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misho104/SUSY-crosssection/core"
)

const sampleTableInfoJSON = `{
	"document": {
		"title": "gluino pair production cross sections",
		"collider": "pp 13TeV"
	},
	"columns": [
		{"name": "mass", "unit": "GeV"},
		{"name": "xsec", "unit": "pb"},
		{"name": "unc", "unit": "pb"}
	],
	"reader_options": {"skiprows": 1},
	"parameters": [{"column": "mass", "granularity": 5}],
	"values": [{
		"column": "xsec",
		"unc": [{"column": "unc", "type": "absolute"}]
	}]
}`

func TestTableInfoFromJSON(t *testing.T) {
	r := require.New(t)

	info, err := core.TableInfoFromJSON([]byte(sampleTableInfoJSON))
	r.NoError(err)
	r.NoError(info.Validate())

	r.Equal("pp 13TeV", info.Document["collider"])
	r.Len(info.Columns, 3)
	r.Equal(&core.ColumnInfo{Index: 1, Name: "xsec", Unit: "pb"}, info.Columns[1])
	r.Len(info.Parameters, 1)
	r.Equal(5.0, info.Parameters[0].Granularity)
	r.Len(info.Values, 1)
	r.Equal("xsec", info.Values[0].Column)
	r.Equal(map[string]core.UncertaintyType{"unc": core.UncertaintyAbsolute}, info.Values[0].UncP)
	r.Equal(1.0, info.ReaderOptions["skiprows"])
}

func TestTableInfoFromJSON_Empty(t *testing.T) {
	r := require.New(t)

	// a minimal object loads and validates; emptiness is the reader's problem
	info, err := core.TableInfoFromJSON([]byte(`{}`))
	r.NoError(err)
	r.NoError(info.Validate())
	r.Empty(info.Columns)
}

func TestTableInfoValidate(t *testing.T) {
	base := func() *core.TableInfo {
		return &core.TableInfo{
			Columns: []*core.ColumnInfo{
				{Index: 0, Name: "mass"},
				{Index: 1, Name: "xsec"},
				{Index: 2, Name: "unc"},
			},
			Parameters: []*core.ParameterInfo{{Column: "mass"}},
			Values: []*core.ValueInfo{{
				Column: "xsec",
				UncP:   map[string]core.UncertaintyType{"unc": core.UncertaintyAbsolute},
				UncM:   map[string]core.UncertaintyType{"unc": core.UncertaintyAbsolute},
			}},
		}
	}

	testCases := []struct {
		name   string
		mutate func(*core.TableInfo)
	}{
		{"index out of order", func(ti *core.TableInfo) {
			ti.Columns[0].Index, ti.Columns[1].Index = 1, 0
		}},
		{"duplicated column name", func(ti *core.TableInfo) {
			ti.Columns[2].Name = "mass"
		}},
		{"dangling parameter reference", func(ti *core.TableInfo) {
			ti.Parameters[0].Column = "m_gluino"
		}},
		{"dangling value reference", func(ti *core.TableInfo) {
			ti.Values[0].Column = "sigma"
		}},
		{"dangling uncertainty source", func(ti *core.TableInfo) {
			ti.Values[0].UncM = map[string]core.UncertaintyType{"syst": core.UncertaintyAbsolute}
		}},
		{"invalid sub-entity", func(ti *core.TableInfo) {
			ti.Columns[0].Name = ""
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			info := base()
			r.NoError(info.Validate())

			tc.mutate(info)
			r.ErrorIs(info.Validate(), core.ErrInvalidValue)
		})
	}
}

func TestTableInfoGetColumn(t *testing.T) {
	r := require.New(t)

	info, err := core.TableInfoFromJSON([]byte(sampleTableInfoJSON))
	r.NoError(err)

	c, err := info.GetColumn("xsec")
	r.NoError(err)
	r.Equal("pb", c.Unit)

	_, err = info.GetColumn("sigma")
	r.ErrorIs(err, core.ErrColumnNotFound)
}

func TestTableInfoDump(t *testing.T) {
	r := require.New(t)

	info, err := core.TableInfoFromJSON([]byte(sampleTableInfoJSON))
	r.NoError(err)

	dump := info.Dump()
	r.Contains(dump, "[Document]")
	r.Contains(dump, "collider: pp 13TeV")
	r.Contains(dump, "title: gluino pair production cross sections")
}

func TestTableInfoRoundTrip(t *testing.T) {
	r := require.New(t)

	info, err := core.TableInfoFromJSON([]byte(sampleTableInfoJSON))
	r.NoError(err)

	serialized, err := json.Marshal(info)
	r.NoError(err)

	reloaded, err := core.TableInfoFromJSON(serialized)
	r.NoError(err)
	r.NoError(reloaded.Validate())
	r.Equal(info, reloaded)
}

func TestLoadTableInfo(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "table.json")
	r.NoError(os.WriteFile(path, []byte(sampleTableInfoJSON), 0o644))

	info, err := core.LoadTableInfo(path)
	r.NoError(err)
	r.Len(info.Columns, 3)

	_, err = core.LoadTableInfo(filepath.Join(t.TempDir(), "missing.json"))
	r.Error(err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	r.NoError(os.WriteFile(bad, []byte(`{"columns": [{"name": "a"}, {"name": "a"}]}`), 0o644))
	_, err = core.LoadTableInfo(bad)
	r.ErrorIs(err, core.ErrInvalidValue)
}
