package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misho104/SUSY-crosssection/core"
)

func TestParameterInfoFromJSON(t *testing.T) {
	r := require.New(t)

	p, err := core.ParameterInfoFromJSON([]byte(`{"column": "mass", "granularity": 10}`))
	r.NoError(err)
	r.Equal("mass", p.Column)
	r.Equal(10.0, p.Granularity)

	p, err = core.ParameterInfoFromJSON([]byte(`{"column": "mass"}`))
	r.NoError(err)
	r.Equal(0.0, p.Granularity)

	_, err = core.ParameterInfoFromJSON([]byte(`{"granularity": 10}`))
	r.ErrorIs(err, core.ErrInvalidData)

	_, err = core.ParameterInfoFromJSON([]byte(`{"column": "mass", "granularity": "ten"}`))
	r.ErrorIs(err, core.ErrInvalidData)

	_, err = core.ParameterInfoFromJSON([]byte(`{"column": "mass", "granularity": -5}`))
	r.ErrorIs(err, core.ErrInvalidValue)

	_, err = core.ParameterInfoFromJSON([]byte(`{"column": ""}`))
	r.ErrorIs(err, core.ErrInvalidValue)
}

func TestParameterInfoRound(t *testing.T) {
	r := require.New(t)

	p := &core.ParameterInfo{Column: "mass", Granularity: 10}

	// values within half a quantum of the grid point snap onto it
	for _, v := range []float64{500.0, 499.9999999, 500.0000001, 495.1, 504.9} {
		r.Equal(500.0, p.Round(v))
	}

	fine := &core.ParameterInfo{Column: "ratio", Granularity: 0.01}
	r.InDelta(33.33, fine.Round(33.330000000001), 1e-12)

	// no granularity means no rounding
	raw := &core.ParameterInfo{Column: "mass"}
	r.Equal(499.9999999, raw.Round(499.9999999))
}

func TestParameterInfoRoundTrip(t *testing.T) {
	r := require.New(t)

	for _, p := range []*core.ParameterInfo{
		{Column: "mass", Granularity: 5},
		{Column: "mass"},
	} {
		serialized, err := json.Marshal(p)
		r.NoError(err)

		reloaded, err := core.ParameterInfoFromJSON(serialized)
		r.NoError(err)
		r.Equal(p, reloaded)
	}

	// absent granularity is omitted from the output
	serialized, err := json.Marshal(&core.ParameterInfo{Column: "mass"})
	r.NoError(err)
	r.NotContains(string(serialized), "granularity")
}
