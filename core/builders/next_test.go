package builders_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/builders"
)

func TestNextSlice(t *testing.T) {
	r := require.New(t)

	records := [][]string{{"1", "10"}, {"2", "20"}, {"3", "30"}}

	next, hasNext := builders.NextSlice(records, func(record []string) core.Row {
		row := make(core.Row, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		return row
	})

	i := 0
	for hasNext() {
		row, err := next()
		r.NoError(err)
		r.Len(row, 2)
		r.Equal(records[i][0], row[0])
		i++
	}
	r.Equal(len(records), i)

	// exhausted iterator errors out
	_, err := next()
	r.Error(err)
}

func TestNextNil(t *testing.T) {
	r := require.New(t)

	next, hasNext := builders.NextNil()

	r.False(hasNext())
	_, err := next()
	r.Error(err)
}

func TestResultBuilder(t *testing.T) {
	r := require.New(t)

	closed := false
	next, hasNext := builders.NextSlice([]core.Row{{1.0}, {2.0}}, func(row core.Row) core.Row { return row })

	result := builders.NewResultBuilder().
		WithNextFunc(next, hasNext).
		WithHeader(core.Header{"x"}).
		WithCloseFunc(func() { closed = true }).
		Build()

	r.Equal(core.Header{"x"}, result.Header())

	var rows []core.Row
	for result.HasNext() {
		row, err := result.Next()
		r.NoError(err)
		rows = append(rows, row)
	}
	r.Len(rows, 2)

	result.Close()
	r.True(closed)
	r.False(result.HasNext())
}
