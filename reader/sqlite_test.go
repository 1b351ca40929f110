package reader_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/reader"
)

func TestSQLiteSource_Table(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	src := reader.NewSQLiteFromDB(db)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "points" ORDER BY rowid`)).
		WillReturnRows(sqlmock.NewRows([]string{"mass", "xsec"}).
			AddRow(500.0, 10.0).
			AddRow(600.0, 8.0))

	stream, err := src.Rows(map[string]any{"table": "points"})
	r.NoError(err)

	rows := drain(t, stream)
	r.Len(rows, 2)
	r.Equal(core.Row{500.0, 10.0}, rows[0])

	r.NoError(mock.ExpectationsWereMet())
}

func TestSQLiteSource_Query(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	src := reader.NewSQLiteFromDB(db)
	defer src.Close()

	// an explicit query wins over the table option
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT mass, xsec FROM points WHERE mass < 600`)).
		WillReturnRows(sqlmock.NewRows([]string{"mass", "xsec"}).AddRow(500.0, 10.0))

	stream, err := src.Rows(map[string]any{
		"table": "points",
		"query": "SELECT mass, xsec FROM points WHERE mass < 600",
	})
	r.NoError(err)

	rows := drain(t, stream)
	r.Len(rows, 1)

	r.NoError(mock.ExpectationsWereMet())
}

func TestSQLiteSource_NoQuery(t *testing.T) {
	r := require.New(t)

	db, _, err := sqlmock.New()
	r.NoError(err)
	src := reader.NewSQLiteFromDB(db)
	defer src.Close()

	_, err = src.Rows(nil)
	r.ErrorIs(err, reader.ErrNoQuery)
}

func TestSQLiteSource_EndToEnd(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	src := reader.NewSQLiteFromDB(db)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "grid" ORDER BY rowid`)).
		WillReturnRows(sqlmock.NewRows([]string{"mass", "xsec", "stat", "syst"}).
			AddRow(500.0, 10.0, 0.3, 4.0))

	info := sampleInfo()
	info.ReaderOptions = map[string]any{"table": "grid"}

	table, err := reader.Load(info, src)
	r.NoError(err)

	frame, err := table.Frame("xsec")
	r.NoError(err)
	r.Equal(1, frame.Len())
	r.InDelta(5.0, frame.UncP(0), 1e-9)

	r.NoError(mock.ExpectationsWereMet())
}
