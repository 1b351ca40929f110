package reader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	_ "modernc.org/sqlite"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/builders"
)

var ErrNoQuery = errors.New(`sqlite source needs a "table" or "query" reader option`)

var sqliteOptionKeys = []string{"table", "query"}

var _ Source = (*SQLiteSource)(nil)

// SQLiteSource reads a grid table stored in a SQLite database.
//
// Recognized reader options: "table" (read all rows of the named table in
// rowid order) or "query" (an arbitrary SELECT); "query" wins when both are
// given. Column order of the result must match the column annotations.
type SQLiteSource struct {
	c *builders.Client
}

// NewSQLite opens the database file at path.
func NewSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return NewSQLiteFromDB(db), nil
}

// NewSQLiteFromDB wraps an existing database handle.
func NewSQLiteFromDB(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{c: builders.NewClient(db)}
}

func (s *SQLiteSource) Rows(opts map[string]any) (core.ResultStream, error) {
	for key := range opts {
		if !slices.Contains(sqliteOptionKeys, key) {
			core.Log().Warnf("unknown reader option for sqlite source: %q", key)
		}
	}

	query := ""
	if table, ok := opts["table"].(string); ok {
		query = fmt.Sprintf("SELECT * FROM %q ORDER BY rowid", table)
	}
	if q, ok := opts["query"].(string); ok {
		query = q
	}
	if query == "" {
		return nil, ErrNoQuery
	}

	stream, err := s.c.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("c.Query: %w", err)
	}
	return stream, nil
}

func (s *SQLiteSource) Close() error {
	return s.c.Close()
}
