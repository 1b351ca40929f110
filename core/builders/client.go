package builders

import (
	"context"
	"database/sql"

	"github.com/misho104/SUSY-crosssection/core"
)

// Client wraps a database handle for grid-table sources backed by
// database/sql drivers.
type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Query executes a query and returns the rows as a result stream.
func (c *Client) Query(ctx context.Context, query string) (*Result, error) {
	dbRows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	header, err := dbRows.Columns()
	if err != nil {
		return nil, err
	}

	hasNextFunc := func() bool {
		return dbRows.Next()
	}

	nextFunc := func() (core.Row, error) {
		columns := make([]any, len(header))
		columnPointers := make([]any, len(header))
		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := dbRows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		row := make(core.Row, len(header))
		for i := range header {
			val := *columnPointers[i].(*any)
			if valb, ok := val.([]byte); ok {
				val = string(valb)
			}
			row[i] = val
		}

		return row, nil
	}

	rows := NewResultBuilder().
		WithNextFunc(nextFunc, hasNextFunc).
		WithHeader(header).
		WithCloseFunc(func() {
			_ = dbRows.Close()
		}).
		Build()

	return rows, nil
}
