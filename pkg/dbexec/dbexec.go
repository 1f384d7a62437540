// Package dbexec defines the minimal database execution interface shared by
// all storage repositories. *sql.DB and *sql.Tx both satisfy it, which keeps
// repositories usable inside and outside transactions.
package dbexec

import (
	"context"
	"database/sql"
)

// DBExecutor executes queries against the database.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
