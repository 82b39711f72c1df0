package snapshot

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов
// Satisfied by *sql.DB and *sql.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
