package booking

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для чтения из БД
// Поддерживает *sql.DB, *sql.Tx и *sql.Conn
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
