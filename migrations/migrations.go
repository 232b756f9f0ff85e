// Package migrations embeds the preferences database schema.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds the preference schema migrations; cmd/migrate reads it too.
//
//go:embed *.sql
var FS embed.FS

// Run applies the embedded preference schema to db. It is called every time
// the preference store is opened, so an already current database is a no-op.
func Run(db *sql.DB) error {
	goose.SetBaseFS(FS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
