package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernc.org/sqlite"

	"github.com/jcordova-gis/geoingest/gen/ent"
)

// Ent's sqlite dialect expects a driver registered as "sqlite3";
// modernc registers itself as "sqlite", so wrap it and enforce the
// pragmas Ent relies on.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

func openSQLite(dsn string, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	logger.Info("opening embedded database", "path", path)

	drv, err := entsql.Open(dialect.SQLite, path)
	if err != nil {
		logger.Error("failed to open embedded database", "error", err)
		return nil, nil, err
	}
	return ent.NewClient(ent.Driver(drv)), nil, nil
}
