package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/udharoguru/internal/client/migrations"
	"github.com/dmitrijs2005/udharoguru/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage is the client's local SQLite database.
type Storage struct {
	DB       *sql.DB
	Metadata *metadata.SQLiteRepository
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the database at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases consistent.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}

	return &Storage{DB: db, Metadata: metadata.NewSQLiteRepository(db)}, nil
}
