package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-allocator/internal/config"
)

// Storage reads straight from the connection pool. Writes go through Write.
type Storage struct {
	sqlDB *sql.DB
	db    *bob.DB
	Tables
}

func NewStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		sqlDB:  sqlDB,
		db:     &db,
		Tables: NewTables(&db),
	}, nil
}

// Write opens a transaction and returns a Writer whose tables run inside it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return NewWriter(tx, NewTables(tx)), nil
}

// Ping checks the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
