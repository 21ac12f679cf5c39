package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"rivvo/internal/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func ConnectDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*DB, error) {
	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.DB.DbHOST),
		zap.String("dbname", cfg.DB.DbNAME),
		zap.Int("max_conns", cfg.DB.MaxConns),
	)

	db, err := sqlx.Open("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxConns)
	db.SetMaxIdleConns(max(1, cfg.DB.MaxConns/2))
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	dbStruct := &DB{DB: db, logger: logger}

	if err := dbStruct.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Connected to PostgreSQL")
	return dbStruct, nil
}

// RunMigrations applies every embedded migration in file name order.
// Migrations are written to be re-runnable.
func (db *DB) RunMigrations(ctx context.Context) error {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		db.logger.Info("Migration applied", zap.String("file", name))
	}
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errors.New("database connection is not initialized")
	}
	return db.PingContext(ctx)
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}
