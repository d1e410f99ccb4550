package sqlite

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" driver for database/sql.
	_ "github.com/glebarez/go-sqlite"
	glebsqlite "github.com/glebarez/sqlite"
)

// Client represents the single process-wide handle to the embedded
// SQLite store. The raw sqlx connection owns the pool lifecycle while
// GORM runs on top of the same connection.
type Client struct {
	DB     *sqlx.DB
	Gorm   *gorm.DB
	logger *slog.Logger

	firstRun bool
}

// NewClient opens the SQLite database and migrates the schema.
// The handle is opened once at process start and reused for the
// process lifetime.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	firstRun := true
	if cfg.DatabasePath != ":memory:" {
		if _, err := os.Stat(cfg.DatabasePath); err == nil {
			firstRun = false
		}
		if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect("sqlite", cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open SQLite connection", "path", cfg.DatabasePath, "error", err)
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	// SQLite has single-writer semantics; one connection avoids
	// "database is locked" errors under concurrent writes.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	gormDB, err := gorm.Open(&glebsqlite.Dialector{Conn: db.DB}, &gorm.Config{})
	if err != nil {
		logger.Error("failed to initialize GORM over SQLite", "error", err)
		return nil, fmt.Errorf("initializing GORM: %w", err)
	}

	if err := migrateSchema(gormDB); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	logger.Info("SQLite connection established successfully",
		"path", cfg.DatabasePath,
		"first_run", firstRun,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Client{DB: db, Gorm: gormDB, logger: logger, firstRun: firstRun}, nil
}

// migrateSchema creates the three tables (and their key structure)
// when they do not exist yet.
func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Registration{},
	)
}

// FirstRun reports whether the database file existed before this
// client opened it. Drives development-only seeding.
func (c *Client) FirstRun() bool {
	return c.firstRun
}

func (c *Client) Close() error {
	start := time.Now()
	if err := c.DB.Close(); err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
