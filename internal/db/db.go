// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/mentorlink/mentorlink/internal/db"

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported engines.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	store *BunStore
	//go:embed migrations
	embeddedMigrations embed.FS
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// SupportedTypes lists the accepted database.type values.
var SupportedTypes = []string{"sqlite", "postgres", "mysql"}

// driverName maps a database type to its registered database/sql driver.
func driverName(dbType string) string {
	// The pgx stdlib registers driver name "pgx".
	if dbType == "postgres" {
		return "pgx"
	}
	return dbType
}

// New opens a store for dbType/dsn and makes it the package default.
func New(dbType, dsn string) (*BunStore, error) {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	store = s
	return s, nil
}

// Default returns the store set by New, or nil.
func Default() *BunStore {
	return store
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// NewStoreFromDSN opens a sql.DB for the given DSN, runs migrations, and
// returns a BunStore backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (*BunStore, error) {
	switch dbType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName(dbType), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pool defaults suit small deployments; the MENTORLINK_DB_* variables
	// override them.
	const (
		defaultMaxOpenConns    = 25
		defaultMaxIdleConns    = 25
		defaultConnMaxLifetime = 5 * time.Minute
		defaultConnMaxIdle     = 60 * time.Second
	)

	maxOpen := envInt("MENTORLINK_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("MENTORLINK_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)

	// In-memory SQLite databases are per-connection unless shared cache is
	// requested, so pin them to a single connection.
	connMax := time.Duration(envInt("MENTORLINK_DB_CONN_MAX_LIFETIME_SECONDS", int(defaultConnMaxLifetime/time.Second))) * time.Second
	connIdle := time.Duration(envInt("MENTORLINK_DB_CONN_MAX_IDLE_SECONDS", int(defaultConnMaxIdle/time.Second))) * time.Second
	if dbType == "sqlite" && isSqliteMemory(dsn) {
		// The database vanishes with its last connection; never recycle it.
		maxOpen, maxIdle = 1, 1
		connMax, connIdle = 0, 0
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMax)
	sqlDB.SetConnMaxIdleTime(connIdle)

	dbLogf("opened %s driver in %s (max open=%d, idle=%s, max lifetime=%s)", driverName(dbType), time.Since(start), maxOpen, connIdle, connMax)

	migStart := time.Now()
	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	dbLogf("migrations for %s completed in %s", dbType, time.Since(migStart))

	return &BunStore{bun: createBunDB(sqlDB, dbType), dbType: dbType, dsn: dsn}, nil
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func isSqliteMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}

// createBunDB wraps sqlDB with the bun dialect for dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded migrations for dbType that have not yet
// been recorded in schema_migrations. Each file runs in its own transaction.
func RunMigrations(db *sql.DB, dbType string) error {
	dbLogf("starting migrations for %s", dbType)
	migrationsPath := fmt.Sprintf("migrations/%s", dbType)

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(db, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	selectQuery := "SELECT 1 FROM schema_migrations WHERE version = ?"
	insertQuery := "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)"
	if dbType == "postgres" {
		selectQuery = "SELECT 1 FROM schema_migrations WHERE version = $1"
		insertQuery = "INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2)"
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		var exists int
		err := db.QueryRow(selectQuery, version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}

		p := path.Join(migrationsPath, fname)
		data, err := embeddedMigrations.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", p, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
		}
		for _, stmt := range splitStatements(string(data)) {
			if _, err := tx.Exec(stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to execute migration %s: %w", version, err)
			}
		}
		if _, err := tx.Exec(insertQuery, version, time.Now().UTC()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
		dbLogf("applied migration %s", version)
	}

	return nil
}

// splitStatements breaks a migration file into individual statements so
// drivers without multi-statement support (MySQL by default) can run it.
// Migration files must not contain semicolons inside literals.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// ensureSchemaMigrationsTable creates schema_migrations if missing.
func ensureSchemaMigrationsTable(db *sql.DB, dbType string) error {
	// MySQL cannot index TEXT without a length.
	ddl := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP)`
	if dbType == "mysql" {
		ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(191) PRIMARY KEY, applied_at TIMESTAMP NULL)`
	}
	_, err := db.Exec(ddl)
	return err
}

// RunDBMaintenance performs engine-specific maintenance for the given DSN.
// SQLite runs PRAGMA optimize, VACUUM, a WAL checkpoint and (unless
// skipIntegrity) an integrity check. Postgres runs VACUUM ANALYZE. MySQL runs
// OPTIMIZE TABLE for every table.
func RunDBMaintenance(ctx context.Context, dbType, dsn string, skipIntegrity bool) error {
	sqlDB, err := sqlOpenFunc(driverName(dbType), dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for maintenance: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	switch dbType {
	case "sqlite":
		// optimize is advisory and unsupported on some in-memory setups.
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			dbLogf("sqlite optimize failed (ignored): %v", err)
		}
		if _, err := sqlDB.ExecContext(ctx, "VACUUM;"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		_, _ = sqlDB.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE);")
		if !skipIntegrity {
			var res string
			if err := sqlDB.QueryRowContext(ctx, "PRAGMA integrity_check;").Scan(&res); err != nil {
				return fmt.Errorf("sqlite integrity_check failed: %w", err)
			}
			if res != "ok" {
				return fmt.Errorf("sqlite integrity_check failed: %s", res)
			}
		}
	case "postgres":
		if _, err := sqlDB.ExecContext(ctx, "VACUUM ANALYZE;"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		rows, err := sqlDB.QueryContext(ctx, "SHOW TABLES")
		if err != nil {
			return fmt.Errorf("mysql show tables failed: %w", err)
		}
		var tables []string
		for rows.Next() {
			var table string
			if err := rows.Scan(&table); err != nil {
				_ = rows.Close()
				return fmt.Errorf("mysql read table name failed: %w", err)
			}
			tables = append(tables, table)
		}
		_ = rows.Close()
		var lastErr error
		for _, table := range tables {
			if _, err := sqlDB.ExecContext(ctx, fmt.Sprintf("OPTIMIZE TABLE `%s`", table)); err != nil {
				// Per-table failures are not fatal; keep going.
				dbLogf("mysql optimize table %s failed: %v", table, err)
				lastErr = err
			}
		}
		if lastErr != nil {
			return fmt.Errorf("mysql optimize encountered errors: %w", lastErr)
		}
	default:
		return fmt.Errorf("unsupported db type for maintenance: %s", dbType)
	}
	return nil
}
