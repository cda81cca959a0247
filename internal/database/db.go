package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// utf8mb4 is required: titles, addresses and favorite activities are Korean text.
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the DDL for the two tables this service owns.  The statements
// stick to the SQL subset that both MySQL and SQLite accept: string primary
// keys are VARCHAR with an explicit length, timestamps are stored as civil
// timestamp strings, and booleans are SMALLINT 0/1.  The repository tests
// run the same DDL against an in-memory SQLite database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id               VARCHAR(64) PRIMARY KEY,
		title            VARCHAR(255) NOT NULL,
		photo            MEDIUMTEXT,
		start_at         VARCHAR(32) NOT NULL,
		end_at           VARCHAR(32) NOT NULL,
		address          VARCHAR(255) NOT NULL,
		address_detail   VARCHAR(255) NOT NULL DEFAULT '',
		lat              DOUBLE PRECISION NOT NULL,
		lng              DOUBLE PRECISION NOT NULL,
		capacity_enabled SMALLINT NOT NULL DEFAULT 0,
		capacity_max     INTEGER,
		hidden           SMALLINT NOT NULL DEFAULT 0,
		created_at       VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		activity   VARCHAR(191) PRIMARY KEY,
		created_at VARCHAR(32) NOT NULL
	)`,
}

// EnsureSchema creates the events and favorites tables when they do not
// exist yet.  It is safe to call on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
