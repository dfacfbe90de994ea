// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
)

// Open opens the store configured by cfg. The sqlite variant matches
// the original serverless deployment; postgres is used for shared
// hosted instances.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.DatabaseType, err)
	}

	if cfg.DatabaseType == "sqlite" {
		// SQLite allows one writer; a single pooled connection keeps
		// concurrent inserts serialized instead of returning busy errors
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
