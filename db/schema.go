// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to types both supported drivers accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Score submissions, append-only. Timestamps are epoch milliseconds.
CREATE TABLE IF NOT EXISTS scores (
    user_id BIGINT NOT NULL,
    score BIGINT NOT NULL,
    locate TEXT,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score, created_at);

-- Display profiles, owned by the identity service; read-only here
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY,
    nickname TEXT NOT NULL
);

-- Alternate ranking table used by hosted-event deployments
CREATE TABLE IF NOT EXISTS game_scores (
    player_name TEXT NOT NULL,
    score BIGINT NOT NULL,
    region_name TEXT,
    timestamp BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_game_scores_score ON game_scores(score, timestamp);

-- Per (region, category) correct/wrong tallies. Incremented by the
-- gameplay reporting path, read by the stats endpoint, cleared by the
-- admin reset
CREATE TABLE IF NOT EXISTS game_waste_stats (
    region_id TEXT,
    waste_type TEXT,
    correct_count BIGINT NOT NULL DEFAULT 0,
    wrong_count BIGINT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_game_waste_stats_region ON game_waste_stats(region_id);
`
