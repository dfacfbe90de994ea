// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles store connection and schema creation.

# Opening the Store

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg)

Supported types are "sqlite" (modernc.org/sqlite, the default — the
original deployment ran on an SQLite-family serverless store) and
"postgres" (lib/pq). Placeholders throughout the codebase use the $N
form, which both drivers accept as long as the numbering follows the
argument order.

For sqlite the pool is capped at one connection so concurrent writes
serialize instead of failing with busy errors.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - scores: append-only score submissions (user_id, score, locate, created_at)
  - users: user_id → nickname display lookup (owned by the identity service)
  - game_scores: alternate denormalized ranking table (player_name, region_name, timestamp)
  - game_waste_stats: correct/wrong tallies per (region_id, waste_type)

All timestamps are stored as epoch milliseconds (BIGINT) so rows sort
identically across drivers.

# Indexes

Performance indexes on:

  - scores.(score, created_at)
  - game_scores.(score, timestamp)
  - game_waste_stats.region_id
*/
package db
