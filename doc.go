// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the waste-sort API server.

waste-sort is the backend for a browser-based waste sorting game. It
accepts gameplay score submissions, serves a top-10 leaderboard, and
aggregates per-category sorting mistakes into smoothed error rates for
the in-game statistics board.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8788 -d "file:waste-sort.db" -t sqlite

A .env file is loaded automatically unless APP_ENV=production.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 8788)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - RANKING_TABLE (--ranking-table): "scores" or "game_scores"
    (default: scores)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (scores, ranking, stats, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS gateway, logging, JSON helpers
  - models: Request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
