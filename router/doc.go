// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the waste-sort API.

# Route Registration

NewRouter creates the configured handler chain with all endpoints:

	handler := router.NewRouter(db, cfg)

The returned handler is the ServeMux wrapped in the CORS gateway, so
OPTIONS preflights are answered for every path and every response
carries the cross-origin headers.

# Endpoints

Health:

	GET /health

Gameplay (public):

	POST /api/submit-score       - Append a score submission
	GET  /api/ranking            - Top-10 leaderboard
	GET  /api/stats/region-waste - Smoothed per-category error rates

Operator (privileged; the deployment restricts access, not this code):

	POST /api/admin/query       - Allow-listed ad-hoc statement
	POST /api/admin/reset-waste - Clear all waste-stat counters

# Handler Initialization

The router creates handler instances with dependency injection:

	scoreHandler := handlers.NewScoreHandler(db, cfg)
	rankingHandler := handlers.NewRankingHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
