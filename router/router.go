// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/handlers"
	"github.com/hanriver-dev/waste-sort-server/middleware"
)

// NewRouter returns the full handler chain: the route table wrapped in
// the CORS gateway, so every response (and every OPTIONS preflight)
// carries the cross-origin headers.
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(db, cfg)
	rankingHandler := handlers.NewRankingHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Gameplay surface
	mux.HandleFunc("POST /api/submit-score", middleware.WithLogging(scoreHandler.SubmitScore))
	mux.HandleFunc("GET /api/ranking", middleware.WithLogging(rankingHandler.GetRanking))
	mux.HandleFunc("GET /api/stats/region-waste", middleware.WithLogging(statsHandler.GetRegionWasteStats))

	// Operator surface (access restricted by the deployment, not here)
	mux.HandleFunc("POST /api/admin/query", middleware.WithLogging(adminHandler.RunQuery))
	mux.HandleFunc("POST /api/admin/reset-waste", middleware.WithLogging(adminHandler.ResetWasteStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("waste-sort API v1"))
	})

	return middleware.CORS(mux)
}
