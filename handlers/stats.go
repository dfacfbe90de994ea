// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/middleware"
	"github.com/hanriver-dev/waste-sort-server/models"
)

// Smoothing prior: three imaginary trials split evenly between correct
// and wrong. Keeps categories with 0-2 samples away from 0%/100%.
// Fixed by contract, not caller-configurable.
const (
	priorWrongRate = 0.5
	priorWeight    = 3.0
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetRegionWasteStats handles GET /api/stats/region-waste?regionId=
// Aggregates correct/wrong tallies per waste type, optionally filtered
// by region ("all" or empty means unfiltered), worst categories first.
//
// Failures use the bare {error} shape, not the success envelope. The
// asymmetry is part of the published contract.
func (h *StatsHandler) GetRegionWasteStats(w http.ResponseWriter, r *http.Request) {
	regionID := r.URL.Query().Get("regionId")

	// waste_type as secondary key so equal wrong counts serialize
	// identically on every query
	var rows *sql.Rows
	var err error
	if regionID != "" && regionID != "all" {
		rows, err = h.db.Query(`
			SELECT waste_type,
			       SUM(correct_count) AS total_correct,
			       SUM(wrong_count)   AS total_wrong
			FROM game_waste_stats
			WHERE region_id = $1
			GROUP BY waste_type
			ORDER BY total_wrong DESC, waste_type ASC
		`, regionID)
	} else {
		rows, err = h.db.Query(`
			SELECT waste_type,
			       SUM(correct_count) AS total_correct,
			       SUM(wrong_count)   AS total_wrong
			FROM game_waste_stats
			GROUP BY waste_type
			ORDER BY total_wrong DESC, waste_type ASC
		`)
	}
	if err != nil {
		slog.Error("failed to query waste stats", "error", err, "region_id", regionID)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.StatsErrorResponse{Error: err.Error()})
		return
	}
	defer rows.Close()

	stats := []models.WasteTypeStat{}
	for rows.Next() {
		var wasteType sql.NullString
		var correct, wrong int64
		if err := rows.Scan(&wasteType, &correct, &wrong); err != nil {
			slog.Error("failed to scan waste stat row", "error", err)
			middleware.JSONResponse(w, http.StatusInternalServerError, models.StatsErrorResponse{Error: err.Error()})
			return
		}

		name := models.DefaultCategory
		if wasteType.Valid && wasteType.String != "" {
			name = wasteType.String
		}

		stats = append(stats, models.WasteTypeStat{
			WasteType:    name,
			TotalCorrect: correct,
			TotalWrong:   wrong,
			WrongRate:    smoothedWrongRate(correct, wrong),
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read waste stats", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.StatsErrorResponse{Error: err.Error()})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// smoothedWrongRate applies additive smoothing to the raw wrong rate:
//
//	(wrong + priorWrongRate*priorWeight) / (total + priorWeight)
//
// Zero observed samples report 0, not the prior.
func smoothedWrongRate(correct, wrong int64) float64 {
	total := correct + wrong
	if total <= 0 {
		return 0
	}
	return (float64(wrong) + priorWrongRate*priorWeight) / (float64(total) + priorWeight)
}
