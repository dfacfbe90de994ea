// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/middleware"
	"github.com/hanriver-dev/waste-sort-server/models"
)

// allowedStatements is a prefix allow-list, not a parser. A SELECT
// prefix followed by a stacked statement is not blocked by this check;
// access control has to come from the deployment boundary.
var allowedStatements = []string{"SELECT", "INSERT", "UPDATE", "DELETE"}

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// RunQuery handles POST /api/admin/query
// Executes an operator-supplied statement under the keyword allow-list.
func (h *AdminHandler) RunQuery(w http.ResponseWriter, r *http.Request) {
	var req models.AdminQueryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.FailResponse(w, http.StatusBadRequest, "sql 문자열이 필요합니다.")
		return
	}

	stmt := strings.TrimSpace(req.SQL)
	if stmt == "" {
		middleware.FailResponse(w, http.StatusBadRequest, "sql 문자열이 필요합니다.")
		return
	}

	upper := strings.ToUpper(stmt)
	allowed := false
	for _, kw := range allowedStatements {
		if strings.HasPrefix(upper, kw) {
			allowed = true
			break
		}
	}
	if !allowed {
		middleware.FailResponse(w, http.StatusBadRequest,
			"허용되지 않은 SQL입니다. SELECT / INSERT / UPDATE / DELETE만 사용할 수 있습니다.")
		return
	}

	start := time.Now()

	if strings.HasPrefix(upper, "SELECT") {
		results, err := h.queryRows(stmt)
		if err != nil {
			middleware.FailResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		slog.Info("admin query executed", "statement", "SELECT",
			"rows", humanize.Comma(int64(len(results))))
		middleware.JSONResponse(w, http.StatusOK, models.AdminQueryResponse{
			Success: true,
			Results: results,
			Meta: models.QueryMeta{
				RowsRead: int64(len(results)),
				Duration: float64(time.Since(start).Microseconds()) / 1000.0,
			},
		})
		return
	}

	res, err := h.db.Exec(stmt)
	if err != nil {
		middleware.FailResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changes, _ := res.RowsAffected()
	// lib/pq has no LastInsertId; zero is reported as absent
	lastRowID, _ := res.LastInsertId()

	slog.Info("admin query executed", "statement", strings.Fields(upper)[0],
		"changes", humanize.Comma(changes))
	middleware.JSONResponse(w, http.StatusOK, models.AdminQueryResponse{
		Success: true,
		Results: []map[string]any{},
		Meta: models.QueryMeta{
			Changes:   changes,
			LastRowID: lastRowID,
			Duration:  float64(time.Since(start).Microseconds()) / 1000.0,
		},
	})
}

// ResetWasteStats handles POST /api/admin/reset-waste
// Deletes every waste-stat counter row. Irreversible - no
// confirmation, no soft delete, no backup.
func (h *AdminHandler) ResetWasteStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	res, err := h.db.Exec(`DELETE FROM game_waste_stats`)
	if err != nil {
		slog.Error("failed to reset waste stats", "error", err)
		middleware.FailResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changes, _ := res.RowsAffected()
	slog.Info("waste stats reset", "deleted", humanize.Comma(changes))

	middleware.JSONResponse(w, http.StatusOK, models.AdminResetResponse{
		Success: true,
		Message: "game_waste_stats 테이블이 초기화되었습니다.",
		Meta: models.QueryMeta{
			Changes:  changes,
			Duration: float64(time.Since(start).Microseconds()) / 1000.0,
		},
	})
}

// queryRows runs a read statement and materializes every row as a
// column-name keyed map, since the shape is not known in advance.
func (h *AdminHandler) queryRows(stmt string) ([]map[string]any, error) {
	rows, err := h.db.Query(stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			// drivers hand back []byte for text columns
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
