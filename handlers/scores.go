// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/middleware"
	"github.com/hanriver-dev/waste-sort-server/models"
)

type ScoreHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewScoreHandler(db *sql.DB, cfg cliparse.Config) *ScoreHandler {
	return &ScoreHandler{db: db, cfg: cfg}
}

// SubmitScore handles POST /api/submit-score
// Appends one score row per call - no upsert, no deduplication. The
// caller retries on failure if it wants more than at-most-once.
func (h *ScoreHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.FailResponse(w, http.StatusBadRequest, "요청 본문을 해석할 수 없습니다.")
		return
	}

	// userId 0 is rejected on purpose: the client treats 0 as "not
	// logged in", so it is as invalid as absent. score is a pointer so
	// an explicit 0 stays distinguishable from null/missing.
	if req.UserID == 0 || req.Score == nil {
		middleware.FailResponse(w, http.StatusBadRequest, "필수 값이 누락되었습니다.")
		return
	}

	createdAt := time.Now().UnixMilli()

	_, err := h.db.Exec(`
		INSERT INTO scores (user_id, score, locate, created_at)
		VALUES ($1, $2, $3, $4)
	`, req.UserID, *req.Score, req.Locate, createdAt)

	if err != nil {
		slog.Error("failed to insert score", "error", err, "user_id", req.UserID)
		middleware.FailResponse(w, http.StatusInternalServerError, "점수 저장 오류: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.APIResponse{
		Success: true,
		Message: "점수가 성공적으로 등록되었습니다.",
	})
}
