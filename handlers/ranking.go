// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/middleware"
	"github.com/hanriver-dev/waste-sort-server/models"
)

// rankingLimit bounds the leaderboard view. Truncation happens after
// sorting, never in the query.
const rankingLimit = 10

// RankingSource produces the top-N leaderboard view from one of the
// two score table variants. The variants have different tie-break
// directions and are never merged.
type RankingSource interface {
	// TopEntries returns at most limit entries, ranked 1..N. The
	// ordering is deterministic for a fixed table snapshot.
	TopEntries(limit int) ([]models.RankingEntry, error)

	// Table names the backing table, for logs.
	Table() string
}

// NewRankingSource selects the source for the configured table.
func NewRankingSource(db *sql.DB, table string) RankingSource {
	if table == models.TableGameScores {
		return &gameScoresSource{db: db}
	}
	return &scoresSource{db: db}
}

type RankingHandler struct {
	source RankingSource
}

func NewRankingHandler(db *sql.DB, cfg cliparse.Config) *RankingHandler {
	return &RankingHandler{source: NewRankingSource(db, cfg.RankingTable)}
}

// GetRanking handles GET /api/ranking
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	entries, err := h.source.TopEntries(rankingLimit)
	if err != nil {
		slog.Error("failed to compute ranking", "error", err, "table", h.source.Table())
		middleware.FailResponse(w, http.StatusInternalServerError, "랭킹 조회 오류: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankingResponse{
		Success: true,
		Ranking: entries,
	})
}

// scoresSource is the canonical variant: the normalized scores table
// with nicknames resolved from users. Ties go to the earlier
// submission.
type scoresSource struct {
	db *sql.DB
}

func (s *scoresSource) Table() string { return models.TableScores }

func (s *scoresSource) TopEntries(limit int) ([]models.RankingEntry, error) {
	// Full scan. The base ORDER BY fixes the pre-sort row order so the
	// stable sort below yields identical output for identical snapshots
	rows, err := s.db.Query(`
		SELECT user_id, score, locate, created_at
		FROM scores
		ORDER BY created_at ASC, user_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	defer rows.Close()

	var records []models.ScoreRecord
	for rows.Next() {
		var rec models.ScoreRecord
		var locate sql.NullString
		if err := rows.Scan(&rec.UserID, &rec.Score, &locate, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		if locate.Valid {
			rec.Locate = &locate.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	// Highest score first; equal scores keep the earlier submission first
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].CreatedAt < records[j].CreatedAt
	})

	if len(records) > limit {
		records = records[:limit]
	}
	slog.Info("ranking recomputed", "table", s.Table(), "retained", humanize.Comma(int64(len(records))))

	entries := []models.RankingEntry{}
	for i, rec := range records {
		nickname, err := s.lookupNickname(rec.UserID)
		if err != nil {
			return nil, err
		}

		region := models.DefaultCategory
		if rec.Locate != nil && *rec.Locate != "" {
			region = *rec.Locate
		}

		entries = append(entries, models.RankingEntry{
			Rank:     i + 1,
			Nickname: nickname,
			Score:    rec.Score,
			Mistakes: 0, // not tracked in this schema
			Region:   region,
		})
	}

	return entries, nil
}

func (s *scoresSource) lookupNickname(userID int64) (string, error) {
	var nickname string
	err := s.db.QueryRow(`
		SELECT nickname FROM users WHERE user_id = $1
	`, userID).Scan(&nickname)
	if err == sql.ErrNoRows {
		return models.UnknownNickname, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up nickname: %w", err)
	}
	return nickname, nil
}

// gameScoresSource is the hosted-event variant: a denormalized table
// with the player name inline. Ties go to the more recent submission.
type gameScoresSource struct {
	db *sql.DB
}

func (s *gameScoresSource) Table() string { return models.TableGameScores }

func (s *gameScoresSource) TopEntries(limit int) ([]models.RankingEntry, error) {
	rows, err := s.db.Query(`
		SELECT player_name, score, region_name, timestamp
		FROM game_scores
		ORDER BY timestamp ASC, player_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read game_scores: %w", err)
	}
	defer rows.Close()

	type gameScore struct {
		playerName string
		score      int64
		regionName sql.NullString
		timestamp  int64
	}

	var records []gameScore
	for rows.Next() {
		var rec gameScore
		if err := rows.Scan(&rec.playerName, &rec.score, &rec.regionName, &rec.timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan game_scores row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game_scores: %w", err)
	}

	// Highest score first; equal scores keep the later submission first
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].score != records[j].score {
			return records[i].score > records[j].score
		}
		return records[i].timestamp > records[j].timestamp
	})

	if len(records) > limit {
		records = records[:limit]
	}
	slog.Info("ranking recomputed", "table", s.Table(), "retained", humanize.Comma(int64(len(records))))

	entries := []models.RankingEntry{}
	for i, rec := range records {
		nickname := rec.playerName
		if nickname == "" {
			nickname = models.UnknownNickname
		}

		region := models.DefaultCategory
		if rec.regionName.Valid && rec.regionName.String != "" {
			region = rec.regionName.String
		}

		entries = append(entries, models.RankingEntry{
			Rank:     i + 1,
			Nickname: nickname,
			Score:    rec.score,
			Mistakes: 0,
			Region:   region,
		})
	}

	return entries, nil
}
