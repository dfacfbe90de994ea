package models

// Ranking table variants
const (
	TableScores     = "scores"
	TableGameScores = "game_scores"
)

// DefaultCategory is the display fallback for a missing region or
// waste category ("Other").
const DefaultCategory = "기타"

// UnknownNickname is the display fallback when no profile row exists.
const UnknownNickname = "Unknown"

// Request types

type SubmitScoreRequest struct {
	UserID int64  `json:"userId"`
	Score  *int64 `json:"score"`
	// Accepted for forward compatibility with the client payload but
	// not persisted by the minimal schema
	Mistakes   int64    `json:"mistakes,omitempty"`
	WrongItems []string `json:"wrongItems,omitempty"`
	Locate     *string  `json:"locate,omitempty"`
}

type AdminQueryRequest struct {
	SQL string `json:"sql"`
}

// Response types

// APIResponse is the success/message envelope shared by the submit,
// ranking-error, and admin endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type RankingResponse struct {
	Success bool           `json:"success"`
	Ranking []RankingEntry `json:"ranking"`
}

type AdminQueryResponse struct {
	Success bool             `json:"success"`
	Results []map[string]any `json:"results"`
	Meta    QueryMeta        `json:"meta"`
}

type AdminResetResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Meta    QueryMeta `json:"meta"`
}

// StatsErrorResponse is the failure shape of the stats endpoint. It
// predates the success/message envelope and clients depend on the
// bare "error" key, so it stays asymmetric.
type StatsErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

// ScoreRecord is one row of the scores table.
type ScoreRecord struct {
	UserID    int64   `json:"userId"`
	Score     int64   `json:"score"`
	Locate    *string `json:"locate,omitempty"`
	CreatedAt int64   `json:"createdAt"` // epoch milliseconds, server-assigned
}

// RankingEntry is the read-time leaderboard projection, recomputed on
// every query.
type RankingEntry struct {
	Rank     int    `json:"rank"` // 1-indexed
	Nickname string `json:"nickname"`
	Score    int64  `json:"score"`
	Mistakes int64  `json:"mistakes"`
	Region   string `json:"region"`
}

// WasteTypeStat is one aggregated row of the statistics board.
type WasteTypeStat struct {
	WasteType    string  `json:"wasteType"`
	TotalCorrect int64   `json:"totalCorrect"`
	TotalWrong   int64   `json:"totalWrong"`
	WrongRate    float64 `json:"wrongRate"` // smoothed, 0..1
}

// QueryMeta carries mutation metadata for admin operations.
type QueryMeta struct {
	RowsRead  int64   `json:"rows_read"`
	Changes   int64   `json:"changes"`
	LastRowID int64   `json:"last_row_id,omitempty"`
	Duration  float64 `json:"duration"` // milliseconds
}
