// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the waste-sort API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ScoreHandler: score submission (append-only)
  - RankingHandler: top-10 leaderboard
  - StatsHandler: per-category smoothed error rates
  - AdminHandler: allow-listed ad-hoc queries and counter reset

Handlers are created via constructor functions that accept *sql.DB and Config:

	scoreHandler := handlers.NewScoreHandler(db, cfg)

# Score Submission

	POST /api/submit-score → SubmitScore

Validates userId (0/absent rejected) and score (null rejected), then
appends one scores row with a server-assigned epoch-millisecond
timestamp. Every call creates a new row - no upsert, no retry.

# Ranking

	GET /api/ranking → GetRanking

The leaderboard is recomputed on every query: fetch the full table,
sort, truncate to 10 after sorting, then resolve display metadata.
Two table variants exist behind the RankingSource interface:

  - scores (canonical): score DESC, created_at ASC - earlier
    submission wins ties; nicknames joined from users, "Unknown"
    fallback
  - game_scores: score DESC, timestamp DESC - later submission wins
    ties; player name denormalized

The active source is fixed at construction from Config.RankingTable.
The variants are never merged.

# Waste Statistics

	GET /api/stats/region-waste?regionId= → GetRegionWasteStats

Sums correct/wrong counters per waste type (regionId filters unless
empty or "all") and reports a smoothed wrong rate:

	(wrong + 0.5*3) / (total + 3)   for total > 0, else 0

Failures use the {error} shape rather than the success envelope.

# Admin

	POST /api/admin/query       → RunQuery
	POST /api/admin/reset-waste → ResetWasteStats

RunQuery accepts a raw statement whose leading keyword must be one of
SELECT / INSERT / UPDATE / DELETE (case-insensitive, whitespace
trimmed). This is a prefix check, not a parser; the deployment
boundary is expected to restrict who can reach these routes at all.
*/
package handlers
