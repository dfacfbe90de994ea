// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitScoreRequest: userId, score, mistakes?, wrongItems?, locate?
  - AdminQueryRequest: sql

Optional fields are pointers (or omitted slices) so "absent" and
"zero" stay distinguishable where the contract cares, most notably
SubmitScoreRequest.Score.

# Response Types

Types for JSON responses:

  - APIResponse: success, message (shared envelope)
  - RankingResponse: success, ranking
  - AdminQueryResponse: success, results, meta
  - AdminResetResponse: success, message, meta
  - StatsErrorResponse: error (stats endpoint only, kept asymmetric
    for client compatibility)

# Domain Types

Internal data structures:

  - ScoreRecord: one append-only score submission
  - RankingEntry: leaderboard projection (rank, nickname, score,
    mistakes, region), recomputed on every query
  - WasteTypeStat: aggregated correct/wrong tallies with smoothed
    wrong rate
  - QueryMeta: mutation metadata for admin operations

# Constants

Ranking table variants:

	TableScores     = "scores"
	TableGameScores = "game_scores"

Display fallbacks:

	DefaultCategory = "기타"
	UnknownNickname = "Unknown"
*/
package models
