// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hanriver-dev/waste-sort-server/cliparse"
	"github.com/hanriver-dev/waste-sort-server/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// Each test gets its own file under t.TempDir, so no cleanup or
// external server is needed. A single pooled connection keeps
// concurrent writes serialized, matching the production sqlite setup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "waste-sort-test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8788,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		RankingTable: "scores",
	}
}

// InsertScore adds one row to the scores table
func InsertScore(t *testing.T, conn *sql.DB, userID, score int64, locate *string, createdAt int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO scores (user_id, score, locate, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, score, locate, createdAt)
	if err != nil {
		t.Fatalf("Failed to insert test score: %v", err)
	}
}

// InsertUser adds a nickname mapping to the users table
func InsertUser(t *testing.T, conn *sql.DB, userID int64, nickname string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO users (user_id, nickname)
		VALUES ($1, $2)
	`, userID, nickname)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
}

// InsertGameScore adds one row to the denormalized game_scores table
func InsertGameScore(t *testing.T, conn *sql.DB, playerName string, score int64, regionName *string, timestamp int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO game_scores (player_name, score, region_name, timestamp)
		VALUES ($1, $2, $3, $4)
	`, playerName, score, regionName, timestamp)
	if err != nil {
		t.Fatalf("Failed to insert test game score: %v", err)
	}
}

// InsertWasteStat adds one counter row to game_waste_stats.
// regionID and wasteType may be nil to exercise the display fallbacks.
func InsertWasteStat(t *testing.T, conn *sql.DB, regionID, wasteType *string, correct, wrong int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO game_waste_stats (region_id, waste_type, correct_count, wrong_count)
		VALUES ($1, $2, $3, $4)
	`, regionID, wasteType, correct, wrong)
	if err != nil {
		t.Fatalf("Failed to insert test waste stat: %v", err)
	}
}

// Ptr returns a pointer to v, for optional request/column fields.
func Ptr[T any](v T) *T {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountRows returns the row count of a fixed, known table name.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
