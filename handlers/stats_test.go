// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hanriver-dev/waste-sort-server/models"
	"github.com/hanriver-dev/waste-sort-server/testutil"
)

func TestSmoothedWrongRate(t *testing.T) {
	tests := []struct {
		name           string
		correct, wrong int64
		expected       float64
	}{
		{"zero samples report zero, not the prior", 0, 0, 0},
		{"one correct", 1, 0, 0.375},                 // 1.5 / 4
		{"nine wrong", 0, 9, 0.875},                  // 10.5 / 12
		{"balanced", 3, 3, 0.5},                      // 4.5 / 9
		{"all correct stays above zero", 100, 0, 1.5 / 103.0},
		{"all wrong stays below one", 0, 100, 101.5 / 103.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothedWrongRate(tt.correct, tt.wrong)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("smoothedWrongRate(%d, %d) = %v, expected %v",
					tt.correct, tt.wrong, got, tt.expected)
			}
		})
	}
}

func TestGetRegionWasteStats_Unfiltered(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	// plastic appears in two regions and must be summed across them
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("plastic"), 10, 5)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_busan"), testutil.Ptr("plastic"), 4, 2)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("glass"), 20, 1)

	req := testutil.MakeRequest("GET", "/api/stats/region-waste", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRegionWasteStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var stats []models.WasteTypeStat
	testutil.AssertJSON(t, w, &stats)
	if len(stats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats))
	}

	// Ordered by summed wrong count, worst first
	if stats[0].WasteType != "plastic" || stats[0].TotalCorrect != 14 || stats[0].TotalWrong != 7 {
		t.Errorf("unexpected first row: %+v", stats[0])
	}
	if stats[1].WasteType != "glass" || stats[1].TotalWrong != 1 {
		t.Errorf("unexpected second row: %+v", stats[1])
	}

	// (7 + 1.5) / (21 + 3)
	if math.Abs(stats[0].WrongRate-8.5/24.0) > 1e-12 {
		t.Errorf("unexpected smoothed rate: %v", stats[0].WrongRate)
	}
}

func TestGetRegionWasteStats_RegionFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("plastic"), 10, 5)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_busan"), testutil.Ptr("paper"), 8, 3)

	req := testutil.MakeRequest("GET", "/api/stats/region-waste?regionId=kr_busan", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRegionWasteStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var stats []models.WasteTypeStat
	testutil.AssertJSON(t, w, &stats)
	if len(stats) != 1 {
		t.Fatalf("expected 1 category for kr_busan, got %d", len(stats))
	}
	if stats[0].WasteType != "paper" {
		t.Errorf("expected paper, got %s", stats[0].WasteType)
	}
}

func TestGetRegionWasteStats_AllMeansUnfiltered(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("plastic"), 1, 1)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_busan"), testutil.Ptr("glass"), 1, 2)

	req := testutil.MakeRequest("GET", "/api/stats/region-waste?regionId=all", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRegionWasteStats(w, req)

	var stats []models.WasteTypeStat
	testutil.AssertJSON(t, w, &stats)
	if len(stats) != 2 {
		t.Errorf("regionId=all must not filter, got %d categories", len(stats))
	}
}

func TestGetRegionWasteStats_NoMatchingRows(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_busan"), testutil.Ptr("plastic"), 1, 1)

	req := testutil.MakeRequest("GET", "/api/stats/region-waste?regionId=kr_seoul", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRegionWasteStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var stats []models.WasteTypeStat
	testutil.AssertJSON(t, w, &stats)
	if stats == nil {
		t.Error("expected an empty JSON array, got null")
	}
	if len(stats) != 0 {
		t.Errorf("expected empty sequence, got %d rows", len(stats))
	}
}

func TestGetRegionWasteStats_NullCategoryFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	testutil.InsertWasteStat(t, db, nil, nil, 2, 6)

	req := testutil.MakeRequest("GET", "/api/stats/region-waste", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRegionWasteStats(w, req)

	var stats []models.WasteTypeStat
	testutil.AssertJSON(t, w, &stats)
	if len(stats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(stats))
	}
	if stats[0].WasteType != "기타" {
		t.Errorf("expected 기타 fallback, got %s", stats[0].WasteType)
	}
}

func TestGetRegionWasteStats_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	handler := NewStatsHandler(db, testutil.GetTestConfig())

	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("plastic"), 5, 5)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("glass"), 5, 5)
	testutil.InsertWasteStat(t, db, testutil.Ptr("kr_seoul"), testutil.Ptr("paper"), 5, 5)

	run := func() string {
		req := testutil.MakeRequest("GET", "/api/stats/region-waste", nil, nil)
		w := httptest.NewRecorder()
		handler.GetRegionWasteStats(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		return w.Body.String()
	}

	first := run()
	for i := 0; i < 3; i++ {
		if got := run(); got != first {
			t.Fatalf("stats output not stable across queries:\n%s\nvs\n%s", first, got)
		}
	}
}
