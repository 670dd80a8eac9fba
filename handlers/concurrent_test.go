// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sigana-id/sigana-server/anthropometry"
	"github.com/sigana-id/sigana-server/models"
	"github.com/sigana-id/sigana-server/testutil"
)

// TestConcurrentMeasurements verifies that simultaneous submissions from
// several posko volunteers are all stored with their own assessment
func TestConcurrentMeasurements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMeasurementHandler(db, anthropometry.Default())
	villageID := testutil.CreateTestVillage(t, db, "Sukamaju")

	numChildren := 10
	children := make([]string, numChildren)
	for i := range children {
		sex := "male"
		if i%2 == 1 {
			sex = "female"
		}
		children[i] = testutil.CreateTestBalita(t, db, villageID, "", sex, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	}

	measuredAt := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numChildren; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/measurements", models.CreateMeasurementRequest{
				BalitaID:            children[idx],
				WeightKg:            8 + float64(idx)*0.3,
				HeightCm:            75 + float64(idx),
				HeadCircumferenceCm: 45.5,
				ArmCircumferenceCm:  15,
				Position:            models.PositionStanding,
				MeasuredAt:          &measuredAt,
			}, nil)
			w := httptest.NewRecorder()

			handler.CreateMeasurement(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numChildren {
		t.Errorf("Expected %d successful submissions, got %d", numChildren, successCount.Load())
	}

	var count, distinct int
	err := db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT balita_id) FROM measurement").Scan(&count, &distinct)
	if err != nil {
		t.Fatalf("Failed to count measurements: %v", err)
	}
	if count != numChildren || distinct != numChildren {
		t.Errorf("Expected %d measurements for %d children, got %d for %d", numChildren, numChildren, count, distinct)
	}
}

// TestConcurrentReadsDuringWrites mixes list and statistics calls with inserts
func TestConcurrentReadsDuringWrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMeasurementHandler(db, anthropometry.Default())
	villageID := testutil.CreateTestVillage(t, db, "Sukamaju")
	balitaID := testutil.CreateTestBalita(t, db, villageID, "", "female", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(3)
		go func(day int) {
			defer wg.Done()
			at := time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
			w := httptest.NewRecorder()
			handler.CreateMeasurement(w, testutil.MakeRequest("POST", "/measurements", models.CreateMeasurementRequest{
				BalitaID: balitaID, WeightKg: 10, HeightCm: 80, HeadCircumferenceCm: 46, ArmCircumferenceCm: 15,
				Position: models.PositionStanding, MeasuredAt: &at,
			}, nil))
			if w.Code != http.StatusCreated {
				failures.Add(1)
			}
		}(i + 1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.ListMeasurements(w, testutil.MakeRequest("GET", "/measurements?balita_id="+balitaID, nil, nil))
			if w.Code != http.StatusOK {
				failures.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.GetStatistics(w, testutil.MakeRequest("GET", "/measurements/statistics", nil, nil))
			if w.Code != http.StatusOK {
				failures.Add(1)
			}
		}()
	}

	wg.Wait()

	if failures.Load() != 0 {
		t.Errorf("Expected every request to succeed, %d failed", failures.Load())
	}
}
