// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/sigana-id/sigana-server/anthropometry"
	"github.com/sigana-id/sigana-server/cliparse"
	"github.com/sigana-id/sigana-server/db"
	"github.com/sigana-id/sigana-server/handlers"
	"github.com/sigana-id/sigana-server/metrics"
	"github.com/sigana-id/sigana-server/middleware"
)

func NewRouter(conn *db.DB) *http.ServeMux {
	mux := http.NewServeMux()
	ref := anthropometry.Default()

	// Initialize handlers
	anthropometryHandler := handlers.NewAnthropometryHandler(ref)
	villageHandler := handlers.NewVillageHandler(conn)
	poskoHandler := handlers.NewPoskoHandler(conn)
	balitaHandler := handlers.NewBalitaHandler(conn)
	measurementHandler := handlers.NewMeasurementHandler(conn, ref)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Stateless calculator
	mux.HandleFunc("POST /anthropometry/calculate", middleware.WithLogging(anthropometryHandler.Calculate))

	// Regions
	mux.HandleFunc("POST /villages", middleware.WithLogging(villageHandler.CreateVillage))
	mux.HandleFunc("GET /villages", middleware.WithLogging(villageHandler.ListVillages))
	mux.HandleFunc("GET /villages/{id}", middleware.WithLogging(villageHandler.GetVillage))
	mux.HandleFunc("PUT /villages/{id}", middleware.WithLogging(villageHandler.UpdateVillage))
	mux.HandleFunc("DELETE /villages/{id}", middleware.WithLogging(villageHandler.DeleteVillage))
	mux.HandleFunc("POST /poskos", middleware.WithLogging(poskoHandler.CreatePosko))
	mux.HandleFunc("GET /poskos", middleware.WithLogging(poskoHandler.ListPoskos))
	mux.HandleFunc("GET /poskos/map", middleware.WithLogging(poskoHandler.GetMap))
	mux.HandleFunc("GET /poskos/{id}", middleware.WithLogging(poskoHandler.GetPosko))
	mux.HandleFunc("PUT /poskos/{id}", middleware.WithLogging(poskoHandler.UpdatePosko))
	mux.HandleFunc("DELETE /poskos/{id}", middleware.WithLogging(poskoHandler.DeletePosko))

	// Children
	mux.HandleFunc("POST /balitas", middleware.WithLogging(balitaHandler.CreateBalita))
	mux.HandleFunc("GET /balitas", middleware.WithLogging(balitaHandler.ListBalitas))
	mux.HandleFunc("GET /balitas/{id}", middleware.WithLogging(balitaHandler.GetBalita))
	mux.HandleFunc("DELETE /balitas/{id}", middleware.WithLogging(balitaHandler.DeleteBalita))

	// Measurements
	mux.HandleFunc("POST /measurements", middleware.WithLogging(measurementHandler.CreateMeasurement))
	mux.HandleFunc("GET /measurements", middleware.WithLogging(measurementHandler.ListMeasurements))
	mux.HandleFunc("GET /measurements/statistics", middleware.WithLogging(measurementHandler.GetStatistics))
	mux.HandleFunc("GET /measurements/{id}", middleware.WithLogging(measurementHandler.GetMeasurement))
	mux.HandleFunc("DELETE /measurements/{id}", middleware.WithLogging(measurementHandler.DeleteMeasurement))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sigana API v1"))
	})

	return mux
}
