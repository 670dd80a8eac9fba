// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sigana-id/sigana-server/db"
	"github.com/sigana-id/sigana-server/middleware"
	"github.com/sigana-id/sigana-server/models"
)

type VillageHandler struct {
	db  *db.DB
}

func NewVillageHandler(db *db.DB) *VillageHandler {
	return &VillageHandler{db: db}
}

// CreateVillage handles POST /villages
func (h *VillageHandler) CreateVillage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVillageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !hasMinLength(req.Name, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if !hasMinLength(req.District, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "district must be at least 3 characters")
		return
	}

	village := models.Village{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		District:  strings.TrimSpace(req.District),
		CreatedAt: time.Now().UTC(),
	}

	_, err := h.db.Exec(`
		INSERT INTO village (id, name, district, created_at)
		VALUES ($1, $2, $3, $4)
	`, village.ID, village.Name, village.District, village.CreatedAt)
	if err != nil {
		slog.Error("failed to insert village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create village")
		return
	}

	slog.Info("village created", "village_id", village.ID, "name", village.Name)

	middleware.JSONResponse(w, http.StatusCreated, village)
}

// ListVillages handles GET /villages?search=&page=&limit=
// search matches the village name or district.
func (h *VillageHandler) ListVillages(w http.ResponseWriter, r *http.Request) {
	page, limit, err := middleware.ParsePagination(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var f filter
	if v := strings.TrimSpace(r.URL.Query().Get("search")); v != "" {
		f.search(v, "name", "district")
	}

	var total int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM village"+f.where(), f.args...).Scan(&total); err != nil {
		slog.Error("failed to count villages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	limitClause, args := f.page(page, limit)
	rows, err := h.db.Query(
		"SELECT id, name, district, created_at FROM village"+f.where()+" ORDER BY name, id"+limitClause,
		args...,
	)
	if err != nil {
		slog.Error("failed to query villages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	villages := []models.Village{}
	for rows.Next() {
		var v models.Village
		if err := rows.Scan(&v.ID, &v.Name, &v.District, &v.CreatedAt); err != nil {
			slog.Error("failed to scan village", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		villages = append(villages, v)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate villages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VillageListResponse{
		Data: villages,
		Meta: middleware.NewPageMeta(page, limit, total),
	})
}

// GetVillage handles GET /villages/{id}
func (h *VillageHandler) GetVillage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var v models.Village
	err := h.db.QueryRow(`
		SELECT id, name, district, created_at FROM village WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.District, &v.CreatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Village not found")
		return
	}
	if err != nil {
		slog.Error("failed to query village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, v)
}

// UpdateVillage handles PUT /villages/{id}
func (h *VillageHandler) UpdateVillage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateVillageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name != nil && !hasMinLength(*req.Name, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if req.District != nil && !hasMinLength(*req.District, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "district must be at least 3 characters")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var v models.Village
	err = tx.QueryRow(`
		SELECT id, name, district, created_at FROM village WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.District, &v.CreatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Village not found")
		return
	}
	if err != nil {
		slog.Error("failed to query village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.District != nil {
		v.District = strings.TrimSpace(*req.District)
	}

	_, err = tx.Exec(`
		UPDATE village SET name = $1, district = $2 WHERE id = $3
	`, v.Name, v.District, v.ID)
	if err != nil {
		slog.Error("failed to update village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update village")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update village")
		return
	}

	slog.Info("village updated", "village_id", v.ID)

	middleware.JSONResponse(w, http.StatusOK, v)
}

// DeleteVillage handles DELETE /villages/{id}
// Poskos, balitas and their measurements go with it.
func (h *VillageHandler) DeleteVillage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM village WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete village")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Village not found")
		return
	}

	slog.Info("village deleted", "village_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		ID:      id,
		Message: "Village deleted",
	})
}

// villageExists is shared by the handlers that reference a village
func villageExists(conn *db.DB, id string) (bool, error) {
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM village WHERE id = $1", id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
