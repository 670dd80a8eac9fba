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

	"github.com/sigana-id/sigana-server/anthropometry"
	"github.com/sigana-id/sigana-server/db"
	"github.com/sigana-id/sigana-server/middleware"
	"github.com/sigana-id/sigana-server/models"
)

const balitaColumns = `id, child_name, parent_name, birth_date, sex, village_id, posko_id, created_at`

type BalitaHandler struct {
	db  *db.DB
}

func NewBalitaHandler(db *db.DB) *BalitaHandler {
	return &BalitaHandler{db: db}
}

// CreateBalita handles POST /balitas
func (h *BalitaHandler) CreateBalita(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBalitaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.ChildName) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "child_name is required")
		return
	}
	if strings.TrimSpace(req.ParentName) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "parent_name is required")
		return
	}

	birth, err := time.Parse(models.DateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}
	if birth.After(time.Now().UTC()) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "birth_date cannot be in the future")
		return
	}

	sex, err := anthropometry.ParseSex(req.Sex)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sex must be male or female")
		return
	}

	if req.VillageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "village_id is required")
		return
	}
	exists, err := villageExists(h.db, req.VillageID)
	if err != nil {
		slog.Error("failed to query village", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Village not found")
		return
	}

	var poskoID *string
	if req.PoskoID != nil && *req.PoskoID != "" {
		var villageID string
		err := h.db.QueryRow("SELECT village_id FROM posko WHERE id = $1", *req.PoskoID).Scan(&villageID)
		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "Posko not found")
			return
		}
		if err != nil {
			slog.Error("failed to query posko", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if villageID != req.VillageID {
			middleware.ErrorResponse(w, http.StatusBadRequest, "posko does not belong to the village")
			return
		}
		poskoID = req.PoskoID
	}

	balita := models.Balita{
		ID:         uuid.NewString(),
		ChildName:  strings.TrimSpace(req.ChildName),
		ParentName: strings.TrimSpace(req.ParentName),
		BirthDate:  birth.Format(models.DateLayout),
		AgeMonths:  anthropometry.AgeInMonths(birth, time.Now().UTC()),
		Sex:        string(sex),
		VillageID:  req.VillageID,
		PoskoID:    poskoID,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = h.db.Exec(`
		INSERT INTO balita (`+balitaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, balita.ID, balita.ChildName, balita.ParentName, birth, balita.Sex,
		balita.VillageID, balita.PoskoID, balita.CreatedAt)
	if err != nil {
		slog.Error("failed to insert balita", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register balita")
		return
	}

	slog.Info("balita registered", "balita_id", balita.ID, "village_id", balita.VillageID)

	middleware.JSONResponse(w, http.StatusCreated, balita)
}

// ListBalitas handles GET /balitas?village_id=&posko_id=&search=&page=&limit=
// search matches the child's or the parent's name.
func (h *BalitaHandler) ListBalitas(w http.ResponseWriter, r *http.Request) {
	page, limit, err := middleware.ParsePagination(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var f filter
	q := r.URL.Query()
	if v := q.Get("village_id"); v != "" {
		f.add("village_id", v)
	}
	if v := q.Get("posko_id"); v != "" {
		f.add("posko_id", v)
	}
	if v := strings.TrimSpace(q.Get("search")); v != "" {
		f.search(v, "child_name", "parent_name")
	}

	var total int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM balita"+f.where(), f.args...).Scan(&total); err != nil {
		slog.Error("failed to count balitas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	limitClause, args := f.page(page, limit)
	rows, err := h.db.Query(
		"SELECT "+balitaColumns+" FROM balita"+f.where()+" ORDER BY created_at DESC, id"+limitClause,
		args...,
	)
	if err != nil {
		slog.Error("failed to query balitas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	balitas := []models.Balita{}
	for rows.Next() {
		b, err := scanBalita(rows)
		if err != nil {
			slog.Error("failed to scan balita", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		balitas = append(balitas, b)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate balitas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BalitaListResponse{
		Data: balitas,
		Meta: middleware.NewPageMeta(page, limit, total),
	})
}

// GetBalita handles GET /balitas/{id}
func (h *BalitaHandler) GetBalita(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := scanBalita(h.db.QueryRow("SELECT "+balitaColumns+" FROM balita WHERE id = $1", id))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Balita not found")
		return
	}
	if err != nil {
		slog.Error("failed to query balita", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, b)
}

// DeleteBalita handles DELETE /balitas/{id}
// Measurements of the child are removed with it.
func (h *BalitaHandler) DeleteBalita(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM balita WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete balita", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete balita")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Balita not found")
		return
	}

	slog.Info("balita deleted", "balita_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		ID:      id,
		Message: "Balita deleted",
	})
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBalita(row rowScanner) (models.Balita, error) {
	var b models.Balita
	var birth time.Time
	if err := row.Scan(&b.ID, &b.ChildName, &b.ParentName, &birth, &b.Sex,
		&b.VillageID, &b.PoskoID, &b.CreatedAt); err != nil {
		return models.Balita{}, err
	}
	b.BirthDate = birth.Format(models.DateLayout)
	b.AgeMonths = anthropometry.AgeInMonths(birth, time.Now().UTC())
	return b, nil
}
