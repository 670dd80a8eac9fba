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

type PoskoHandler struct {
	db  *db.DB
}

func NewPoskoHandler(db *db.DB) *PoskoHandler {
	return &PoskoHandler{db: db}
}

// CreatePosko handles POST /poskos
func (h *PoskoHandler) CreatePosko(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePoskoRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !hasMinLength(req.Name, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if req.VillageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "village_id is required")
		return
	}
	if msg := validateCoordinates(req.Latitude, req.Longitude); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
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

	posko := models.Posko{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		VillageID: req.VillageID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now().UTC(),
	}

	_, err = h.db.Exec(`
		INSERT INTO posko (id, name, village_id, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, posko.ID, posko.Name, posko.VillageID, posko.Latitude, posko.Longitude, posko.CreatedAt)
	if err != nil {
		slog.Error("failed to insert posko", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create posko")
		return
	}

	slog.Info("posko created", "posko_id", posko.ID, "village_id", posko.VillageID)

	middleware.JSONResponse(w, http.StatusCreated, posko)
}

const poskoColumns = `id, name, village_id, latitude, longitude, created_at`

// ListPoskos handles GET /poskos?village_id=&search=&page=&limit=
func (h *PoskoHandler) ListPoskos(w http.ResponseWriter, r *http.Request) {
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
	if v := strings.TrimSpace(q.Get("search")); v != "" {
		f.search(v, "name")
	}

	var total int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM posko"+f.where(), f.args...).Scan(&total); err != nil {
		slog.Error("failed to count poskos", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	limitClause, args := f.page(page, limit)
	rows, err := h.db.Query("SELECT "+poskoColumns+" FROM posko"+f.where()+" ORDER BY name, id"+limitClause, args...)
	if err != nil {
		slog.Error("failed to query poskos", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	poskos := []models.Posko{}
	for rows.Next() {
		p, err := scanPosko(rows)
		if err != nil {
			slog.Error("failed to scan posko", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		poskos = append(poskos, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate poskos", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PoskoListResponse{
		Data: poskos,
		Meta: middleware.NewPageMeta(page, limit, total),
	})
}

// GetPosko handles GET /poskos/{id}
func (h *PoskoHandler) GetPosko(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := scanPosko(h.db.QueryRow("SELECT "+poskoColumns+" FROM posko WHERE id = $1", id))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Posko not found")
		return
	}
	if err != nil {
		slog.Error("failed to query posko", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// UpdatePosko handles PUT /poskos/{id}
// A posko with registered children cannot move to another village.
func (h *PoskoHandler) UpdatePosko(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdatePoskoRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name != nil && !hasMinLength(*req.Name, 3) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if req.VillageID != nil && *req.VillageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "village_id cannot be empty")
		return
	}
	if msg := validateCoordinates(req.Latitude, req.Longitude); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	p, err := scanPosko(tx.QueryRow("SELECT "+poskoColumns+" FROM posko WHERE id = $1", id))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Posko not found")
		return
	}
	if err != nil {
		slog.Error("failed to query posko", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.VillageID != nil && *req.VillageID != p.VillageID {
		var villages, children int
		err := tx.QueryRow(`
			SELECT
				(SELECT COUNT(*) FROM village WHERE id = $1),
				(SELECT COUNT(*) FROM balita WHERE posko_id = $2)
		`, *req.VillageID, p.ID).Scan(&villages, &children)
		if err != nil {
			slog.Error("failed to check posko move", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if villages == 0 {
			middleware.ErrorResponse(w, http.StatusNotFound, "Village not found")
			return
		}
		if children > 0 {
			middleware.ErrorResponse(w, http.StatusConflict, "posko has registered children and cannot change village")
			return
		}
		p.VillageID = *req.VillageID
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Latitude != nil {
		p.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = req.Longitude
	}

	_, err = tx.Exec(`
		UPDATE posko SET name = $1, village_id = $2, latitude = $3, longitude = $4 WHERE id = $5
	`, p.Name, p.VillageID, p.Latitude, p.Longitude, p.ID)
	if err != nil {
		slog.Error("failed to update posko", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update posko")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update posko")
		return
	}

	slog.Info("posko updated", "posko_id", p.ID, "village_id", p.VillageID)

	middleware.JSONResponse(w, http.StatusOK, p)
}

// DeletePosko handles DELETE /poskos/{id}
// Children registered there stay in the village without a posko.
func (h *PoskoHandler) DeletePosko(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM posko WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete posko", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete posko")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Posko not found")
		return
	}

	slog.Info("posko deleted", "posko_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		ID:      id,
		Message: "Posko deleted",
	})
}

// GetMap handles GET /poskos/map
// Only poskos with both coordinates are returned.
func (h *PoskoHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT p.id, p.name, p.latitude, p.longitude, v.name, v.district,
			(SELECT COUNT(*) FROM balita b WHERE b.posko_id = p.id) AS balita_count
		FROM posko p
		JOIN village v ON p.village_id = v.id
		WHERE p.latitude IS NOT NULL AND p.longitude IS NOT NULL
		ORDER BY v.name, p.name, p.id
	`)
	if err != nil {
		slog.Error("failed to query posko map", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.PoskoMapEntry{}
	for rows.Next() {
		var e models.PoskoMapEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Latitude, &e.Longitude,
			&e.VillageName, &e.District, &e.BalitaCount); err != nil {
			slog.Error("failed to scan posko map entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate posko map", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PoskoMapResponse{Data: entries})
}

func scanPosko(row rowScanner) (models.Posko, error) {
	var p models.Posko
	err := row.Scan(&p.ID, &p.Name, &p.VillageID, &p.Latitude, &p.Longitude, &p.CreatedAt)
	return p, err
}

func validateCoordinates(lat, long *float64) string {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return "latitude must be between -90 and 90"
	}
	if long != nil && (*long < -180 || *long > 180) {
		return "longitude must be between -180 and 180"
	}
	return ""
}
