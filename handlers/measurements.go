// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
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

// recentLimit is how many measurements the statistics endpoint returns
const recentLimit = 10

// The z and status columns follow the order of anthropometry.Metrics.
const measurementColumns = `id, balita_id, weight_kg, height_cm, head_circumference_cm, arm_circumference_cm,
	position, age_months,
	weight_for_age_z, height_for_age_z, weight_for_height_z,
	head_circumference_z, arm_circumference_z, bmi_for_age_z,
	weight_for_age_status, height_for_age_status, weight_for_height_status,
	head_circumference_status, arm_circumference_status, bmi_for_age_status,
	overall_status, notes, sanitation, medical_history, measured_at, created_at`

type MeasurementHandler struct {
	db  *db.DB
	ref *anthropometry.Reference
}

func NewMeasurementHandler(db *db.DB, ref *anthropometry.Reference) *MeasurementHandler {
	return &MeasurementHandler{db: db, ref: ref}
}

// CreateMeasurement handles POST /measurements
// Age and nutritional status are computed here, never taken from the client.
func (h *MeasurementHandler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeasurementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.BalitaID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "balita_id is required")
		return
	}
	if msg := validateMeasurements(req.WeightKg, req.HeightCm, req.HeadCircumferenceCm, req.ArmCircumferenceCm); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if req.Position != models.PositionLying && req.Position != models.PositionStanding {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position must be lying or standing")
		return
	}
	if msg := validateQuestionnaires(req.Sanitation, req.MedicalHistory); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	var sexValue string
	var birth time.Time
	err := h.db.QueryRow(`
		SELECT sex, birth_date FROM balita WHERE id = $1
	`, req.BalitaID).Scan(&sexValue, &birth)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Balita not found")
		return
	}
	if err != nil {
		slog.Error("failed to query balita", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sex, err := anthropometry.ParseSex(sexValue)
	if err != nil {
		slog.Error("stored balita has invalid sex", "balita_id", req.BalitaID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now().UTC()
	measuredAt := now
	if req.MeasuredAt != nil {
		measuredAt = req.MeasuredAt.UTC()
	}
	if measuredAt.Before(birth) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "measured_at is before the birth date")
		return
	}

	ageMonths := anthropometry.AgeInMonths(birth, measuredAt)
	res := assess(h.ref, anthropometry.Measurement{
		AgeMonths:  float64(ageMonths),
		WeightKg:   req.WeightKg,
		HeightCm:   req.HeightCm,
		HeadCircCm: req.HeadCircumferenceCm,
		ArmCircCm:  req.ArmCircumferenceCm,
		Sex:        sex,
	}, "measurement")

	var notes *string
	if req.Notes != nil && strings.TrimSpace(*req.Notes) != "" {
		trimmed := strings.TrimSpace(*req.Notes)
		notes = &trimmed
	}

	m := models.Measurement{
		ID:                  uuid.NewString(),
		BalitaID:            req.BalitaID,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		HeadCircumferenceCm: req.HeadCircumferenceCm,
		ArmCircumferenceCm:  req.ArmCircumferenceCm,
		Position:            req.Position,
		AgeMonths:           ageMonths,
		ZScores:             zScoreMap(res),
		Labels:              labelMap(res),
		Status:              string(res.Severity),
		Notes:               notes,
		MeasuredAt:          measuredAt,
		CreatedAt:           now,
		Sanitation:          req.Sanitation,
		MedicalHistory:      req.MedicalHistory,
	}

	sanitation, err := encodeQuestionnaire(m.Sanitation)
	if err != nil {
		slog.Error("failed to encode sanitation questionnaire", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record measurement")
		return
	}
	medical, err := encodeQuestionnaire(m.MedicalHistory)
	if err != nil {
		slog.Error("failed to encode medical history questionnaire", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record measurement")
		return
	}

	args := []any{m.ID, m.BalitaID, m.WeightKg, m.HeightCm, m.HeadCircumferenceCm, m.ArmCircumferenceCm,
		m.Position, m.AgeMonths}
	for _, metric := range anthropometry.Metrics {
		args = append(args, res.ZScores[metric])
	}
	for _, metric := range anthropometry.Metrics {
		args = append(args, res.Labels[metric])
	}
	args = append(args, m.Status, m.Notes, sanitation, medical, m.MeasuredAt, m.CreatedAt)

	_, err = h.db.Exec(`
		INSERT INTO measurement (`+measurementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26)
	`, args...)
	if err != nil {
		slog.Error("failed to insert measurement", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record measurement")
		return
	}

	slog.Info("measurement recorded",
		"measurement_id", m.ID,
		"balita_id", m.BalitaID,
		"age_months", m.AgeMonths,
		"status", m.Status,
	)

	middleware.JSONResponse(w, http.StatusCreated, m)
}

// ListMeasurements handles GET /measurements?balita_id=&status=&page=&limit=
func (h *MeasurementHandler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	page, limit, err := middleware.ParsePagination(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var f filter
	q := r.URL.Query()
	if v := q.Get("balita_id"); v != "" {
		f.add("balita_id", v)
	}
	if v := q.Get("status"); v != "" {
		severity, ok := anthropometry.ParseSeverity(v)
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "status must be green, yellow or red")
			return
		}
		f.add("overall_status", string(severity))
	}

	var total int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM measurement"+f.where(), f.args...).Scan(&total); err != nil {
		slog.Error("failed to count measurements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	limitClause, args := f.page(page, limit)
	list, err := h.queryMeasurements(
		"SELECT "+measurementColumns+" FROM measurement"+f.where()+
			" ORDER BY measured_at DESC, created_at DESC, id"+limitClause,
		args...,
	)
	if err != nil {
		slog.Error("failed to query measurements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeasurementListResponse{
		Data: list,
		Meta: middleware.NewPageMeta(page, limit, total),
	})
}

// GetMeasurement handles GET /measurements/{id}
func (h *MeasurementHandler) GetMeasurement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	m, err := scanMeasurement(h.db.QueryRow("SELECT "+measurementColumns+" FROM measurement WHERE id = $1", id))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Measurement not found")
		return
	}
	if err != nil {
		slog.Error("failed to query measurement", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, m)
}

// DeleteMeasurement handles DELETE /measurements/{id}
func (h *MeasurementHandler) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM measurement WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete measurement", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete measurement")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Measurement not found")
		return
	}

	slog.Info("measurement deleted", "measurement_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		ID:      id,
		Message: "Measurement deleted",
	})
}

// GetStatistics handles GET /measurements/statistics
func (h *MeasurementHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats := models.StatisticsResponse{
		ByStatus: map[string]int{
			string(anthropometry.Green):  0,
			string(anthropometry.Yellow): 0,
			string(anthropometry.Red):    0,
		},
	}

	err := h.db.QueryRow(`
		SELECT COUNT(*), COUNT(DISTINCT balita_id) FROM measurement
	`).Scan(&stats.TotalMeasurements, &stats.ChildrenChecked)
	if err != nil {
		slog.Error("failed to count measurements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT overall_status, COUNT(*) FROM measurement GROUP BY overall_status
	`)
	if err != nil {
		slog.Error("failed to group measurements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			slog.Error("failed to scan status count", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		stats.ByStatus[status] = n
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		slog.Error("failed to iterate status counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats.Recent, err = h.queryMeasurements(
		"SELECT "+measurementColumns+" FROM measurement ORDER BY created_at DESC, id LIMIT $1",
		recentLimit,
	)
	if err != nil {
		slog.Error("failed to query recent measurements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

func (h *MeasurementHandler) queryMeasurements(query string, args ...any) ([]models.Measurement, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMeasurement(row rowScanner) (models.Measurement, error) {
	var m models.Measurement
	z := make([]float64, len(anthropometry.Metrics))
	labels := make([]string, len(anthropometry.Metrics))

	dest := []any{&m.ID, &m.BalitaID, &m.WeightKg, &m.HeightCm, &m.HeadCircumferenceCm,
		&m.ArmCircumferenceCm, &m.Position, &m.AgeMonths}
	for i := range z {
		dest = append(dest, &z[i])
	}
	for i := range labels {
		dest = append(dest, &labels[i])
	}
	var sanitation, medical *string
	dest = append(dest, &m.Status, &m.Notes, &sanitation, &medical, &m.MeasuredAt, &m.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		return models.Measurement{}, err
	}

	var err error
	if m.Sanitation, err = decodeQuestionnaire[models.SanitationQuestionnaire](sanitation); err != nil {
		return models.Measurement{}, fmt.Errorf("sanitation questionnaire: %w", err)
	}
	if m.MedicalHistory, err = decodeQuestionnaire[models.MedicalHistoryQuestionnaire](medical); err != nil {
		return models.Measurement{}, fmt.Errorf("medical history questionnaire: %w", err)
	}

	m.ZScores = make(map[string]float64, len(z))
	m.Labels = make(map[string]string, len(labels))
	for i, metric := range anthropometry.Metrics {
		m.ZScores[string(metric)] = z[i]
		m.Labels[string(metric)] = labels[i]
	}
	return m, nil
}
