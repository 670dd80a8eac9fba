// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sigana-id/sigana-server/anthropometry"
	"github.com/sigana-id/sigana-server/middleware"
	"github.com/sigana-id/sigana-server/models"
)

type AnthropometryHandler struct {
	ref *anthropometry.Reference
}

func NewAnthropometryHandler(ref *anthropometry.Reference) *AnthropometryHandler {
	return &AnthropometryHandler{ref: ref}
}

// Calculate handles POST /anthropometry/calculate
// Nothing is persisted.
func (h *AnthropometryHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sex, err := anthropometry.ParseSex(req.Sex)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sex must be male or female")
		return
	}

	if msg := validateMeasurements(req.WeightKg, req.HeightCm, req.HeadCircumferenceCm, req.ArmCircumferenceCm); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	var ageMonths float64
	switch {
	case req.AgeMonths != nil:
		ageMonths = *req.AgeMonths
		if ageMonths < 0 || math.IsInf(ageMonths, 0) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "age_months must not be negative")
			return
		}
	case strings.TrimSpace(req.BirthDate) != "":
		birth, err := time.Parse(models.DateLayout, strings.TrimSpace(req.BirthDate))
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
			return
		}
		at := time.Now().UTC()
		if req.MeasuredAt != nil {
			at = req.MeasuredAt.UTC()
		}
		if at.Before(birth) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "birth_date is after the measurement date")
			return
		}
		ageMonths = float64(anthropometry.AgeInMonths(birth, at))
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "age_months or birth_date is required")
		return
	}

	res := assess(h.ref, anthropometry.Measurement{
		AgeMonths:  ageMonths,
		WeightKg:   req.WeightKg,
		HeightCm:   req.HeightCm,
		HeadCircCm: req.HeadCircumferenceCm,
		ArmCircCm:  req.ArmCircumferenceCm,
		Sex:        sex,
	}, "calculate")

	middleware.JSONResponse(w, http.StatusOK, models.CalculateResponse{
		AgeMonths:   ageMonths,
		ZScores:     zScoreMap(res),
		Labels:      labelMap(res),
		Status:      string(res.Severity),
		Unavailable: metricNames(res.Unavailable),
	})
}

// validateMeasurements returns a client-facing message for the first bad
// value, or "" when all four are usable.
func validateMeasurements(weightKg, heightCm, headCm, armCm float64) string {
	checks := []struct {
		name  string
		value float64
	}{
		{"weight_kg", weightKg},
		{"height_cm", heightCm},
		{"head_circumference_cm", headCm},
		{"arm_circumference_cm", armCm},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return c.name + " must be greater than 0"
		}
	}
	return ""
}
