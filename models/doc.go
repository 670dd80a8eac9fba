// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateVillageRequest: name, district
  - UpdateVillageRequest: optional name, district
  - CreatePoskoRequest: name, village_id, latitude, longitude
  - UpdatePoskoRequest: the same fields, each optional
  - CreateBalitaRequest: child_name, parent_name, birth_date, sex, village_id, posko_id
  - CreateMeasurementRequest: balita_id, the four measurements, position, notes, measured_at,
    optional sanitation and medical_history questionnaires
  - CalculateRequest: sex, age_months or birth_date, the four measurements

# Response Types

  - CalculateResponse: age_months, z_scores, labels, status, unavailable
  - VillageListResponse, PoskoListResponse, BalitaListResponse,
    MeasurementListResponse: data plus PageMeta
  - PoskoMapResponse: geolocated poskos as PoskoMapEntry
  - StatisticsResponse: totals, per-status counts, recent measurements
  - DeleteResponse: id, message
  - ErrorResponse: error, message

# Domain Types

  - Village: a desa within a district
  - Posko: a field post inside a village
  - Balita: a registered child under five, with its current age_months
  - Measurement: one visit's raw values with the computed assessment

z_scores and labels are keyed by metric name (weight_for_age,
height_for_age, weight_for_height, head_circumference,
arm_circumference, bmi_for_age). Status is green, yellow or red.

# Constants

Measuring positions:

	PositionLying    = "lying"
	PositionStanding = "standing"

Dates travel as DateLayout ("2006-01-02"). Questionnaires use
QuestionnaireVersion 1; a missing version is read as 1.
*/
package models
