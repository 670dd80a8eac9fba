// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Sigana API.

# Handler Types

Each handler is a struct with its dependencies:

  - AnthropometryHandler: stateless Z-score calculator
  - VillageHandler: villages (desa)
  - PoskoHandler: field posts within a village
  - BalitaHandler: child registration, lookup and removal
  - MeasurementHandler: recording, history and statistics

Handlers are created via constructor functions:

	villageHandler := handlers.NewVillageHandler(conn)
	measurementHandler := handlers.NewMeasurementHandler(conn, anthropometry.Default())

# Assessment

Both the calculator and measurement recording run the growth reference
through the same path: the result is computed, every metric without a
reference table is logged at Warn level, and the outcome is counted in
the metrics package. The calculator never fails; a missing table scores
Z=0 and is listed under "unavailable" in the calculator response.

	POST /anthropometry/calculate → Calculate (age_months or birth_date)
	POST /measurements            → CreateMeasurement (age from birth_date)

Measurements store the raw values, age in whole months, six Z-scores,
six labels and the overall status exactly as computed.

# Regions

Deleting a village removes its poskos, children and measurements.
Deleting a posko keeps its children in the village with no posko. A
posko with children cannot move to another village.
GET /poskos/map lists only poskos that have both coordinates.

# Listing

List endpoints accept filters plus page and limit, and respond with
{"data": [...], "meta": {page, limit, total, total_pages}}.

	GET /villages?search=
	GET /poskos?village_id=&search=
	GET /balitas?village_id=&posko_id=&search=
	GET /measurements?balita_id=&status=

search is a case-insensitive substring of the village name or district,
the posko name, or the child's or parent's name. status accepts green,
yellow, red or HIJAU, KUNING, MERAH.

# Questionnaires

A measurement may carry sanitation and medical_history questionnaires,
each {"version": 1, "answers": {...}}. They are stored as JSON next to
the measurement and returned unchanged.
*/
package handlers
