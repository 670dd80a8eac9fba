// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Sigana API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Operational:

	GET /health
	GET /metrics  - Prometheus exposition (when METRICS_ENABLED)

Calculator:

	POST /anthropometry/calculate - Z-scores and status, nothing stored

Regions:

	POST   /villages       - Create village
	GET    /villages       - List villages (?search=&page=&limit=)
	GET    /villages/{id}  - Get village
	PUT    /villages/{id}  - Rename village or change district
	DELETE /villages/{id}  - Delete village with everything in it
	POST   /poskos         - Create posko
	GET    /poskos         - List poskos (?village_id=&search=&page=&limit=)
	GET    /poskos/map     - Geolocated poskos with head counts
	GET    /poskos/{id}    - Get posko
	PUT    /poskos/{id}    - Rename, move or geolocate posko
	DELETE /poskos/{id}    - Delete posko (children stay in the village)

Children:

	POST   /balitas       - Register child
	GET    /balitas       - List (?village_id=&posko_id=&search=&page=&limit=)
	GET    /balitas/{id}  - Get child
	DELETE /balitas/{id}  - Delete child and its measurements

Measurements:

	POST   /measurements            - Record and assess
	GET    /measurements            - List (?balita_id=&status=&page=&limit=)
	GET    /measurements/statistics - Totals and recent activity
	GET    /measurements/{id}       - Get measurement
	DELETE /measurements/{id}       - Delete measurement

# Handler Initialization

All handlers share the database connection and configuration. The
calculator and measurement handlers share the built-in growth reference
from anthropometry.Default.
*/
package router
