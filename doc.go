// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sigana API server.

Sigana records anthropometric measurements of children under five
(balita) at village field posts and classifies their nutritional status
against WHO growth references using the LMS method.

# Starting the Server

Configuration comes from CLI flags, environment variables or a .env file:

	DATABASE_URL=sigana.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output
  - CORS_ORIGIN: allowed origin (default: *, without credentials)
  - METRICS_ENABLED: serve GET /metrics (default: true)

# Architecture

  - anthropometry: growth references, LMS interpolation, Z-scores, classification
  - handlers: HTTP request handlers (calculator, villages, poskos, balitas, measurements)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and pagination helpers
  - models: Request/response types
  - metrics: Prometheus instrumentation
  - db: Connection, placeholder rebinding and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
