// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL DSN or SQLite file (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel / LogFormat: slog level and text|json output
  - CORSOrigin: Allowed origin for browser clients (default: echo request origin)
  - MetricsEnabled: Serve Prometheus metrics on /metrics (default: true)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-env-file    .env file to load
	-log-level   debug, info, warn, error
	-log-format  text, json
	-cors-origin Allowed origin
	-metrics     true, false

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	LOG_LEVEL       → -log-level
	LOG_FORMAT      → -log-format
	CORS_ORIGIN     → -cors-origin
	METRICS_ENABLED → -metrics

CLI flags take precedence over environment variables. A .env file in the
working directory (or the one named by -env-file) is loaded first; it never
overrides variables that are already set.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(cfg.NewLogger())

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
