// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file, then ParseFlags returns a Config:

	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AllowedOrigin: CORS allowed origin (default: *)

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-origin  CORS allowed origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → -origin

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, PORT is not a
number, or the database type is not supported.
*/
package cliparse
