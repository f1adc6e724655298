// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the schoolpulse API server.

schoolpulse serves school surveys to client apps, stores submitted answers
and reports how often each answer was picked, per school and survey.

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run .

Or with flags:

	go run . -p 8000 -t sqlite -d schoolpulse.db

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - CORS_ORIGIN (-origin): allowed origin (default: *)

# Architecture

  - survey: encoding, survey assembly, submission and aggregation
  - db: connection, schema and the SQL-backed survey store
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response and domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
