// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the SQL-backed
survey store.

# Connecting

Open picks the driver from the database type and pings it:

	conn, err := db.Open(ctx, db.DialectPostgres, cfg.DatabaseURL)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - schools: id, name
  - surveys: one row per question (title, category, question_number, questions)
  - responses: one row per submission (survey_id, school_id, answers)

The questions and answers columns hold "|"-joined lists; see package survey.
responses.survey_id refers to the id of the survey's question number 1 row.

# Store

Store implements survey.Store:

	svc := survey.NewService(db.NewStore(conn))

Missing rows in single-row lookups are reported as survey.ErrNotFound.
*/
package db
