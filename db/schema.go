// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database types
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var idColumn string
	switch dialect {
	case DialectPostgres:
		idColumn = "id SERIAL PRIMARY KEY"
	case DialectSQLite:
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return fmt.Errorf("unsupported database type %q", dialect)
	}

	_, err := db.Exec(fmt.Sprintf(schema, idColumn, idColumn, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Schools
CREATE TABLE IF NOT EXISTS schools (
    %s,
    name TEXT NOT NULL
);

-- Surveys: one row per question
CREATE TABLE IF NOT EXISTS surveys (
    %s,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    question_number INTEGER NOT NULL,
    questions TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_surveys_title ON surveys(title, question_number);

-- Responses: one row per submission
CREATE TABLE IF NOT EXISTS responses (
    %s,
    survey_id INTEGER NOT NULL,
    school_id INTEGER NOT NULL,
    answers TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_survey_school ON responses(survey_id, school_id);
`
