// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/schoolpulse/models"
	"github.com/danielhkuo/schoolpulse/survey"
)

var _ survey.Store = (*Store)(nil)

// Store implements survey.Store over the schools, surveys and responses tables.
// Queries use $n placeholders, understood by both lib/pq and modernc sqlite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSchools(ctx context.Context) ([]models.School, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM schools ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query schools: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.ID, &school.Name); err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schools: %w", err)
	}

	return schools, nil
}

func (s *Store) SchoolName(ctx context.Context, schoolID int64) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT name FROM schools WHERE id = $1
	`, schoolID).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return "", survey.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query school: %w", err)
	}

	return name, nil
}

func (s *Store) ListQuestionRows(ctx context.Context) ([]models.QuestionRow, error) {
	return s.queryQuestionRows(ctx, `
		SELECT id, title, category, question_number, questions
		FROM surveys
		ORDER BY title, question_number, id
	`)
}

func (s *Store) QuestionRowsByTitle(ctx context.Context, title string) ([]models.QuestionRow, error) {
	return s.queryQuestionRows(ctx, `
		SELECT id, title, category, question_number, questions
		FROM surveys
		WHERE title = $1
		ORDER BY question_number, id
	`, title)
}

// FirstQuestionSurveyID returns the id of the title's question number 1 row
func (s *Store) FirstQuestionSurveyID(ctx context.Context, title string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM surveys
		WHERE title = $1 AND question_number = 1
		ORDER BY id
		LIMIT 1
	`, title).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, survey.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query survey id: %w", err)
	}

	return id, nil
}

func (s *Store) ListResponses(ctx context.Context, surveyID, schoolID int64) ([]models.ResponseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, survey_id, school_id, answers
		FROM responses
		WHERE survey_id = $1 AND school_id = $2
		ORDER BY id
	`, surveyID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.ResponseRecord{}
	for rows.Next() {
		var resp models.ResponseRecord
		if err := rows.Scan(&resp.ID, &resp.SurveyID, &resp.SchoolID, &resp.Answers); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}

	return responses, nil
}

func (s *Store) InsertResponse(ctx context.Context, surveyID, schoolID int64, answers string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO responses (survey_id, school_id, answers)
		VALUES ($1, $2, $3)
		RETURNING id
	`, surveyID, schoolID, answers).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert response: %w", err)
	}

	return id, nil
}

func (s *Store) queryQuestionRows(ctx context.Context, query string, args ...any) ([]models.QuestionRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query surveys: %w", err)
	}
	defer rows.Close()

	out := []models.QuestionRow{}
	for rows.Next() {
		var row models.QuestionRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Category, &row.QuestionNumber, &row.Questions); err != nil {
			return nil, fmt.Errorf("scan survey row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate surveys: %w", err)
	}

	return out, nil
}
