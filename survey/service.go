// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/danielhkuo/schoolpulse/models"
)

// Store abstracts the persistence operations the survey service needs.
// Single-row lookups report a missing row with ErrNotFound.
type Store interface {
	ListSchools(ctx context.Context) ([]models.School, error)
	SchoolName(ctx context.Context, schoolID int64) (string, error)

	ListQuestionRows(ctx context.Context) ([]models.QuestionRow, error)
	QuestionRowsByTitle(ctx context.Context, title string) ([]models.QuestionRow, error)
	FirstQuestionSurveyID(ctx context.Context, title string) (int64, error)

	ListResponses(ctx context.Context, surveyID, schoolID int64) ([]models.ResponseRecord, error)
	InsertResponse(ctx context.Context, surveyID, schoolID int64, answers string) (int64, error)
}

// Service hosts the survey read and write workflows without HTTP concerns.
type Service struct {
	store Store
}

// NewService constructs a service bound to the provided store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListSchools returns every school ordered by name, then id.
func (s *Service) ListSchools(ctx context.Context) ([]models.School, error) {
	schools, err := s.store.ListSchools(ctx)
	if err != nil {
		return nil, storageErr("list schools", err)
	}

	schools = slices.Clone(schools)
	slices.SortStableFunc(schools, func(a, b models.School) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	if schools == nil {
		schools = []models.School{}
	}
	return schools, nil
}

// ListSurveys returns every survey assembled from its question rows.
func (s *Service) ListSurveys(ctx context.Context) ([]models.Survey, error) {
	rows, err := s.store.ListQuestionRows(ctx)
	if err != nil {
		return nil, storageErr("list question rows", err)
	}
	return AssembleSurveys(rows), nil
}

// Submit stores a submission and returns the new response id. The survey
// is resolved through its question number 1 row; a title without one is
// ErrNotFound. Answers are not checked against the survey's questions.
func (s *Service) Submit(ctx context.Context, sub models.Submission) (int64, error) {
	if ContainsSeparator(sub.Answers...) {
		return 0, fmt.Errorf("answers may not contain %q: %w", Separator, ErrMalformedRecord)
	}

	surveyID, err := s.store.FirstQuestionSurveyID(ctx, sub.SurveyTitle)
	if errors.Is(err, ErrNotFound) {
		return 0, fmt.Errorf("survey %q: %w", sub.SurveyTitle, ErrNotFound)
	}
	if err != nil {
		return 0, storageErr("resolve survey", err)
	}

	id, err := s.store.InsertResponse(ctx, surveyID, sub.SchoolID, EncodeAnswers(sub.Answers))
	if err != nil {
		return 0, storageErr("insert response", err)
	}

	return id, nil
}
