// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/schoolpulse/models"
)

// Results tallies a school's responses to the survey with the given title.
// Unknown schools and titles are ErrNotFound, never an empty result.
func (s *Service) Results(ctx context.Context, surveyTitle string, schoolID int64) (models.AggregatedResult, error) {
	schoolName, err := s.store.SchoolName(ctx, schoolID)
	if errors.Is(err, ErrNotFound) {
		return models.AggregatedResult{}, fmt.Errorf("school %d: %w", schoolID, ErrNotFound)
	}
	if err != nil {
		return models.AggregatedResult{}, storageErr("resolve school", err)
	}

	rows, err := s.store.QuestionRowsByTitle(ctx, surveyTitle)
	if err != nil {
		return models.AggregatedResult{}, storageErr("list survey questions", err)
	}
	if len(rows) == 0 {
		return models.AggregatedResult{}, fmt.Errorf("survey %q: %w", surveyTitle, ErrNotFound)
	}
	rows = sortByQuestionNumber(rows)

	responses, err := s.store.ListResponses(ctx, rows[0].ID, schoolID)
	if err != nil {
		return models.AggregatedResult{}, storageErr("list responses", err)
	}

	result := Aggregate(rows, responses)
	result.SchoolName = schoolName
	return result, nil
}

// Aggregate counts answers positionally: the i-th decoded answer of each
// response counts toward the i-th question of rows, which must already be
// in question order. Responses too short for a question are skipped for
// that question but still count toward TotalResponses.
func Aggregate(rows []models.QuestionRow, responses []models.ResponseRecord) models.AggregatedResult {
	decoded := make([][]string, len(responses))
	for i, resp := range responses {
		decoded[i] = DecodeAnswers(resp.Answers)
		if len(decoded[i]) > len(rows) {
			slog.Debug("response has more answers than questions",
				"response_id", resp.ID,
				"answers", len(decoded[i]),
				"questions", len(rows),
			)
		}
	}

	results := make([]models.QuestionResult, 0, len(rows))
	for i, row := range rows {
		text, _ := DecodeQuestion(row.Questions)
		counts := make(map[string]int)
		for _, answers := range decoded {
			if i < len(answers) {
				counts[answers[i]]++
			}
		}
		results = append(results, models.QuestionResult{
			QuestionNumber: row.QuestionNumber,
			QuestionText:   text,
			AnswerCounts:   counts,
		})
	}

	return models.AggregatedResult{
		TotalResponses:  len(responses),
		QuestionResults: results,
	}
}
