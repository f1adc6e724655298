// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/danielhkuo/schoolpulse/models"
)

// AssembleSurveys groups flat question rows into surveys. Rows are sorted
// here by (title, question_number) regardless of how storage returned them,
// so each survey's id and category come from its lowest-numbered row.
// Duplicate question numbers are kept.
func AssembleSurveys(rows []models.QuestionRow) []models.Survey {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.QuestionRow) int {
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.QuestionNumber, b.QuestionNumber)
	})

	surveys := []models.Survey{}
	for i, row := range sorted {
		if i == 0 || row.Title != sorted[i-1].Title {
			surveys = append(surveys, models.Survey{
				ID:        row.ID,
				Title:     row.Title,
				Category:  row.Category,
				Questions: []models.Question{},
			})
		} else if row.QuestionNumber == sorted[i-1].QuestionNumber {
			slog.Warn("duplicate question number in survey",
				"title", row.Title,
				"question_number", row.QuestionNumber,
			)
		}

		text, options := DecodeQuestion(row.Questions)
		current := &surveys[len(surveys)-1]
		current.Questions = append(current.Questions, models.Question{
			QuestionNumber: row.QuestionNumber,
			QuestionText:   text,
			Options:        options,
		})
	}

	return surveys
}

// sortByQuestionNumber returns a copy of rows in ascending question order
func sortByQuestionNumber(rows []models.QuestionRow) []models.QuestionRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.QuestionRow) int {
		return cmp.Compare(a.QuestionNumber, b.QuestionNumber)
	})
	return sorted
}
