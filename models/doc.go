// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitResponseRequest: survey_title, school_id, answers

Validation rules are declared with `validate` struct tags and checked by the
handlers before the request reaches the survey service.

# Response Types

Types for JSON responses:

  - SubmitResponseResponse: success, response_id
  - AggregatedResult: school_name, total_responses, question_results
  - ErrorResponse: error, message

# Domain Types

Storage rows:

  - School: id and display name
  - QuestionRow: one question of a survey, with its text and options packed
    into a single delimited field
  - ResponseRecord: one submission, answers packed into a single delimited field

Assembled values:

  - Survey: title, category and questions ordered by question_number
  - Question: question_number, question_text, options
  - Submission: survey title, school and positional answers
  - QuestionResult: answer frequency counts for one question
*/
package models
