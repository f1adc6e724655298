package models

// Request types

// SubmitResponseRequest is refused only when the title or the answers list
// is missing. school_id and the answer count are stored as given.
type SubmitResponseRequest struct {
	SurveyTitle string   `json:"survey_title" validate:"required"`
	SchoolID    int64    `json:"school_id"`
	Answers     []string `json:"answers" validate:"required"`
}

// Response types

type SubmitResponseResponse struct {
	Success    bool  `json:"success"`
	ResponseID int64 `json:"response_id"`
}

// Domain types

type School struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// QuestionRow is one row of the surveys table. Questions holds the question
// text followed by its options, joined by the survey separator.
type QuestionRow struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	QuestionNumber int    `json:"question_number"`
	Questions      string `json:"questions"`
}

type Question struct {
	QuestionNumber int      `json:"question_number"`
	QuestionText   string   `json:"question_text"`
	Options        []string `json:"options"`
}

type Survey struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
}

// Submission is a respondent's answers, positionally aligned to the
// survey's question order.
type Submission struct {
	SurveyTitle string
	SchoolID    int64
	Answers     []string
}

type ResponseRecord struct {
	ID       int64  `json:"id"`
	SurveyID int64  `json:"survey_id"`
	SchoolID int64  `json:"school_id"`
	Answers  string `json:"answers"`
}

// Aggregation result types

type QuestionResult struct {
	QuestionNumber int            `json:"question_number"`
	QuestionText   string         `json:"question_text"`
	AnswerCounts   map[string]int `json:"answer_counts"`
}

type AggregatedResult struct {
	SchoolName      string           `json:"school_name"`
	TotalResponses  int              `json:"total_responses"`
	QuestionResults []QuestionResult `json:"question_results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
