package models

import (
	"database/sql/driver"
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	uuid "github.com/satori/go.uuid"
)

// AnswerSet holds one answer per question, each answer being the selected
// option indexes. Single-answer questions carry exactly one index. Stored
// as a jsonb column.
type AnswerSet [][]int

// Value implements driver.Valuer for jsonb storage
func (a AnswerSet) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for jsonb storage
func (a *AnswerSet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return apierrors.ErrUnableToParseJSON
}

// AssessmentAttempt represents a user's single attempt at an assessment.
// The deadline is fixed when the attempt starts, so changing an
// assessment's duration never moves a running attempt's deadline.
type AssessmentAttempt struct {
	ID           string     `db:"id"            json:"id"`
	AssessmentID string     `db:"assessment_id" json:"assessment_id"`
	UserID       string     `db:"user_id"       json:"user_id"`
	State        string     `db:"state"         json:"state"`
	StartedAt    time.Time  `db:"started_at"    json:"started_at"`
	DeadlineAt   time.Time  `db:"deadline_at"   json:"deadline_at"`
	FinishedAt   *time.Time `db:"finished_at"   json:"finished_at,omitempty"`
	Answers      AnswerSet  `db:"answers"       json:"answers,omitempty"`
	Score        int        `db:"score"         json:"score"`
	Total        int        `db:"total"         json:"total"`
}

// NewAttempt starts an attempt at the given assessment
func NewAttempt(assessment *Assessment, userID string, now time.Time) *AssessmentAttempt {
	return &AssessmentAttempt{
		ID:           uuid.NewV4().String(),
		AssessmentID: assessment.ID,
		UserID:       userID,
		State:        StartedState,
		StartedAt:    now,
		DeadlineAt:   now.Add(assessment.Duration()),
		Total:        len(assessment.Questions),
	}
}

// IsCompleted reports whether answers have already been submitted
func (a *AssessmentAttempt) IsCompleted() bool {
	return a.State == CompletedState
}

// DeadlinePassed reports whether the attempt can no longer accept answers
func (a *AssessmentAttempt) DeadlinePassed(now time.Time) bool {
	return now.After(a.DeadlineAt)
}

// AttemptSubmission is the payload for submitting answers
type AttemptSubmission struct {
	Answers AnswerSet `json:"answers"`
}

// CreateAttemptSubmission manages the creation of an attempt submission from a reader
func CreateAttemptSubmission(reader io.Reader) (*AttemptSubmission, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var submission AttemptSubmission
	if err := json.Unmarshal(b, &submission); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}
	return &submission, nil
}

// Validate checks that every question has an answer with in-range indexes
func (s *AttemptSubmission) Validate(questions Questions) error {
	if len(s.Answers) != len(questions) {
		return apierrors.ErrIncompleteAnswers
	}
	for i, answer := range s.Answers {
		if len(answer) == 0 {
			return apierrors.ErrIncompleteAnswers
		}
		if !questions[i].Multiple && len(answer) != 1 {
			return apierrors.ErrIncompleteAnswers
		}
		for _, idx := range answer {
			if idx < 0 || idx >= len(questions[i].Options) {
				return apierrors.ErrIncompleteAnswers
			}
		}
	}
	return nil
}

// Score runs the scoring loop over the questions: a single-answer question
// is correct when the chosen index matches; a multiple-answer question is
// correct when the chosen set equals the correct set.
func (s *AttemptSubmission) Score(questions Questions) int {
	score := 0
	for i, question := range questions {
		if i >= len(s.Answers) {
			break
		}
		if answerCorrect(question, s.Answers[i]) {
			score++
		}
	}
	return score
}

func answerCorrect(question Question, answer []int) bool {
	if question.Multiple {
		return sameIndexSet(question.Correct, answer)
	}
	return len(answer) == 1 && len(question.Correct) == 1 && answer[0] == question.Correct[0]
}

// sameIndexSet compares two index slices as sets
func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

// MinimumScore returns the pass mark: the ceiling of total*percent/100
func MinimumScore(total, percent int) int {
	if total <= 0 {
		return 0
	}
	return (total*percent + 99) / 100
}

// AttemptResult summarises a scored attempt for responses and for the
// commission's application view
type AttemptResult struct {
	AttemptID       string     `json:"attempt_id"`
	AssessmentID    string     `json:"assessment_id"`
	AssessmentTitle string     `json:"assessment_title,omitempty"`
	Score           int        `json:"score"`
	Total           int        `json:"total"`
	Percent         int        `json:"percent"`
	MinimumScore    int        `json:"min_score"`
	Passed          bool       `json:"passed"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	TimeSpent       string     `json:"time_spent,omitempty"`
}

// Result builds the attempt summary against the given pass threshold
func (a *AssessmentAttempt) Result(passPercent int) *AttemptResult {
	result := &AttemptResult{
		AttemptID:    a.ID,
		AssessmentID: a.AssessmentID,
		Score:        a.Score,
		Total:        a.Total,
		MinimumScore: MinimumScore(a.Total, passPercent),
		StartedAt:    a.StartedAt,
		FinishedAt:   a.FinishedAt,
	}
	if a.Total > 0 {
		result.Percent = int(math.Round(100 * float64(a.Score) / float64(a.Total)))
	}
	result.Passed = a.IsCompleted() && a.Score >= result.MinimumScore
	if a.FinishedAt != nil {
		result.TimeSpent = a.FinishedAt.Sub(a.StartedAt).Round(time.Second).String()
	}
	return result
}
