package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	uuid "github.com/satori/go.uuid"
)

const defaultDurationMinutes = 60

var optionSplitRE = regexp.MustCompile(`[;\n]`)

// Question is a single stored assessment question. Correct holds option
// indexes; a single-answer question holds exactly one.
type Question struct {
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Multiple bool     `json:"multiple"`
	Correct  []int    `json:"correct"`
}

// QuestionView is the applicant-facing copy of a question, without the
// correct answers
type QuestionView struct {
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Multiple bool     `json:"multiple"`
}

// Questions is stored as a jsonb column
type Questions []Question

// Value implements driver.Valuer for jsonb storage
func (q Questions) Value() (driver.Value, error) {
	if q == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner for jsonb storage
func (q *Questions) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*q = nil
		return nil
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	}
	return apierrors.ErrUnableToParseJSON
}

// Assessment represents a qualifying assessment authored by the commission
type Assessment struct {
	ID              string    `db:"id"               json:"id"`
	Title           string    `db:"title"            json:"title"`
	Description     string    `db:"description"      json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	State           string    `db:"state"            json:"state"`
	Questions       Questions `db:"questions"        json:"questions,omitempty"`
	CreatedBy       string    `db:"created_by"       json:"created_by,omitempty"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// IsPublished reports whether applicants can see and attempt the assessment
func (a *Assessment) IsPublished() bool {
	return a.State == PublishedState
}

// Duration returns the attempt time limit
func (a *Assessment) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}

// QuestionViews returns the applicant-facing questions with the correct
// answers withheld
func (a *Assessment) QuestionViews() []QuestionView {
	views := make([]QuestionView, 0, len(a.Questions))
	for i := range a.Questions {
		views = append(views, a.Questions[i].View())
	}
	return views
}

// View returns the question without its correct answers
func (q Question) View() QuestionView {
	return QuestionView{
		Text:     q.Text,
		Options:  q.Options,
		Multiple: q.Multiple,
	}
}

// rawQuestion accepts the field aliases authors have historically used
type rawQuestion struct {
	Text           string          `json:"text"`
	Question       string          `json:"question"`
	Q              string          `json:"q"`
	Options        json.RawMessage `json:"options"`
	Answers        json.RawMessage `json:"answers"`
	Type           string          `json:"type"`
	Multiple       bool            `json:"multiple"`
	Correct        json.RawMessage `json:"correct"`
	CorrectIndex   json.RawMessage `json:"correct_index"`
	CorrectIndexes json.RawMessage `json:"correct_indexes"`
}

// NormaliseQuestions canonicalises author question input. Authors have
// supplied several shapes over the portal's life: text under text/question/q,
// options as a list or a delimited string, correct answers as a single index
// or a list under three different keys. Questions without a text, fewer than
// two options or no in-range correct answer are dropped; at least one
// question must survive.
func NormaliseQuestions(raw json.RawMessage) (Questions, error) {
	if len(raw) == 0 {
		return nil, apierrors.ErrInvalidQuestions
	}

	var rawList []rawQuestion
	if err := json.Unmarshal(raw, &rawList); err != nil {
		// accept a wrapper object with a questions key
		var wrapper struct {
			Questions []rawQuestion `json:"questions"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, apierrors.ErrUnableToParseJSON
		}
		rawList = wrapper.Questions
	}

	questions := make(Questions, 0, len(rawList))
	for _, rq := range rawList {
		text := firstNonEmpty(rq.Text, rq.Question, rq.Q)
		options := parseOptions(firstRaw(rq.Options, rq.Answers))
		correct := parseIndexes(firstRaw(rq.Correct, rq.CorrectIndex, rq.CorrectIndexes), len(options))

		if text == "" || len(options) < 2 || len(correct) == 0 {
			continue
		}

		multiple := rq.Multiple || rq.Type == "multi" || rq.Type == "multiple" || len(correct) > 1
		if !multiple {
			correct = correct[:1]
		}

		questions = append(questions, Question{
			Text:     text,
			Options:  options,
			Multiple: multiple,
			Correct:  correct,
		})
	}

	if len(questions) == 0 {
		return nil, apierrors.ErrInvalidQuestions
	}
	return questions, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstRaw(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		if len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return nil
}

// parseOptions accepts a JSON array of scalars or a single delimited string
func parseOptions(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return splitOptions(single)
	}

	var list []interface{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	options := make([]string, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
			options = append(options, s)
		}
	}
	return options
}

func splitOptions(s string) []string {
	parts := optionSplitRE.Split(s, -1)
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			options = append(options, t)
		}
	}
	return options
}

// parseIndexes accepts a single index or a list, as numbers or numeric
// strings, deduplicates, sorts and drops anything out of range
func parseIndexes(raw json.RawMessage, optionCount int) []int {
	if raw == nil {
		return nil
	}

	var values []interface{}
	var single interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		values = []interface{}{single}
	}

	seen := map[int]bool{}
	indexes := make([]int, 0, len(values))
	for _, v := range values {
		idx, ok := toIndex(v)
		if !ok || idx < 0 || idx >= optionCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	return indexes
}

func toIndex(v interface{}) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case string:
		idx, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return idx, true
	}
	return 0, false
}

// AssessmentRequest is the author payload for creating or updating an assessment
type AssessmentRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	State           string          `json:"state"`
	Questions       json.RawMessage `json:"questions"`
}

// CreateAssessmentRequest manages the creation of an assessment request from a reader
func CreateAssessmentRequest(reader io.Reader) (*AssessmentRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var req AssessmentRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	req.Title = strings.TrimSpace(req.Title)
	return &req, nil
}

// NewAssessment builds an unpublished assessment from an author request
func (r *AssessmentRequest) NewAssessment(createdBy string) (*Assessment, error) {
	if r.Title == "" || r.DurationMinutes < 0 {
		return nil, apierrors.ErrInvalidAssessment
	}

	questions, err := NormaliseQuestions(r.Questions)
	if err != nil {
		return nil, err
	}

	duration := r.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	return &Assessment{
		ID:              uuid.NewV4().String(),
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: duration,
		State:           CreatedState,
		Questions:       questions,
		CreatedBy:       createdBy,
	}, nil
}
