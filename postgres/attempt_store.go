package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

const attemptColumns = `id, assessment_id, user_id, state, started_at, deadline_at,
	finished_at, answers, score, total`

// CreateAttempt starts an attempt. Each user gets one attempt per
// assessment, enforced by the unique constraint.
func (p *Postgres) CreateAttempt(ctx context.Context, attempt *models.AssessmentAttempt) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO assessment_attempts (id, assessment_id, user_id, state, started_at, deadline_at, answers, score, total)
		VALUES (:id, :assessment_id, :user_id, :state, :started_at, :deadline_at, :answers, :score, :total)`, attempt)
	if isUniqueViolation(err, "assessment_attempts_user_assessment_key", "uq_attempt_user_test") {
		return errs.ErrAttemptAlreadyExists
	}
	return err
}

// GetAttempt retrieves an attempt by its id
func (p *Postgres) GetAttempt(ctx context.Context, ID string) (*models.AssessmentAttempt, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var attempt models.AssessmentAttempt
	err := p.db.GetContext(ctx, &attempt, `
		SELECT `+attemptColumns+` FROM assessment_attempts WHERE id = $1`, ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// GetUserAttempt retrieves the user's attempt at the given assessment
func (p *Postgres) GetUserAttempt(ctx context.Context, assessmentID, userID string) (*models.AssessmentAttempt, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var attempt models.AssessmentAttempt
	err := p.db.GetContext(ctx, &attempt, `
		SELECT `+attemptColumns+` FROM assessment_attempts
		 WHERE assessment_id = $1 AND user_id = $2`, assessmentID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// GetAttempts lists the attempts at an assessment for the commission, most
// recently started first. It returns the page and the total count.
func (p *Postgres) GetAttempts(ctx context.Context, assessmentID string, offset, limit int) ([]models.AssessmentAttempt, int, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var totalCount int
	if err := p.db.GetContext(ctx, &totalCount, `
		SELECT count(*) FROM assessment_attempts WHERE assessment_id = $1`, assessmentID); err != nil {
		return nil, 0, err
	}

	attempts := []models.AssessmentAttempt{}
	if totalCount < 1 || limit == 0 {
		return attempts, totalCount, nil
	}

	err := p.db.SelectContext(ctx, &attempts, `
		SELECT `+attemptColumns+` FROM assessment_attempts
		 WHERE assessment_id = $1
		 ORDER BY started_at DESC, id
		 LIMIT $2 OFFSET $3`, assessmentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return attempts, totalCount, nil
}

// GetLatestUserAttempt retrieves the user's most recently started attempt
// across all assessments
func (p *Postgres) GetLatestUserAttempt(ctx context.Context, userID string) (*models.AssessmentAttempt, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var attempt models.AssessmentAttempt
	err := p.db.GetContext(ctx, &attempt, `
		SELECT `+attemptColumns+` FROM assessment_attempts
		 WHERE user_id = $1
		 ORDER BY started_at DESC, id
		 LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// CompleteAttempt stores the submitted answers and score. Total is written
// with the score so the pair stays coherent when the questions changed after
// the attempt started. The state guard makes submission first-wins: once an
// attempt is completed, a second submission changes nothing.
func (p *Postgres) CompleteAttempt(ctx context.Context, attemptID string, answers models.AnswerSet, score, total int, finishedAt time.Time) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE assessment_attempts
		   SET state = $1, answers = $2, score = $3, total = $4, finished_at = $5
		 WHERE id = $6 AND state = $7`,
		models.CompletedState, answers, score, total, finishedAt, attemptID, models.StartedState)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// nothing matched: either the attempt is gone or it was already completed
	var state string
	err = p.db.GetContext(ctx, &state, `SELECT state FROM assessment_attempts WHERE id = $1`, attemptID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrAttemptNotFound
	}
	if err != nil {
		return err
	}
	return errs.ErrAttemptAlreadyCompleted
}
