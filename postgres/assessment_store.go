package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

const assessmentColumns = `id, title, description, duration_minutes, state, questions,
	created_by, created_at, updated_at`

// CreateAssessment inserts an authored assessment
func (p *Postgres) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	return p.db.QueryRowxContext(ctx, `
		INSERT INTO assessments (id, title, description, duration_minutes, state, questions, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		assessment.ID, assessment.Title, assessment.Description, assessment.DurationMinutes,
		assessment.State, assessment.Questions, assessment.CreatedBy).
		Scan(&assessment.CreatedAt, &assessment.UpdatedAt)
}

// GetAssessment retrieves an assessment by its id
func (p *Postgres) GetAssessment(ctx context.Context, ID string) (*models.Assessment, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var assessment models.Assessment
	err := p.db.GetContext(ctx, &assessment, `
		SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// GetAssessments lists assessments, newest first. Applicants only see
// published ones; the commission passes includeUnpublished to see drafts.
func (p *Postgres) GetAssessments(ctx context.Context, includeUnpublished bool, offset, limit int) ([]models.Assessment, int, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	where, args := ``, []interface{}{}
	if !includeUnpublished {
		where = ` WHERE state = $1`
		args = append(args, models.PublishedState)
	}

	var totalCount int
	if err := p.db.GetContext(ctx, &totalCount, `SELECT count(*) FROM assessments`+where, args...); err != nil {
		return nil, 0, err
	}

	assessments := []models.Assessment{}
	if totalCount < 1 || limit == 0 {
		return assessments, totalCount, nil
	}

	query := fmt.Sprintf(`
		SELECT `+assessmentColumns+` FROM assessments`+where+`
		 ORDER BY created_at DESC, id
		 LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	if err := p.db.SelectContext(ctx, &assessments, query, args...); err != nil {
		return nil, 0, err
	}
	return assessments, totalCount, nil
}

// GetLatestPublishedAssessment retrieves the assessment applicants are
// currently invited to take
func (p *Postgres) GetLatestPublishedAssessment(ctx context.Context) (*models.Assessment, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var assessment models.Assessment
	err := p.db.GetContext(ctx, &assessment, `
		SELECT `+assessmentColumns+` FROM assessments
		 WHERE state = $1
		 ORDER BY created_at DESC, id
		 LIMIT 1`, models.PublishedState)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// UpdateAssessment stores an edited assessment
func (p *Postgres) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE assessments
		   SET title = $1, description = $2, duration_minutes = $3, state = $4, questions = $5, updated_at = now()
		 WHERE id = $6`,
		assessment.Title, assessment.Description, assessment.DurationMinutes,
		assessment.State, assessment.Questions, assessment.ID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrAssessmentNotFound)
}

// DeleteAssessment removes an assessment. Attempts are removed with it
// through the foreign key cascade.
func (p *Postgres) DeleteAssessment(ctx context.Context, ID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = $1`, ID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrAssessmentNotFound)
}
