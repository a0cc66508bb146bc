package postgres

import (
	"context"
	"database/sql"
	"errors"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

const applicationColumns = `id, public_no, user_id, form_data, status, status_comment,
	decided_by, decided_at, assessment_link, created_at, updated_at`

// applicationRow carries a listed application together with the applicant
// identity joined from the users table
type applicationRow struct {
	models.Application
	ApplicantEmail string `db:"applicant_email"`
	ApplicantName  string `db:"applicant_name"`
}

func (r *applicationRow) application() models.Application {
	application := r.Application
	if r.ApplicantEmail != "" || r.ApplicantName != "" {
		application.Applicant = &models.Identity{
			ID:       application.UserID,
			Email:    r.ApplicantEmail,
			FullName: r.ApplicantName,
		}
	}
	return application
}

// CreateApplication inserts a submitted form. Each account can hold one
// application, enforced by the unique constraint on user_id. The assigned
// public number and timestamps are read back onto the model.
func (p *Postgres) CreateApplication(ctx context.Context, application *models.Application) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO applications (id, user_id, form_data, status)
		VALUES ($1, $2, $3, $4)
		RETURNING public_no, status, created_at, updated_at`,
		application.ID, application.UserID, application.FormData, application.Status).
		Scan(&application.PublicNo, &application.Status, &application.CreatedAt, &application.UpdatedAt)
	if isUniqueViolation(err, "applications_user_id_key", "uq_app_user") {
		return errs.ErrApplicationAlreadyExists
	}
	return err
}

// GetApplication retrieves an application by its id
func (p *Postgres) GetApplication(ctx context.Context, ID string) (*models.Application, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var application models.Application
	err := p.db.GetContext(ctx, &application, `
		SELECT `+applicationColumns+` FROM applications WHERE id = $1`, ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetApplicationByUser retrieves the application submitted by the given account
func (p *Postgres) GetApplicationByUser(ctx context.Context, userID string) (*models.Application, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var application models.Application
	err := p.db.GetContext(ctx, &application, `
		SELECT `+applicationColumns+` FROM applications WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetApplications lists applications for the commission, newest first, with
// the applicant identity joined on. It returns the page and the total count.
func (p *Postgres) GetApplications(ctx context.Context, offset, limit int) ([]models.Application, int, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var totalCount int
	if err := p.db.GetContext(ctx, &totalCount, `SELECT count(*) FROM applications`); err != nil {
		return nil, 0, err
	}

	applications := []models.Application{}
	if totalCount < 1 || limit == 0 {
		return applications, totalCount, nil
	}

	rows := []applicationRow{}
	err := p.db.SelectContext(ctx, &rows, `
		SELECT a.id, a.public_no, a.user_id, a.form_data, a.status, a.status_comment,
		       a.decided_by, a.decided_at, a.assessment_link, a.created_at, a.updated_at,
		       COALESCE(u.email, '') AS applicant_email,
		       COALESCE(u.full_name, '') AS applicant_name
		  FROM applications a
		  LEFT JOIN users u ON u.id = a.user_id
		 ORDER BY a.created_at DESC, a.id
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for i := range rows {
		applications = append(applications, rows[i].application())
	}
	return applications, totalCount, nil
}

// UpdateApplicationDecision records a commission decision. The status
// normalisation trigger sees the write, so even a caller bypassing
// models.NormaliseStatus cannot store a non-canonical label.
func (p *Postgres) UpdateApplicationDecision(ctx context.Context, applicationID string, decision *models.Decision, decidedBy string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE applications
		   SET status = $1, status_comment = $2, decided_by = $3, decided_at = now(), updated_at = now()
		 WHERE id = $4`,
		decision.Status, decision.Comment, decidedBy, applicationID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrApplicationNotFound)
}

// UpdateAssessmentLink stores the link an applicant attached to their
// approved application
func (p *Postgres) UpdateAssessmentLink(ctx context.Context, applicationID, link string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE applications SET assessment_link = $1, updated_at = now() WHERE id = $2`,
		link, applicationID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrApplicationNotFound)
}
