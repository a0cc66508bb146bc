package postgres

import (
	"context"
	"database/sql"
	"errors"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

const sessionColumns = `id, user_id, token_hash, created_at, expires_at, last_seen_at`

const passwordResetColumns = `id, user_id, token_hash, created_at, expires_at, used_at`

// CreateSession stores an issued session
func (p *Postgres) CreateSession(ctx context.Context, session *models.Session) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token_hash, created_at, expires_at, last_seen_at)
		VALUES (:id, :user_id, :token_hash, :created_at, :expires_at, :last_seen_at)`, session)
	return err
}

// GetSessionByTokenHash retrieves a session by the hash of its bearer token
func (p *Postgres) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var session models.Session
	err := p.db.GetContext(ctx, &session, `
		SELECT `+sessionColumns+` FROM sessions WHERE token_hash = $1`, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// TouchSession records session activity
func (p *Postgres) TouchSession(ctx context.Context, sessionID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.ExecContext(ctx, `UPDATE sessions SET last_seen_at = now() WHERE id = $1`, sessionID)
	return err
}

// DeleteSession removes a session, logging the caller out
func (p *Postgres) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrSessionNotFound)
}

// DeleteUserSessions removes all of a user's sessions except the given one.
// A password change passes the caller's session so it survives; exceptID can
// be empty to clear everything.
func (p *Postgres) DeleteUserSessions(ctx context.Context, userID, exceptID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.ExecContext(ctx, `
		DELETE FROM sessions WHERE user_id = $1 AND id <> $2`, userID, exceptID)
	return err
}

// DeleteExpiredSessions removes sessions past their expiry and returns how
// many were removed
func (p *Postgres) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreatePasswordReset stores an issued reset token record
func (p *Postgres) CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO password_resets (id, user_id, token_hash, created_at, expires_at)
		VALUES (:id, :user_id, :token_hash, :created_at, :expires_at)`, reset)
	return err
}

// GetPasswordResetByTokenHash retrieves a reset record by the hash of its token
func (p *Postgres) GetPasswordResetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var reset models.PasswordReset
	err := p.db.GetContext(ctx, &reset, `
		SELECT `+passwordResetColumns+` FROM password_resets WHERE token_hash = $1`, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrResetTokenInvalid
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkPasswordResetUsed burns a reset token. The used_at guard makes
// redemption single-use even under concurrent requests.
func (p *Postgres) MarkPasswordResetUsed(ctx context.Context, resetID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE password_resets SET used_at = now() WHERE id = $1 AND used_at IS NULL`, resetID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrResetTokenInvalid)
}

// DeleteExpiredPasswordResets removes used and expired reset records and
// returns how many were removed
func (p *Postgres) DeleteExpiredPasswordResets(ctx context.Context) (int64, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		DELETE FROM password_resets WHERE used_at IS NOT NULL OR expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
