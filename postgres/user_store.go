package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

const userColumns = `id, email, full_name, password_hash, role, is_active, must_change_password,
	access_expires_at, inn, phone, position, priority, created_at, last_login_at`

// CreateUser inserts a new account. The email must not already be registered.
func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role, is_active, must_change_password,
			access_expires_at, inn, phone, position, priority, created_at)
		VALUES (:id, :email, :full_name, :password_hash, :role, :is_active, :must_change_password,
			:access_expires_at, :inn, :phone, :position, :priority, :created_at)`, user)
	if isUniqueViolation(err, "users_email_key") {
		return errs.ErrEmailAlreadyRegistered
	}
	return err
}

// GetUser retrieves an account by its id
func (p *Postgres) GetUser(ctx context.Context, ID string) (*models.User, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves an account by its normalised email address
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserPassword stores a new password hash. A successful change always
// clears the forced-change flag.
func (p *Postgres) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE users SET password_hash = $1, must_change_password = false WHERE id = $2`,
		passwordHash, userID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrUserNotFound)
}

// UpdateLastLogin records a successful login
func (p *Postgres) UpdateLastLogin(ctx context.Context, userID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.ExecContext(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	return err
}

// HasAdminUser reports whether any commission account has ever been
// registered. Deactivated accounts still count, so closing the last admin
// account does not reopen unrestricted staff registration.
func (p *Postgres) HasAdminUser(ctx context.Context) (bool, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var exists bool
	err := p.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin)
	return exists, err
}

// GetStaffUsers lists commission accounts, newest first
func (p *Postgres) GetStaffUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	users := []models.User{}
	err := p.db.SelectContext(ctx, &users, `
		SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC`, models.RoleAdmin)
	return users, err
}

// UpdateStaffUser applies a partial update to a commission account. Empty
// fields keep the stored values. A new password forces a change on next
// login, the same as a freshly provisioned account.
func (p *Postgres) UpdateStaffUser(ctx context.Context, userID string, update *models.StaffUpdate, passwordHash string) error {
	expiry, err := update.AccessExpiry()
	if err != nil {
		return err
	}

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE users
		   SET full_name = COALESCE(NULLIF($1, ''), full_name),
		       inn = COALESCE(NULLIF($2, ''), inn),
		       phone = COALESCE(NULLIF($3, ''), phone),
		       position = COALESCE(NULLIF($4, ''), position),
		       priority = COALESCE($5, priority),
		       access_expires_at = COALESCE($6, access_expires_at),
		       password_hash = COALESCE(NULLIF($7, ''), password_hash),
		       must_change_password = CASE WHEN NULLIF($7, '') IS NULL THEN must_change_password ELSE true END
		 WHERE id = $8 AND role = $9`,
		update.FullName, update.INN, update.Phone, update.Position, update.Priority,
		expiry, passwordHash, userID, models.RoleAdmin)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrUserNotFound)
}

// ExtendStaffAccess moves a commission account's expiry. Deactivated
// accounts cannot be extended.
func (p *Postgres) ExtendStaffAccess(ctx context.Context, userID string, until time.Time) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE users SET access_expires_at = $1 WHERE id = $2 AND is_active`, until, userID)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrUserNotFound)
}

// DeactivateStaffUser soft deletes a commission account. The row is kept
// for the audit trail.
func (p *Postgres) DeactivateStaffUser(ctx context.Context, userID string) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.db.ExecContext(ctx, `
		UPDATE users SET is_active = false WHERE id = $1 AND role = $2`, userID, models.RoleAdmin)
	if err != nil {
		return err
	}
	return errIfNoRows(result, errs.ErrUserNotFound)
}

// UpsertProvisioner creates or refreshes the provisioning account keyed by
// email. The account always comes back active, as a provisioner, with a
// forced password change.
func (p *Postgres) UpsertProvisioner(ctx context.Context, user *models.User) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role, is_active, must_change_password,
			access_expires_at, created_at)
		VALUES (:id, :email, :full_name, :password_hash, :role, true, true, :access_expires_at, :created_at)
		ON CONFLICT (email) DO UPDATE
		   SET password_hash = EXCLUDED.password_hash,
		       role = EXCLUDED.role,
		       is_active = true,
		       must_change_password = true,
		       full_name = COALESCE(NULLIF(EXCLUDED.full_name, ''), users.full_name),
		       access_expires_at = COALESCE(EXCLUDED.access_expires_at, users.access_expires_at)`, user)
	return err
}

// errIfNoRows translates an update that matched nothing into the given error
func errIfNoRows(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
