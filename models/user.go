package models

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	validation "github.com/go-ozzo/ozzo-validation/v3"
	"github.com/go-ozzo/ozzo-validation/v3/is"
	uuid "github.com/satori/go.uuid"
)

// A list of user roles. The values match what the legacy schema stored,
// so they must not change without a corresponding migration.
const (
	RoleApplicant   = "user"
	RoleAdmin       = "admin"
	RoleProvisioner = "provisioner"
)

// User represents an account held in the users table
type User struct {
	ID                 string     `db:"id"                   json:"id"`
	FullName           string     `db:"full_name"            json:"full_name"`
	Email              string     `db:"email"                json:"email"`
	PasswordHash       string     `db:"password_hash"        json:"-"`
	Role               string     `db:"role"                 json:"role"`
	IsActive           bool       `db:"is_active"            json:"is_active"`
	MustChangePassword bool       `db:"must_change_password" json:"must_change_password"`
	AccessExpiresAt    *time.Time `db:"access_expires_at"    json:"access_expires_at,omitempty"`
	INN                string     `db:"inn"                  json:"inn,omitempty"`
	Phone              string     `db:"phone"                json:"phone,omitempty"`
	Position           string     `db:"position"             json:"position,omitempty"`
	Priority           int        `db:"priority"             json:"priority,omitempty"`
	CreatedAt          time.Time  `db:"created_at"           json:"created_at"`
	LastLoginAt        *time.Time `db:"last_login_at"        json:"last_login_at,omitempty"`
}

// Identity is the minimal caller information carried through a request
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

// Identity returns the user's request identity
func (u *User) Identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// IsStaff returns true for commission and provisioner accounts
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleProvisioner
}

// HasExpiredAccess returns true when a staff expiry is set and has passed
func (u *User) HasExpiredAccess(now time.Time) bool {
	return u.AccessExpiresAt != nil && u.AccessExpiresAt.Before(now)
}

// NormaliseEmail lowercases and trims an email address. Lookups and unique
// constraints operate on the normalised value.
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegistrationRequest is the payload for registering an account. InviteCode
// is only read on the staff registration endpoint.
type RegistrationRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"invite_code,omitempty"`
}

// CreateRegistrationRequest manages the creation of a registration request from a reader
func CreateRegistrationRequest(reader io.Reader) (*RegistrationRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var req RegistrationRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	req.Email = NormaliseEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	return &req, nil
}

// Validate checks the registration payload against the password policy for
// the registering role
func (r *RegistrationRequest) Validate(minPasswordLength int) error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return apierrors.ErrPasswordTooShort
	}
	return nil
}

// NewUser builds a user for the given role from a validated registration request
func (r *RegistrationRequest) NewUser(role string) *User {
	return &User{
		ID:       uuid.NewV4().String(),
		FullName: r.FullName,
		Email:    r.Email,
		Role:     role,
		IsActive: true,
	}
}

// LoginRequest is the payload for creating a session
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateLoginRequest manages the creation of a login request from a reader
func CreateLoginRequest(reader io.Reader) (*LoginRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var req LoginRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	req.Email = NormaliseEmail(req.Email)
	return &req, nil
}

// PasswordChangeRequest is the payload for changing the caller's own password
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreatePasswordChangeRequest manages the creation of a password change request from a reader
func CreatePasswordChangeRequest(reader io.Reader) (*PasswordChangeRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var req PasswordChangeRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}
	return &req, nil
}

// StaffRequest is the payload for the provisioner creating a commission account
type StaffRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccessUntil string `json:"access_until"`
	INN         string `json:"inn,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Position    string `json:"position,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// CreateStaffRequest manages the creation of a staff request from a reader
func CreateStaffRequest(reader io.Reader) (*StaffRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var req StaffRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	req.Email = NormaliseEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	return &req, nil
}

// Validate checks the staff creation payload. All of full name, email,
// password and access expiry are required for a provisioned account.
func (r *StaffRequest) Validate(minPasswordLength int) error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.AccessUntil, validation.Required, validation.Date("2006-01-02")),
	)
	if err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return apierrors.ErrPasswordTooShort
	}
	return nil
}

// AccessExpiry returns the end of the access_until day in UTC, so a
// provisioned account remains usable for the whole of its final day
func (r *StaffRequest) AccessExpiry() (time.Time, error) {
	day, err := time.Parse("2006-01-02", r.AccessUntil)
	if err != nil {
		return time.Time{}, err
	}
	return EndOfDay(day), nil
}

// EndOfDay returns the last second of the given day in UTC
func EndOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
}

// NewStaffUser builds a commission account from a validated staff request.
// Provisioned accounts always start with a forced password change.
func (r *StaffRequest) NewStaffUser() (*User, error) {
	expiry, err := r.AccessExpiry()
	if err != nil {
		return nil, err
	}
	return &User{
		ID:                 uuid.NewV4().String(),
		FullName:           r.FullName,
		Email:              r.Email,
		Role:               RoleAdmin,
		IsActive:           true,
		MustChangePassword: true,
		AccessExpiresAt:    &expiry,
		INN:                r.INN,
		Phone:              r.Phone,
		Position:           r.Position,
		Priority:           r.Priority,
	}, nil
}

// StaffUpdate is the payload for a partial update of a commission account.
// Empty fields leave the stored values untouched.
type StaffUpdate struct {
	FullName    string `json:"full_name,omitempty"`
	Password    string `json:"password,omitempty"`
	AccessUntil string `json:"access_until,omitempty"`
	INN         string `json:"inn,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Position    string `json:"position,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// CreateStaffUpdate manages the creation of a staff update from a reader
func CreateStaffUpdate(reader io.Reader) (*StaffUpdate, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var update StaffUpdate
	if err := json.Unmarshal(b, &update); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	update.FullName = strings.TrimSpace(update.FullName)
	return &update, nil
}

// Validate checks the optional fields that are present
func (u *StaffUpdate) Validate(minPasswordLength int) error {
	err := validation.ValidateStruct(u,
		validation.Field(&u.AccessUntil, validation.Date("2006-01-02")),
	)
	if err != nil {
		return err
	}
	if u.Password != "" && len(u.Password) < minPasswordLength {
		return apierrors.ErrPasswordTooShort
	}
	return nil
}

// IsEmpty returns true when the update carries no changes
func (u *StaffUpdate) IsEmpty() bool {
	return u.FullName == "" && u.Password == "" && u.AccessUntil == "" &&
		u.INN == "" && u.Phone == "" && u.Position == "" && u.Priority == nil
}

// AccessExpiry returns the end of the access_until day, or nil when the
// update does not change the expiry
func (u *StaffUpdate) AccessExpiry() (*time.Time, error) {
	if u.AccessUntil == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", u.AccessUntil)
	if err != nil {
		return nil, err
	}
	expiry := EndOfDay(day)
	return &expiry, nil
}
