package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// Session represents an issued login session. Only the SHA-256 hash of the
// bearer token is stored.
type Session struct {
	ID         string    `db:"id"           json:"id"`
	UserID     string    `db:"user_id"      json:"user_id"`
	TokenHash  string    `db:"token_hash"   json:"-"`
	CreatedAt  time.Time `db:"created_at"   json:"created_at"`
	ExpiresAt  time.Time `db:"expires_at"   json:"expires_at"`
	LastSeenAt time.Time `db:"last_seen_at" json:"last_seen_at"`
}

// NewSession issues a session for the user with the given token hash
func NewSession(userID, tokenHash string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:         uuid.NewV4().String(),
		UserID:     userID,
		TokenHash:  tokenHash,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		LastSeenAt: now,
	}
}

// HasExpired reports whether the session is no longer usable
func (s *Session) HasExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// PasswordReset represents a single-use password reset token. Only the
// SHA-256 hash of the token is stored.
type PasswordReset struct {
	ID        string     `db:"id"         json:"id"`
	UserID    string     `db:"user_id"    json:"user_id"`
	TokenHash string     `db:"token_hash" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt    *time.Time `db:"used_at"    json:"used_at,omitempty"`
}

// NewPasswordReset issues a reset token record for the user
func NewPasswordReset(userID, tokenHash string, now time.Time, ttl time.Duration) *PasswordReset {
	return &PasswordReset{
		ID:        uuid.NewV4().String(),
		UserID:    userID,
		TokenHash: tokenHash,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsUsable reports whether the token can still redeem a password change
func (p *PasswordReset) IsUsable(now time.Time) bool {
	return p.UsedAt == nil && !now.After(p.ExpiresAt)
}
