package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken represents a single-use credential for the
// forgot/reset-password flow. Only a SHA-256 hash of the raw token is
// stored; the raw value leaves the system once, in the reset mail.
type PasswordResetToken struct {
	ID        uuid.UUID  // The unique ID for this token record.
	UserID    uuid.UUID  // Links this token to the account it can reset.
	TokenHash string     // SHA-256 hash of the raw token for secure comparison.
	ExpiresAt time.Time  // The exact time after which this token is rejected.
	UsedAt    *time.Time // Set when the token is consumed; a used token never works again.
	CreatedAt time.Time  // Timestamp of when this token was issued.
}

// Consumed reports whether the token has already been used.
func (t *PasswordResetToken) Consumed() bool {
	return t.UsedAt != nil
}

// Expired reports whether the token's validity window has passed at the given time.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
