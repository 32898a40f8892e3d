package repository

import (
	"context"
	"errors"

	"addressbook/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reset-token persistence.
var (
	// ErrResetTokenNotFound is returned when no token matches the given hash.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrResetTokenExpired is returned when a matching token's validity window has passed.
	ErrResetTokenExpired = errors.New("password reset token expired")
	// ErrResetTokenUsed is returned when a matching token has already been consumed.
	ErrResetTokenUsed = errors.New("password reset token already used")
)

// PasswordResetTokenRepository defines persistence for single-use reset tokens.
type PasswordResetTokenRepository interface {
	// Create persists a new reset token record.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByHash retrieves a token record by its securely stored hash.
	// Expired or consumed tokens are reported via the sentinel errors above.
	FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkUsed consumes a token so it can never be presented again.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// InvalidateForUser consumes every outstanding unused token for a user,
	// keeping at most one active reset token per account.
	InvalidateForUser(ctx context.Context, userID uuid.UUID) error
}
