package service

import "context"

// Mailer defines the outbound notification collaborator for the
// password-reset flow. The delivery channel itself is infrastructure;
// use cases only hand over the recipient and the raw reset token.
type Mailer interface {
	// SendPasswordReset dispatches the raw reset token to the given address.
	SendPasswordReset(ctx context.Context, email, token string) error
}
