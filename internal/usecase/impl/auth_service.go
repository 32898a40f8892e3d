// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/infra/auth"
	"addressbook/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:     txManager,
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		mailer:        mailer,
		resetTokenTTL: cfg.Auth.ResetTokenTTL,
		logger:        logger,
	}
}

// Register orchestrates the complete user registration process.
// A duplicate email is a business-rule rejection, not an infrastructure fault.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	if violations := input.Validate(); len(violations) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User

	// Execute the duplicate check and the insert within a single database
	// transaction so two racing registrations cannot both succeed.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Check if an account with this email already exists.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// If no error, it means an account was found.
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the user with the hashed credential.
		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed, password mismatch", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// ForgotPassword issues a fresh single-use reset token for the account and
// hands the raw token to the mail collaborator. Only the token's SHA-256
// digest is persisted, mirroring how sessions store their secrets.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.logger.Info("Password reset requested", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrEmailNotFound.WrapMessage("password reset request failed")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	rawToken, err := auth.NewResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewPasswordResetTokenRepository()

		// A new request supersedes any outstanding token for the account.
		if err := tokenRepo.InvalidateForUser(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to invalidate previous reset tokens")
		}

		newToken := &entity.PasswordResetToken{
			UserID:    user.ID,
			TokenHash: auth.DigestToken(rawToken),
			ExpiresAt: time.Now().Add(srv.resetTokenTTL),
		}

		return errors.WithStack(tokenRepo.Create(ctx, newToken))
	})
	if err != nil {
		srv.logger.Error("Failed to execute reset token transaction", "error", err, "email", input.Email)

		return errors.Wrap(err, "failed to execute reset token transaction")
	}

	// Dispatch after commit so the mail never references an uncommitted token.
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, rawToken); err != nil {
		srv.logger.Error("Failed to send password reset mail", "error", err, "email", input.Email)

		return errors.Wrap(err, "failed to send password reset mail")
	}
	srv.logger.Info("Password reset token issued", "userID", user.ID)

	return nil
}

// ResetPassword consumes a reset token and replaces the account's password
// hash. Missing, malformed, expired and already-used tokens all fail the
// same way; the hash replacement and the consumption commit atomically.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.logger.Info("Attempting password reset")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewPasswordResetTokenRepository()
		userRepo := repoFactory.NewUserRepository()

		token, err := tokenRepo.FindByHash(ctx, auth.DigestToken(input.Token))
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) ||
				errors.Is(err, repository.ErrResetTokenExpired) ||
				errors.Is(err, repository.ErrResetTokenUsed) {
				return domainerrors.ErrResetTokenInvalid.WrapMessage("password reset failed")
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		// Hash only after the token checks out, so unauthenticated callers
		// presenting bogus tokens never cost a bcrypt computation.
		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			srv.logger.Error("Failed to hash password during reset", "error", err)

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during reset")
		}

		if err := userRepo.UpdatePasswordHash(ctx, token.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := tokenRepo.MarkUsed(ctx, token.ID); err != nil {
			if errors.Is(err, repository.ErrResetTokenUsed) {
				// Consumed by a concurrent reset; reject this one too.
				return domainerrors.ErrResetTokenInvalid.WrapMessage("password reset failed")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Password reset failed", "error", err.Error())

		return err
	}
	srv.logger.Info("Password reset successfully")

	return nil
}
