package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase backs the auth handler tests without touching crypto or storage.
type fakeAuthUsecase struct {
	registered   map[string]*entity.User
	resetCalled  bool
	forgotCalled bool
}

func newFakeAuthUsecase() *fakeAuthUsecase {
	return &fakeAuthUsecase{registered: make(map[string]*entity.User)}
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if _, ok := f.registered[input.Email]; ok {
		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
	}
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: "hashed:" + input.Password,
	}
	f.registered[input.Email] = user

	return &usecase.RegisterOutput{User: user}, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, ok := f.registered[input.Email]
	if !ok || user.PasswordHash != "hashed:"+input.Password {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return &usecase.LoginOutput{AccessToken: "issued-token", User: user}, nil
}

func (f *fakeAuthUsecase) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	f.forgotCalled = true
	if _, ok := f.registered[input.Email]; !ok {
		return domainerrors.ErrEmailNotFound.WrapMessage("password reset request failed")
	}

	return nil
}

func (f *fakeAuthUsecase) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	f.resetCalled = true
	if input.Token != "valid-token" {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("password reset failed")
	}

	return nil
}

func newAuthTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/forgot-password", h.ForgotPassword)
	e.POST("/api/auth/reset-password", h.ResetPassword)

	return e
}

const registerJSON = `{"name":"Test User","email":"user@example.com","password":"secret-password"}`

func TestAuthHandler_Register(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())

	rec := doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data userResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user@example.com", body.Data.Email)
	assert.NotEmpty(t, body.Data.ID)
	// The password hash never appears in the payload.
	assert.NotContains(t, rec.Body.String(), "hashed:")
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())
	doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", body.Error.Code)
	assert.Equal(t, "User with this email already exists.", body.Message)
}

func TestAuthHandler_Login(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())
	doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"secret-password"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data loginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "issued-token", body.Data.AccessToken)
	assert.Equal(t, "user@example.com", body.Data.User.Email)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())
	doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	uc := newFakeAuthUsecase()
	e := newAuthTestServer(uc)
	doJSON(e, http.MethodPost, "/api/auth/register", registerJSON)

	rec := doJSON(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"user@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.forgotCalled)
}

func TestAuthHandler_ForgotPasswordUnknownEmail(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())

	rec := doJSON(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMAIL_NOT_FOUND", body.Error.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())

	rec := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"token":"valid-token","newPassword":"new-password"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ResetPasswordMissingFields(t *testing.T) {
	uc := newFakeAuthUsecase()
	e := newAuthTestServer(uc)

	payloads := []string{
		`{}`,
		`{"token":"valid-token"}`,
		`{"newPassword":"new-password"}`,
	}
	for _, payload := range payloads {
		rec := doJSON(e, http.MethodPost, "/api/auth/reset-password", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
	}
	// The use case is never reached on malformed requests.
	assert.False(t, uc.resetCalled)
}

func TestAuthHandler_EmptyBodyIsBadRequest(t *testing.T) {
	uc := newFakeAuthUsecase()
	e := newAuthTestServer(uc)

	// Empty-bodied POSTs leave the bound pointer nil and must fail fast
	// with 400, never reach the use case.
	targets := []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/auth/forgot-password",
		"/api/auth/reset-password",
	}
	for _, target := range targets {
		rec := doJSON(e, http.MethodPost, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
	assert.Empty(t, uc.registered)
	assert.False(t, uc.forgotCalled)
	assert.False(t, uc.resetCalled)
}

func TestAuthHandler_ResetPasswordInvalidToken(t *testing.T) {
	e := newAuthTestServer(newFakeAuthUsecase())

	rec := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"token":"bogus","newPassword":"new-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "RESET_TOKEN_INVALID", body.Error.Code)
}
