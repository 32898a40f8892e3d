package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
}

func (s *stubTokenService) Generate(userID uuid.UUID, email string) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) Validate(tokenString string) (*service.Claims, error) {
	if s.claims == nil || tokenString != "stub-token" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token")
	}

	return s.claims, nil
}

func runAuthMiddleware(t *testing.T, handler echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := handler(next)(c)

	return rec, c, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: userID, Email: "user@example.com"}})

	rec, c, err := runAuthMiddleware(t, m.Authenticate, "Bearer stub-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, "user@example.com", c.Get(ContextKeyEmail))
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	for _, header := range []string{"", "Bearer ", "Basic abc123", "stub-token"} {
		rec, _, err := runAuthMiddleware(t, m.Authenticate, header)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	rec, c, err := runAuthMiddleware(t, m.Authenticate, "Bearer tampered-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c.Get(ContextKeyUserID))
}

func TestOptionalAuthenticate_StampsIdentityWhenValid(t *testing.T) {
	userID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: userID, Email: "user@example.com"}})

	rec, c, err := runAuthMiddleware(t, m.OptionalAuthenticate, "Bearer stub-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
}

func TestOptionalAuthenticate_NeverRejects(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	for _, header := range []string{"", "Bearer tampered-token", "Basic abc123"} {
		rec, c, err := runAuthMiddleware(t, m.OptionalAuthenticate, header)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "header %q", header)
		assert.Nil(t, c.Get(ContextKeyUserID), "header %q", header)
	}
}
