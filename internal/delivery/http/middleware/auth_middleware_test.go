package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "hubmark/internal/delivery/context"
	"hubmark/internal/domain/service"
	mockSvc "hubmark/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	subject := ""
	next := func(c echo.Context) error {
		nextCalled = true
		if identity := deliverycontext.GetIdentity(c.Request().Context()); identity != nil {
			subject = identity.Subject
		}

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextCalled, subject
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, nextCalled, _ := invokeAuthenticate(t, tokenSvc, "")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, nextCalled, _ := invokeAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("bad-token").
		Return(nil, errors.New("failed to parse token"))

	rec, nextCalled, _ := invokeAuthenticate(t, tokenSvc, "Bearer bad-token")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_TOKEN", errInfo["code"])
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("good-token").
		Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}, nil)

	rec, nextCalled, subject := invokeAuthenticate(t, tokenSvc, "Bearer good-token")
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", subject)
}
