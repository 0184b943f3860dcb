package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stylus/internal/domain/entity"
	"stylus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) GenerateTokens(uuid.UUID, []string) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

func (s *stubTokenService) ValidateRefreshToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

func (s *stubTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func runRequest(m *AuthMiddleware, chain echo.HandlerFunc, header string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.Authenticate(chain)(c)

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	rec := runRequest(m, okHandler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	rec := runRequest(m, okHandler, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: errors.New("expired")})

	rec := runRequest(m, okHandler, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_SetsClaims(t *testing.T) {
	authInfoID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{
		AuthInfoID:  authInfoID,
		Permissions: []string{entity.PermissionStylus},
	}})

	var gotID uuid.UUID
	var gotPermissions []string
	next := func(c echo.Context) error {
		gotID = c.Get(KeyAuthInfoID).(uuid.UUID)
		gotPermissions = c.Get(KeyPermissions).([]string)

		return okHandler(c)
	}

	rec := runRequest(m, next, "Bearer good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, authInfoID, gotID)
	assert.Equal(t, []string{entity.PermissionStylus}, gotPermissions)
}

func TestRequirePermission(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{
		AuthInfoID:  uuid.New(),
		Permissions: []string{"OTHER"},
	}})

	chain := m.RequirePermission(entity.PermissionStylus)(okHandler)
	rec := runRequest(m, chain, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermission_Granted(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{
		AuthInfoID:  uuid.New(),
		Permissions: []string{entity.PermissionStylus},
	}})

	chain := m.RequirePermission(entity.PermissionStylus)(okHandler)
	rec := runRequest(m, chain, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}
