package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealkit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(userID uuid.UUID, email string, roles []string) (string, error) {
	args := m.Called(userID, email, roles)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := new(mockTokenService)
	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	tokenSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := new(mockTokenService)
	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("Basic abc123")

	err := m.Authenticate(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockTokenService)
	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("Bearer bad-token")

	tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("token expired"))

	err := m.Authenticate(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticate_SetsIdentity(t *testing.T) {
	tokenSvc := new(mockTokenService)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer good-token")
	userID := uuid.New()

	tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"merchant"}}, nil)

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	got, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, got)
	assert.Equal(t, []string{"merchant"}, c.Get(ContextKeyRoles))
}

func TestRequireAnyRole_MissingRoles(t *testing.T) {
	m := NewAuthMiddleware(new(mockTokenService))
	c, _ := newAuthTestContext("")

	err := m.RequireAnyRole("merchant", "admin")(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireAnyRole_WrongRole(t *testing.T) {
	m := NewAuthMiddleware(new(mockTokenService))
	c, _ := newAuthTestContext("")
	c.Set(ContextKeyRoles, []string{"user"})

	err := m.RequireRole("admin")(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireAnyRole_Passes(t *testing.T) {
	m := NewAuthMiddleware(new(mockTokenService))
	c, rec := newAuthTestContext("")
	c.Set(ContextKeyRoles, []string{"merchant"})

	require.NoError(t, m.RequireAnyRole("merchant", "admin")(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_FailureRendersEnvelope(t *testing.T) {
	tokenSvc := new(mockTokenService)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("")

	// Auth failures flow through the shared error handler like every
	// other error, so clients always see the unified envelope.
	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)
	NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}
