package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mealkit/internal/delivery/http/middleware"
	"mealkit/internal/delivery/http/validator"
	"mealkit/internal/domain/entity"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	uc := new(mockUserUsecase)
	handler := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.On("Register", mock.Anything, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}).Return(&usecase.AuthOutput{
		Token: "signed-token",
		User:  &entity.User{ID: userID, Email: "alice@example.com", Name: "Alice", Role: entity.RoleUser},
	}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	uc := new(mockUserUsecase)
	handler := NewUserHandler(uc, slog.Default())

	// Password below the minimum length never reaches the usecase.
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"abc"}`)

	err := handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login(t *testing.T) {
	uc := new(mockUserUsecase)
	handler := NewUserHandler(uc, slog.Default())

	uc.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
	}).Return(&usecase.AuthOutput{
		Token: "signed-token",
		User:  &entity.User{ID: uuid.New(), Email: "alice@example.com"},
	}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	uc.AssertExpectations(t)
}

func TestUserHandler_GetProfile_MissingIdentity(t *testing.T) {
	uc := new(mockUserUsecase)
	handler := NewUserHandler(uc, slog.Default())

	// No userID on the context, as if Authenticate never ran.
	c, rec := newTestContext(t, http.MethodGet, "/api/auth/profile", "")

	require.NoError(t, handler.GetProfile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestUserHandler_GetProfile(t *testing.T) {
	uc := new(mockUserUsecase)
	handler := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.On("GetProfile", mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Alice"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/profile", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Alice"`)
	uc.AssertExpectations(t)
}

func TestPagination_Defaults(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/api/orders", "")

	page, pageSize := pagination(c)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestPagination_FromQuery(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/api/orders?page=3&pageSize=25", "")

	page, pageSize := pagination(c)

	assert.Equal(t, 3, page)
	assert.Equal(t, 25, pageSize)
}

func TestCurrentUserID(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/api/orders", "")

	_, err := currentUserID(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	userID := uuid.New()
	c.Set(middleware.ContextKeyUserID, userID)

	got, err := currentUserID(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
