package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "skycast/internal/errors"
	"skycast/internal/model"
	"skycast/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newAuthContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	result := &service.AuthResult{
		Token:    "signed-token",
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    model.Roles{model.RoleUser},
	}

	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, "alice", "alice@example.com", "password123").Return(result, nil)

	h := NewAuthHandler(mockSvc)

	c, rec := newAuthContext(t, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"type":"Bearer"`)
	assert.Contains(t, rec.Body.String(), `"roles":["USER"]`)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, "alice", "alice@example.com", "password123").
		Return(nil, apperrors.ErrUsernameTaken)

	h := NewAuthHandler(mockSvc)

	c, _ := newAuthContext(t, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)

	err := h.Register(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService))

	// username below the minimum length
	c, _ := newAuthContext(t, "/api/auth/register",
		`{"username":"al","email":"alice@example.com","password":"password123"}`)

	err := h.Register(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "alice", "wrong").Return(nil, apperrors.ErrInvalidCredentials)

	h := NewAuthHandler(mockSvc)

	c, _ := newAuthContext(t, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	result := &service.AuthResult{
		Token:    "signed-token",
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    model.Roles{model.RoleUser},
	}

	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "alice", "password123").Return(result, nil)

	h := NewAuthHandler(mockSvc)

	c, rec := newAuthContext(t, "/api/auth/login", `{"username":"alice","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}
