package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echovalidator "boutique/internal/delivery/http/validator"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountUsecase is a minimal in-memory stand-in for the account usecase.
type fakeAccountUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
	currentUser    *entity.User

	lastRegister *usecase.RegisterInput
	lastLogin    *usecase.LoginInput
}

func (f *fakeAccountUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.lastRegister = input

	return f.registerOutput, f.registerErr
}

func (f *fakeAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.lastLogin = input

	return f.loginOutput, f.loginErr
}

func (f *fakeAccountUsecase) CurrentUser(_ context.Context, _ string) (*entity.User, error) {
	return f.currentUser, nil
}

func (f *fakeAccountUsecase) GetUser(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return f.currentUser, nil
}

func (f *fakeAccountUsecase) ListUsers(_ context.Context, _ *usecase.ListUsersInput) ([]*entity.User, error) {
	return nil, nil
}

func newHandlerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = echovalidator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "secret-hash",
	}
	uc := &fakeAccountUsecase{registerOutput: &usecase.RegisterOutput{User: user}}
	handler := NewUserHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/users/new",
		`{"name":"Alice","email":"alice@example.com","password":"Password123!"}`)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice@example.com", uc.lastRegister.Email)
	body := rec.Body.String()
	assert.Contains(t, body, user.ID.String())
	// The stored hash must never appear in a response.
	assert.NotContains(t, body, "secret-hash")
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	uc := &fakeAccountUsecase{}
	handler := NewUserHandler(uc, discardLogger())

	cases := []string{
		`{"email":"not-an-email","password":"Password123!"}`,
		`{"email":"alice@example.com","password":"short"}`,
		`{"password":"Password123!"}`,
	}
	for _, payload := range cases {
		c, rec := newHandlerTestContext(t, http.MethodPost, "/users/new", payload)

		err := handler.Register(c)
		if err != nil {
			// Validation failures surface as echo.HTTPError with status 400.
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		} else {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
		assert.Nil(t, uc.lastRegister)
	}
}

func TestUserHandler_Login_ReturnsBearerToken(t *testing.T) {
	uc := &fakeAccountUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken: "signed.token",
			TokenType:   "bearer",
			User:        &entity.User{ID: uuid.New(), Email: "alice@example.com"},
		},
	}
	handler := NewUserHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/token",
		`{"email":"alice@example.com","password":"Password123!"}`)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":"signed.token"`)
	assert.Contains(t, body, `"token_type":"bearer"`)
}

func TestUserHandler_Login_AcceptsOAuth2FormFields(t *testing.T) {
	uc := &fakeAccountUsecase{
		loginOutput: &usecase.LoginOutput{AccessToken: "signed.token", TokenType: "bearer"},
	}
	handler := NewUserHandler(uc, discardLogger())

	e := echo.New()
	e.Validator = echovalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/token",
		strings.NewReader("username=alice%40example.com&password=Password123%21"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", uc.lastLogin.Email)
	assert.Equal(t, "Password123!", uc.lastLogin.Password)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	handler := NewUserHandler(&fakeAccountUsecase{}, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
