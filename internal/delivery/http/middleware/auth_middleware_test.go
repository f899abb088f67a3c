package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mocksvc "bloom/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mocksvc.MockTokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedNext := false
	next := func(c echo.Context) error {
		reachedNext = true

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, reachedNext
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := new(mocksvc.MockTokenService)
	tokenSvc.On("Decode", "valid-token").Return(int64(7), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		accountID, ok := AccountID(c)
		require.True(t, ok)
		assert.Equal(t, int64(7), accountID)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, reachedNext := runAuthenticate(t, new(mocksvc.MockTokenService), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reachedNext)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	rec, reachedNext := runAuthenticate(t, new(mocksvc.MockTokenService), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reachedNext)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mocksvc.MockTokenService)
	tokenSvc.On("Decode", "bad-token").Return(int64(0), assert.AnError)

	rec, reachedNext := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reachedNext)
}

func TestAccountID_Absent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := AccountID(c)
	assert.False(t, ok)
}
