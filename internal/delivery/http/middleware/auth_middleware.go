package middleware

import (
	"net/http"
	"strings"

	"bloom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccountID is the echo.Context key under which Authenticate
// stores the verified account id.
const ContextKeyAccountID = "accountID"

// AuthMiddleware provides middleware for session-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer session token and stores the asserted
// account id on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		accountID, err := m.tokenSvc.Decode(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyAccountID, accountID)

		return next(c)
	}
}

// AccountID extracts the authenticated account id a preceding Authenticate
// call stored on the context.
func AccountID(c echo.Context) (int64, bool) {
	accountID, ok := c.Get(ContextKeyAccountID).(int64)

	return accountID, ok
}
