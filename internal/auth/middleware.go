package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"jobportal/internal/model"
)

// contextKey is where the authenticate gate stores the parsed token.
const contextKey = "user"

// Authenticate returns the first middleware gate: it requires a
// bearer-scheme Authorization header, verifies the token against the
// secret and attaches the decoded claims to the request context. A
// missing credential and an unverifiable one produce distinct 401
// messages.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKey,
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme := "Bearer "
			if len(header) <= len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token header")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		},
	})
}

// RequireRole returns the second gate: it assumes Authenticate ran and
// rejects identities whose role is outside the allow-list. An absent
// identity is an authentication failure (401); a present identity with
// the wrong role is forbidden (403).
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFrom(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if !claims.Role.OneOf(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "Access forbidden")
			}
			return next(c)
		}
	}
}

// ClaimsFrom extracts the authenticated identity attached by
// Authenticate, or an error when the request never passed that gate.
func ClaimsFrom(c echo.Context) (*Claims, error) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil, errors.New("no identity attached to request")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
