package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/vitacare/clinic-api/internal/core/ports"
)

// Auth validates the bearer token and requires its session to still be live
// in the session store, then injects the identity into the request context.
// A logged-out token carries a valid signature but no session, and is
// rejected here.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			sessionID, _ := claims["jti"].(string)
			if username == "" || sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			stored, err := sessions.Get(c.Request().Context(), sessionID)
			if err != nil || stored != username {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set("username", username)
			c.Set("role", claims["role"])
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
