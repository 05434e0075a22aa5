package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// ctxUserIDKey is the echo context key under which the authentication
// middleware stores the authenticated user id (int64).
const ctxUserIDKey = "user_id"

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")

// issueToken signs an HS256 access token for the given user id.
func issueToken(secret string, ttl time.Duration, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// authJWT verifies the Authorization bearer token and stores the user id on
// the request context. Requests without a valid token are rejected before
// the handler runs.
func authJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return errUnauthorized
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return errUnauthorized
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return errUnauthorized
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return errUnauthorized
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return errUnauthorized
			}

			userID, err := parseSubject(claims["sub"])
			if err != nil || userID <= 0 {
				return errUnauthorized
			}

			c.Set(ctxUserIDKey, userID)
			return next(c)
		}
	}
}

// authenticatedUserID returns the user id stored by authJWT, or zero when
// the request was not authenticated.
func authenticatedUserID(c echo.Context) int64 {
	id, _ := c.Get(ctxUserIDKey).(int64)
	return id
}

func parseSubject(v interface{}) (int64, error) {
	switch t := v.(type) {
	case string:
		return strconv.ParseInt(t, 10, 64)
	case float64:
		return int64(t), nil
	default:
		return 0, errors.New("invalid sub claim")
	}
}
