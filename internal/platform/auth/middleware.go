// Package auth guards the API behind the session layer.
package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medgate/medgate/internal/platform/feedback"
	"github.com/medgate/medgate/internal/platform/gateway"
	"github.com/medgate/medgate/internal/platform/session"
)

// Middleware validates the Bearer token, loads the session it points at and
// stores both the session and its backend credential in the request context.
// Anything that fails validation gets a 401; there is no anonymous access
// behind this middleware.
func Middleware(svc *session.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, feedback.Error("not authenticated"))
			}

			sid, err := svc.ParseToken(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, feedback.Error("invalid session token"))
			}

			sess, err := svc.Resolve(c.Request().Context(), sid)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, feedback.Error("session expired"))
			}

			ctx := session.NewContext(c.Request().Context(), sess)
			ctx = gateway.WithToken(ctx, sess.Token)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
