package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sinarkarya/construction-system/internal/api/metrics"
	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session credential.
const SessionCookieName = "token"

const identityContextKey = "identity"

// Session resolves the session cookie into an Identity and confirms its
// project binding before any handler runs. Every failure mode — missing
// cookie, bad signature, expiry, revocation, stale binding — degrades
// silently to anonymous; the request proceeds without an identity and any
// stale cookie is cleared in the response. "Not logged in" is never an
// error here.
func Session(sessions ports.SessionService, guard ports.GuardService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionsResolvedTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			identity, ok := sessions.Resolve(c.Request().Context(), cookie.Value)
			if !ok {
				metrics.SessionsResolvedTotal.WithLabelValues("invalid").Inc()
				ClearSessionCookie(c)
				return next(c)
			}

			result, err := guard.AuthorizeBinding(c.Request().Context(), identity)
			if err != nil {
				return err
			}
			if result == domain.BindingRevoked {
				// The bound project is gone. The session dies with it, and
				// the response is indistinguishable from "never logged in".
				metrics.SessionsRevokedTotal.WithLabelValues("stale_binding").Inc()
				ClearSessionCookie(c)
				return next(c)
			}

			metrics.SessionsResolvedTotal.WithLabelValues("ok").Inc()
			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests with 401. Mount it after Session.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole admits only identities whose effective role is in the allowed
// set. The effective role is recomputed here on every request so that a
// change to the administrator address takes effect without re-login.
func RequireRole(sessions ports.SessionService, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[sessions.EffectiveRole(identity)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity stashed by the Session middleware.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*domain.Identity)
	return identity, ok && identity != nil
}

// SetSessionCookie attaches a fresh credential to the response.
func SetSessionCookie(c echo.Context, credential string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    credential,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie instructs the client to drop the credential.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
