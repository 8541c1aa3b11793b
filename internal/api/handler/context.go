package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sinarkarya/construction-system/internal/api/middleware"
	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call. Handlers mounted behind RequireSession
// should never see the 401, but the check keeps a misrouted handler from
// dereferencing a nil identity.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
