package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sinarkarya/construction-system/internal/api/metrics"
	"github.com/sinarkarya/construction-system/internal/api/middleware"
	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

type AuthHandler struct {
	accounts   ports.AccountService
	sessions   ports.SessionService
	sessionTTL time.Duration
}

func NewAuthHandler(accounts ports.AccountService, sessions ports.SessionService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, sessionTTL: sessionTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type checkUser struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	ProjectID string `json:"projectId,omitempty"`
	UserID    string `json:"userId"`
}

type checkResponse struct {
	LoggedIn bool       `json:"loggedIn"`
	User     *checkUser `json:"user,omitempty"`
}

// Login authenticates an account and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	identity := &domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	token, err := h.sessions.Mint(identity, h.sessionTTL)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	middleware.SetSessionCookie(c, token, h.sessionTTL)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user": checkUser{
			Email:  user.Email,
			Role:   string(user.Role),
			UserID: user.ID,
		},
	})
}

// Check reports whether the request carries a live session. It always
// answers 200: an absent, malformed, or revoked session is a normal state,
// not an error, and is indistinguishable from "never logged in".
//
// @Summary      Check session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, checkResponse{LoggedIn: false})
	}

	return c.JSON(http.StatusOK, checkResponse{
		LoggedIn: true,
		User: &checkUser{
			Email:     identity.Email,
			Role:      string(identity.Role),
			ProjectID: identity.BoundProjectID,
			UserID:    identity.UserID,
		},
	})
}

// Logout revokes the current credential and clears the cookie. The cookie is
// cleared even when revocation fails: the client must always be told to drop
// the credential, error path included.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Clear before any write: response headers survive whichever body —
	// success or error envelope — is rendered afterwards.
	middleware.ClearSessionCookie(c)

	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "logged out",
	})
}
