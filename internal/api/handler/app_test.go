package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/api"
	"github.com/sinarkarya/construction-system/internal/api/handler"
	"github.com/sinarkarya/construction-system/internal/api/middleware"
	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/service"
)

// app assembles the HTTP surface against in-memory storage, mirroring the
// production router wiring.
type app struct {
	e        *echo.Echo
	sessions *service.SessionService
	accounts *service.AccountService
	projects *memProjectRepo
	statuses *memReadStatusRepo
	revoked  *memRevocationStore
	users    *memUserRepo
}

func newApp(t *testing.T, adminEmail string) *app {
	t.Helper()

	projects := newMemProjectRepo()
	statuses := newMemReadStatusRepo()
	revoked := newMemRevocationStore()
	users := newMemUserRepo()

	log := zerolog.Nop()
	sessions := service.NewSessionService("secret", adminEmail, time.Hour, revoked, log)
	guard := service.NewGuardService(sessions, projects, log)
	directory := service.NewDirectoryService(sessions, projects)
	readState := service.NewReadStateService(projects, statuses, log)
	accounts := service.NewAccountService(users)
	projectSvc := service.NewProjectService(sessions, projects, statuses, log)

	authHandler := handler.NewAuthHandler(accounts, sessions, time.Hour)
	projectHandler := handler.NewProjectHandler(projectSvc, directory, readState, sessions, time.Hour)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	apiGroup := e.Group("/api", middleware.Session(sessions, guard))
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/check", authHandler.Check)
	apiGroup.POST("/auth/logout", authHandler.Logout)

	pg := apiGroup.Group("/projects", middleware.RequireSession())
	pg.GET("/my-projects", projectHandler.MyProjects)
	pg.POST("/switch", projectHandler.Switch)
	pg.POST("/:id/read", projectHandler.MarkRead)
	pg.GET("/:id", projectHandler.Get)

	staffOnly := middleware.RequireRole(sessions, domain.RoleAdmin, domain.RoleManager)
	pg.GET("", projectHandler.List, staffOnly)
	pg.POST("", projectHandler.Create, staffOnly)
	pg.PUT("/:id", projectHandler.Update, staffOnly)
	pg.DELETE("/:id", projectHandler.Delete, middleware.RequireRole(sessions, domain.RoleAdmin))

	return &app{
		e:        e,
		sessions: sessions,
		accounts: accounts,
		projects: projects,
		statuses: statuses,
		revoked:  revoked,
		users:    users,
	}
}

func (a *app) request(t *testing.T, method, path, cookie, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) mint(t *testing.T, identity *domain.Identity) string {
	t.Helper()
	token, err := a.sessions.Mint(identity, time.Hour)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	return token
}

func cookieCleared(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value == "" && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func sessionCookie(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
