package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sinarkarya/construction-system/internal/api/metrics"
	"github.com/sinarkarya/construction-system/internal/api/middleware"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

type ProjectHandler struct {
	projects   ports.ProjectService
	directory  ports.DirectoryService
	readState  ports.ReadStateService
	sessions   ports.SessionService
	sessionTTL time.Duration
}

func NewProjectHandler(projects ports.ProjectService, directory ports.DirectoryService, readState ports.ReadStateService, sessions ports.SessionService, sessionTTL time.Duration) *ProjectHandler {
	return &ProjectHandler{
		projects:   projects,
		directory:  directory,
		readState:  readState,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// MyProjects lists the projects the caller may switch into.
//
// @Summary      List switchable projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/projects/my-projects [get]
func (h *ProjectHandler) MyProjects(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.directory.ListAccessible(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"projects": projects,
	})
}

// Switch re-binds the session to one of the caller's projects and re-mints
// the credential with the derived role.
//
// @Summary      Switch bound project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      switchRequest  true  "Target project"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/switch [post]
func (h *ProjectHandler) Switch(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req switchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bound, err := h.directory.Switch(c.Request().Context(), identity, req.ProjectID)
	if err != nil {
		return err
	}

	token, err := h.sessions.Mint(bound, h.sessionTTL)
	if err != nil {
		return err
	}

	middleware.SetSessionCookie(c, token, h.sessionTTL)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"project_id": bound.BoundProjectID,
		"role":       string(bound.Role),
	})
}

// MarkRead records that the caller has seen the project's content as of now.
//
// @Summary      Acknowledge project content
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id}/read [post]
func (h *ProjectHandler) MarkRead(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if _, err := h.readState.Acknowledge(c.Request().Context(), c.Param("id"), identity.Email); err != nil {
		return err
	}

	metrics.ReadAcksTotal.Inc()
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// List returns every project. Admin and manager only.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"projects": projects,
	})
}

// Get returns a single project, visibility-scoped to the caller.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	p, err := h.projects.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"project": p,
	})
}

// Create adds a new project. Admin and manager only.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.projects.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"project": p,
	})
}

// Update replaces a project's writable fields. Admin and manager only.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.projects.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"project": p,
	})
}

// Delete removes a project and everything owned by it. Admin only. Sessions
// bound to the project are revoked lazily by the access guard on their next
// request.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
