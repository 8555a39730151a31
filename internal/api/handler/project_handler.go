package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/api/metrics"
	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// ProjectHandler handles the project registry.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type createProjectRequest struct {
	Name              string     `json:"name"      validate:"required"`
	Description       string     `json:"description"`
	ClientID          string     `json:"client_id" validate:"required"`
	AssignedEmployees []string   `json:"assigned_employees"`
	ServiceID         string     `json:"service_id"`
	Budget            float64    `json:"budget"    validate:"gte=0"`
	Deadline          *time.Time `json:"deadline"`
}

type updateProjectRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	ClientID          *string    `json:"client_id"`
	AssignedEmployees *[]string  `json:"assigned_employees"`
	Status            *string    `json:"status" validate:"omitempty,oneof=pending in-progress review completed on-hold"`
	Budget            *float64   `json:"budget" validate:"omitempty,gte=0"`
	Deadline          *time.Time `json:"deadline"`
}

type assignRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

// Create handles POST /projects: direct admin creation, outside the
// approval workflow.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Create(c.Request().Context(), actor, ports.CreateProjectInput{
		Name:              req.Name,
		Description:       req.Description,
		ClientID:          req.ClientID,
		AssignedEmployees: req.AssignedEmployees,
		ServiceID:         req.ServiceID,
		Budget:            req.Budget,
		Deadline:          req.Deadline,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues("direct").Inc()
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  ports.ProjectSummary
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	project, err := h.projects.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /projects. The listing is role-scoped: admins see all,
// clients their own, employees their assignments.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ProjectSummary
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Update handles PUT /projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateProjectInput{
		Name:              req.Name,
		Description:       req.Description,
		ClientID:          req.ClientID,
		AssignedEmployees: req.AssignedEmployees,
		Budget:            req.Budget,
		Deadline:          req.Deadline,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		in.Status = &status
	}

	project, err := h.projects.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Assign handles PUT /projects/:id/assign, a wholesale replacement of the
// assignment set.
//
// @Summary      Replace a project's assigned employees
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Project id"
// @Param        body  body      assignRequest  true  "Employee ids"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/assign [put]
func (h *ProjectHandler) Assign(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Assign(c.Request().Context(), actor, c.Param("id"), req.EmployeeIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
