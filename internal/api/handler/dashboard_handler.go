package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// DashboardHandler serves the per-portal dashboard aggregates.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Admin handles GET /dashboard/admin.
//
// @Summary      Admin dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboards.AdminStats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Employee handles GET /dashboard/employee.
//
// @Summary      Employee dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.MemberStats
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/employee [get]
func (h *DashboardHandler) Employee(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboards.EmployeeStats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Client handles GET /dashboard/client.
//
// @Summary      Client dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.MemberStats
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/client [get]
func (h *DashboardHandler) Client(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboards.ClientStats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
