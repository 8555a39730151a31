package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// CatalogHandler handles the service catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type serviceRequest struct {
	Name        string  `json:"name"  validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

// Create handles POST /services.
//
// @Summary      Add a service to the catalog
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Create(c.Request().Context(), actor, ports.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// List handles GET /services.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Service
// @Router       /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	services, err := h.catalog.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Update handles PUT /services/:id.
//
// @Summary      Update a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Update(c.Request().Context(), actor, c.Param("id"), ports.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /services/:id.
//
// @Summary      Remove a catalog service
// @Tags         services
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
