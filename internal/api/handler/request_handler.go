package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/api/metrics"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// RequestHandler handles the service-request ledger and the approval workflow.
type RequestHandler struct {
	requests ports.RequestService
}

func NewRequestHandler(requests ports.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type submitRequestRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Notes     string `json:"notes"`
}

type approveRequestRequest struct {
	ProjectName string   `json:"project_name"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
	AdminNote   string   `json:"admin_note"`
}

type rejectRequestRequest struct {
	AdminNote string `json:"admin_note"`
}

// Submit handles POST /service-requests.
//
// @Summary      Submit a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  domain.ServiceRequest
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /service-requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.requests.Submit(c.Request().Context(), actor, ports.SubmitRequestInput{
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.RequestsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, request)
}

// List handles GET /service-requests. Admins see the full ledger; clients see
// their own submissions.
//
// @Summary      List service requests
// @Tags         service-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.RequestSummary
// @Failure      403  {object}  errorResponse
// @Router       /service-requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	requests, err := h.requests.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Approve handles PUT /service-requests/:id/approve.
//
// @Summary      Approve a pending request and spawn its project
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Request id"
// @Param        body  body      approveRequestRequest  true  "Project overrides"
// @Success      200   {object}  ports.ApprovalResult
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /service-requests/{id}/approve [put]
func (h *RequestHandler) Approve(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req approveRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.requests.Approve(c.Request().Context(), actor, c.Param("id"), ports.ApproveRequestInput{
		ProjectName: req.ProjectName,
		Description: req.Description,
		Budget:      req.Budget,
		AdminNote:   req.AdminNote,
	})
	if err != nil {
		return err
	}

	metrics.RequestsReviewedTotal.WithLabelValues("approved").Inc()
	metrics.ProjectsCreatedTotal.WithLabelValues("approval").Inc()
	return c.JSON(http.StatusOK, result)
}

// Reject handles PUT /service-requests/:id/reject.
//
// @Summary      Reject a pending request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request id"
// @Param        body  body      rejectRequestRequest  true  "Review note"
// @Success      200   {object}  domain.ServiceRequest
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /service-requests/{id}/reject [put]
func (h *RequestHandler) Reject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req rejectRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	request, err := h.requests.Reject(c.Request().Context(), actor, c.Param("id"), req.AdminNote)
	if err != nil {
		return err
	}

	metrics.RequestsReviewedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, request)
}

// Delete handles DELETE /service-requests/:id.
//
// @Summary      Delete a service request
// @Tags         service-requests
// @Security     BearerAuth
// @Param        id  path  string  true  "Request id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /service-requests/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.requests.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
