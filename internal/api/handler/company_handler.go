package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// CompanyHandler handles the company directory.
type CompanyHandler struct {
	companies ports.CompanyService
}

func NewCompanyHandler(companies ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type companyRequest struct {
	Name     string `json:"name"  validate:"required"`
	Industry string `json:"industry"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// Create handles POST /companies.
//
// @Summary      Add a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companies.Create(c.Request().Context(), actor, ports.CompanyInput{
		Name:     req.Name,
		Industry: req.Industry,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Company
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	companies, err := h.companies.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Update handles PUT /companies/:id.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Company id"
// @Param        body  body      companyRequest  true  "Company details"
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companies.Update(c.Request().Context(), actor, c.Param("id"), ports.CompanyInput{
		Name:     req.Name,
		Industry: req.Industry,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /companies/:id.
//
// @Summary      Remove a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id  path  string  true  "Company id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.companies.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
