package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// ContactHandler resolves the role-scoped contact list.
type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List handles GET /contacts: the users the caller may message, derived
// from role and project assignments on every call.
//
// @Summary      List messageable contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	contacts, err := h.contacts.Contacts(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}
