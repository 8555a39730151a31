package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user id and a
// recognised role must be present. A token that parses but lacks either is
// structurally valid but operationally unusable; reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || !domain.Role(role).Valid() {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{ID: id, Role: domain.Role(role)}, nil
}
