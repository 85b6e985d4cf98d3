package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// UserHandler exposes the identity store reads the manager UI needs.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type listAssociatesResponse struct {
	Associates []*domain.User `json:"associates"`
}

// Associates handles GET /api/users/associates (manager only).
//
// @Summary      List all associates
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listAssociatesResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/users/associates [get]
func (h *UserHandler) Associates(c echo.Context) error {
	associates, err := h.users.ListByRole(c.Request().Context(), domain.RoleAssociate)
	if err != nil {
		return err
	}
	if associates == nil {
		associates = []*domain.User{}
	}
	return c.JSON(http.StatusOK, listAssociatesResponse{Associates: associates})
}
