package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// UserHandler serves record management for authenticated users.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListByRole returns the usernames holding the requested role. Used by the
// clients to populate physician and patient pickers.
//
// @Summary      List usernames by role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  true  "administrator, physician or patient"
// @Success      200   {object}  listUsersResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) ListByRole(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	if !domain.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "role must be one of: administrator physician patient"})
	}

	usernames, err := h.userService.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	if usernames == nil {
		usernames = []string{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Role: string(role), Usernames: usernames})
}

// UpdateProfile replaces the caller's own record.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Full field set, password included"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	username, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), username, profileInput(req.profilePayload))
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser replaces a physician or patient record on behalf of an
// administrator.
//
// @Summary      Update a physician or patient record (administrator)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string                true  "Target username"
// @Param        body      body      updateProfileRequest  true  "Full field set, password included"
// @Success      200       {object}  domain.User
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/users/{username} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	target := c.Param("username")

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), actor, target, profileInput(req.profilePayload))
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func profileInput(p profilePayload) ports.ProfileInput {
	return ports.ProfileInput{
		Username:   p.Username,
		Password:   p.Password,
		FullName:   p.FullName,
		NationalID: p.NationalID,
		Phone:      p.Phone,
		Address:    p.Address,
	}
}

func mapUserError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	case errors.Is(err, domain.ErrEmptyField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusConflict, errorResponse{Error: "username already taken"})
	case errors.Is(err, domain.ErrNoSession):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "no active session"})
	}
	return err
}
