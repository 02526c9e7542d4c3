package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitacare/clinic-api/internal/api/metrics"
	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// AuthHandler serves login, logout and gated registration.
type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Login authenticates a user through a portal and returns a session token.
//
// @Summary      Login through a portal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials and portal"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, domain.Role(req.Portal))
	if err != nil {
		status := http.StatusInternalServerError
		result := "error"
		msg := "internal error"
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status, result, msg = http.StatusNotFound, "user_not_found", "user not found"
		case errors.Is(err, domain.ErrInvalidCredentials):
			status, result, msg = http.StatusUnauthorized, "bad_password", "invalid credentials"
		case errors.Is(err, domain.ErrHierarchyDenied):
			status, result, msg = http.StatusForbidden, "hierarchy_denied", err.Error()
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, errorResponse{Error: msg})
	}

	metrics.LoginsTotal.WithLabelValues("authorized").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout revokes the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session revoked"
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	username, _, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sessionID, username); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register creates a new account after the master-credential gate passes.
//
// @Summary      Register a new user (master credentials required)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Master credentials, portal and account fields"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		MasterUsername: req.MasterUsername,
		MasterPassword: req.MasterPassword,
		Portal:         domain.Role(req.Portal),
		Role:           domain.Role(req.Role),
		Profile: ports.ProfileInput{
			Username:   req.Profile.Username,
			Password:   req.Profile.Password,
			FullName:   req.Profile.FullName,
			NationalID: req.Profile.NationalID,
			Phone:      req.Profile.Phone,
			Address:    req.Profile.Address,
		},
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrMasterDenied):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrRoleNotRegistrable):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrEmptyField):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}
