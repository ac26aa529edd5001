package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "userapi/internal/errors"
	"userapi/internal/service"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.MsgResponse
// @Failure 401 {object} errors.MsgResponse
// @Failure 404 {object} errors.MsgResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.authService.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, msg := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, apperrors.MsgResponse{Msg: msg})
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
