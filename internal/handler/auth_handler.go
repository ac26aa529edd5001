package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "userapi/internal/errors"
	"userapi/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request. Field order
// matters: the validator reports failures in declaration order, which is
// the order the checks must be applied in.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmpassword" validate:"eqfield=Password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.MsgResponse
// @Failure 422 {object} errors.MsgResponse
// @Failure 500 {object} errors.MsgResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	// Absent or malformed bodies leave fields empty and fall through to
	// the presence checks below.
	_ = c.Bind(&req)

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.MsgResponse{Msg: validationMessage(err)})
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		status, msg := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, apperrors.MsgResponse{Msg: msg})
	}

	return c.JSON(http.StatusCreated, apperrors.MsgResponse{Msg: apperrors.MsgUserCreated})
}

// Login godoc
// @Summary Authenticate a user and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 404 {object} errors.MsgResponse
// @Failure 422 {object} errors.MsgResponse
// @Failure 500 {object} errors.MsgResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	_ = c.Bind(&req)

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.MsgResponse{Msg: validationMessage(err)})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status, msg := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, apperrors.MsgResponse{Msg: msg})
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Msg:   apperrors.MsgLoginOK,
		Token: token,
	})
}

// validationMessage translates the first failing field check into its
// user-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	switch verrs[0].StructNamespace() {
	case "RegisterRequest.Name":
		return apperrors.MsgNameRequired
	case "RegisterRequest.Email":
		return apperrors.MsgEmailRequired
	case "RegisterRequest.Password":
		return apperrors.MsgPasswordRequired
	case "RegisterRequest.ConfirmPassword":
		return apperrors.MsgPasswordMismatch
	case "LoginRequest.Email":
		return apperrors.MsgLoginEmailRequired
	case "LoginRequest.Password":
		return apperrors.MsgLoginPasswordRequired
	default:
		return verrs[0].Error()
	}
}
