package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userapi/internal/config"
	apperrors "userapi/internal/errors"
	"userapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, apperrors.MsgResponse{Msg: apperrors.MsgWelcome})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Secured routes: the guard only checks the token signature. The
	// verified claims are not consumed downstream; handlers work off the
	// path parameters they receive.
	secured := e.Group("/user", echojwt.WithConfig(echojwt.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ErrorHandler: guardErrorHandler,
	}))
	secured.GET("/:id", userHandler.GetProfile)
}

// guardErrorHandler distinguishes a missing bearer token (401) from one
// that fails to parse or verify (400).
func guardErrorHandler(c echo.Context, err error) error {
	var tokenErr *echojwt.TokenError
	if errors.As(err, &tokenErr) {
		return c.JSON(http.StatusBadRequest, apperrors.MsgResponse{Msg: apperrors.MsgInvalidToken})
	}
	return c.JSON(http.StatusUnauthorized, apperrors.MsgResponse{Msg: apperrors.MsgAccessDenied})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
