package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/handler"
	"jobportal/internal/model"
	"jobportal/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Browser client, served from the embedded filesystem.
	e.FileFS("/", "index.html", web.FS)

	// Public routes
	e.POST("/auth/login", authHandler.Login)

	// Protected routes: gate one verifies the bearer token, gate two
	// checks the decoded role against each route's allow-list.
	secured := e.Group("", auth.Authenticate(cfg.JWTSecret))

	secured.GET("/auth/me", authHandler.Me)

	jobs := secured.Group("/jobs")
	jobs.GET("", jobHandler.List, auth.RequireRole(model.RoleAdmin, model.RoleUser))
	jobs.POST("", jobHandler.Create, auth.RequireRole(model.RoleAdmin))
	jobs.PUT("/:id", jobHandler.Update, auth.RequireRole(model.RoleAdmin))
	jobs.DELETE("/:id", jobHandler.Delete, auth.RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
