package main

import (
	"log"
	"net/http"

	_ "jobportal/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobportal/internal/auth"
	"jobportal/internal/cache"
	"jobportal/internal/config"
	"jobportal/internal/handler"
	"jobportal/internal/repository"
	"jobportal/internal/router"
	"jobportal/internal/service"
	"jobportal/internal/storage"
)

// @title Job Portal API
// @version 1.0
// @description Job-listing portal with file-backed postings and JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	jobsFile := storage.NewJSONFile(cfg.JobsFile)
	if err := jobsFile.Init(); err != nil {
		log.Fatalf("storage init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	jobRepo := repository.NewFileJobRepository(jobsFile)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(jwtService)
	jobService := service.NewJobService(jobRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)

	// Register routes
	router.Register(e, cfg, authHandler, jobHandler)

	log.Printf("jobs file: %s", jobsFile.Path())

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
