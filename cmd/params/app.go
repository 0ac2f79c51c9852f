package main

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/config"
	"github.com/deppfellow/request-params/internal/handler"
	"github.com/deppfellow/request-params/internal/logger"
	"github.com/deppfellow/request-params/internal/repository"
	"github.com/deppfellow/request-params/internal/router"
	"github.com/deppfellow/request-params/internal/server"
	"github.com/deppfellow/request-params/internal/service"
)

// buildApp wires config, logging, the catalog and the router into a Server
// ready for SetupHTTPServer.
func buildApp(cfg *config.Config) (*server.Server, *echo.Echo, error) {
	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		loggerService.Shutdown()
		return nil, nil, fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)

	return srv, router.NewRouter(srv, handlers), nil
}
