// Command api runs the LightBnB HTTP API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/handler"
	loggerPkg "github.com/lightbnb/lightbnb/internal/logger"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/router"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger exists yet at this point.
		panic("failed to load config: " + err.Error())
	}

	loggerService, err := loggerPkg.NewLoggerService(cfg)
	if err != nil {
		panic("failed to initialize logger service: " + err.Error())
	}

	logger := loggerPkg.New(cfg, loggerService)

	if err := database.Migrate(context.Background(), logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, logger, loggerService)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown gracefully")
	}

	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}

	logger.Info().Msg("server stopped")
}
