package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"catalog-backend/pkg/container"
	"catalog-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is for development; production uses real environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment", nil)
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appContainer, err := container.NewContainer()
	if err != nil {
		logger.Error("Failed to initialize container", err)
		os.Exit(1)
	}
	defer appContainer.Close()

	router := SetupRouter(appContainer)

	srv := &http.Server{
		Addr:              ":" + appContainer.Config.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server listening", map[string]interface{}{
			"port": appContainer.Config.App.Port,
			"env":  env,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", err)
	}

	logger.Info("Server stopped", nil)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
