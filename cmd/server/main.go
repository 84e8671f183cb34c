package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "pi-auth-api/docs"
	"pi-auth-api/internal/config"
	"pi-auth-api/internal/handlers"
	"pi-auth-api/internal/logging"
	"pi-auth-api/pkg/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Logging)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize dependencies
	container := server.NewContainer(context.Background(), cfg)
	defer container.Close()

	router := handlers.NewRouter(&handlers.RouterConfig{
		Container:     container,
		EnableSwagger: cfg.Environment != "production",
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	deployment := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
		"region":      deployment.Region,
		"stage":       deployment.Stage,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
