// Package handler is the Vercel Go function for the token exchange.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"pi-auth-api/internal/config"
	"pi-auth-api/internal/handlers"
	"pi-auth-api/internal/logging"
	"pi-auth-api/pkg/server"
)

var (
	engine    http.Handler
	setupOnce sync.Once
)

// setup runs on cold start only
func setup() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		cfg = &config.Config{Environment: "production"}
	}
	logging.Setup(cfg.Logging)

	container := server.NewContainer(context.Background(), cfg)
	engine = handlers.NewRouter(&handlers.RouterConfig{Container: container})
}

// Handler is the entry point invoked by Vercel.
// The function owns a single route, so any path it receives is the token exchange.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)
	r.URL.Path = handlers.TokenExchangePath
	engine.ServeHTTP(w, r)
}
