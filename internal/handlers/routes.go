package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pi-auth-api/internal/middleware"
	"pi-auth-api/pkg/server"
)

// maxBodyBytes bounds token exchange bodies; a uid payload is tiny
const maxBodyBytes = 64 << 10

// TokenExchangePath is where the token exchange is served
const TokenExchangePath = "/api/pi-auth"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Container     *server.Container
	EnableSwagger bool
}

// NewRouter builds a gin engine with the standard middleware stack and all routes
func NewRouter(config *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestSizeLimit(maxBodyBytes))

	SetupRoutes(router, config)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	tokenHandler := NewTokenHandler(config.Container)

	if config.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := config.Container.Ready(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"service":   "pi-auth-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// Every method reaches the handler so non-POST requests get a JSON 405
	router.Any(TokenExchangePath, tokenHandler.ExchangeToken)
}
