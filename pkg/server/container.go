package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"pi-auth-api/internal/config"
	"pi-auth-api/internal/services"
)

// Container holds all application dependencies.
// It is built once per process and is read-only afterwards.
type Container struct {
	Config *config.Config

	// Internal dependencies
	services *services.ServiceContainer
	initErr  error
}

// NewContainer creates the dependency injection container.
// A token service that cannot be built does not fail construction: the error is
// kept and returned to every request that needs the service.
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	container := &Container{Config: cfg}

	if cfg == nil {
		container.initErr = fmt.Errorf("configuration cannot be nil")
		return container
	}

	serviceContainer, err := services.NewServiceContainer(ctx, &services.ServiceConfig{
		Firebase: cfg.Firebase,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"environment": cfg.Environment,
			"error":       err.Error(),
		}).Error("Token service unavailable")
		container.initErr = err
		return container
	}

	container.services = serviceContainer
	return container
}

// NewContainerWithTokenService wraps an existing token service, mainly for tests
// and alternative deployments that build the client themselves.
func NewContainerWithTokenService(cfg *config.Config, tokenService services.TokenService) *Container {
	return &Container{
		Config:   cfg,
		services: &services.ServiceContainer{TokenService: tokenService},
	}
}

// TokenService returns the token service or the reason it could not be built
func (c *Container) TokenService(_ context.Context) (services.TokenService, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}
	if c.services == nil || c.services.TokenService == nil {
		return nil, fmt.Errorf("token service is not initialized")
	}
	return c.services.TokenService, nil
}

// Ready reports whether the token service is available
func (c *Container) Ready() error {
	_, err := c.TokenService(context.Background())
	return err
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}

var _ services.TokenServiceProvider = (*Container)(nil)
