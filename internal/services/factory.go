package services

import (
	"context"
	"fmt"

	"pi-auth-api/internal/config"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	TokenService TokenService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Firebase config.FirebaseConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(ctx context.Context, cfg *ServiceConfig) (*ServiceContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("service configuration cannot be nil")
	}

	tokenService, err := NewFirebaseTokenService(ctx, cfg.Firebase)
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		TokenService: tokenService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.TokenService == nil {
		return fmt.Errorf("token service is nil")
	}
	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	// The Firebase app holds no connections that need closing
	return nil
}
