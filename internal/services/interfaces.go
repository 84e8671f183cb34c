package services

import (
	"context"
)

// TokenService issues signed custom tokens for caller-supplied identifiers
type TokenService interface {
	// CreateCustomToken returns a signed token the client SDK can redeem for a session as uid
	CreateCustomToken(ctx context.Context, uid string) (string, error)
}

// TokenServiceProvider hands out the process-wide token service, or the reason it is unavailable
type TokenServiceProvider interface {
	TokenService(ctx context.Context) (TokenService, error)
}

// CustomTokenRequest is the body accepted by the token exchange endpoint
type CustomTokenRequest struct {
	UID string `json:"uid" example:"pi-user-8c1f"`
}

// CustomTokenResponse is returned when a token was issued
type CustomTokenResponse struct {
	Token string `json:"token"`
}
