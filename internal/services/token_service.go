package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"pi-auth-api/internal/config"
	"pi-auth-api/internal/logging"
)

const googleTokenURI = "https://oauth2.googleapis.com/token"

// ErrInvalidCredentials is returned when the service account values are present but unusable
var ErrInvalidCredentials = errors.New("failed to initialize firebase auth client: check FIREBASE_CLIENT_EMAIL and FIREBASE_PRIVATE_KEY")

// customTokenMinter is the single Firebase Auth operation this service needs
type customTokenMinter interface {
	CustomToken(ctx context.Context, uid string) (string, error)
}

// FirebaseTokenService mints Firebase custom tokens with a service account
type FirebaseTokenService struct {
	client    customTokenMinter
	projectID string
}

// serviceAccountKey mirrors the JSON key file downloaded from the Firebase console
type serviceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// NewFirebaseTokenService builds a Firebase app from the service account values.
// Missing values yield a *config.MissingConfigError and no app is created.
func NewFirebaseTokenService(ctx context.Context, cfg config.FirebaseConfig) (*FirebaseTokenService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	credentials, err := json.Marshal(serviceAccountKey{
		Type:        "service_account",
		ProjectID:   cfg.ProjectID,
		ClientEmail: cfg.ClientEmail,
		PrivateKey:  cfg.PrivateKey,
		TokenURI:    googleTokenURI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode service account credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	// The SDK echoes the key material in parse errors, so its message is not kept
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	logrus.WithFields(logrus.Fields{
		"project_id":   cfg.ProjectID,
		"client_email": cfg.ClientEmail,
	}).Info("Firebase auth client initialized")

	return newFirebaseTokenService(client, cfg.ProjectID), nil
}

func newFirebaseTokenService(client customTokenMinter, projectID string) *FirebaseTokenService {
	return &FirebaseTokenService{client: client, projectID: projectID}
}

// Compile-time check
var _ TokenService = (*FirebaseTokenService)(nil)

// CreateCustomToken signs a custom token for uid.
// SDK errors are returned as-is so their message reaches the caller unchanged.
func (s *FirebaseTokenService) CreateCustomToken(ctx context.Context, uid string) (string, error) {
	token, err := s.client.CustomToken(ctx, uid)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": s.projectID,
			"uid":        logging.RedactUID(uid),
			"error":      err.Error(),
		}).Error("Failed to create custom token")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"project_id": s.projectID,
		"uid":        logging.RedactUID(uid),
	}).Debug("Custom token created")

	return token, nil
}

// Compile-time check that the SDK client satisfies customTokenMinter
var _ customTokenMinter = (*auth.Client)(nil)
