package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pi-auth-api/internal/config"
)

const customTokenAudience = "https://identitytoolkit.googleapis.com/google.identity.identitytoolkit.v1.IdentityToolkit"

func testFirebaseConfig(t *testing.T) (config.FirebaseConfig, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	return config.FirebaseConfig{
		ProjectID:   "pi-demo",
		ClientEmail: "firebase-adminsdk@pi-demo.iam.gserviceaccount.com",
		PrivateKey:  string(pemKey),
	}, key
}

func TestFirebaseTokenService_CreateCustomToken(t *testing.T) {
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "")
	cfg, key := testFirebaseConfig(t)

	svc, err := NewFirebaseTokenService(context.Background(), cfg)
	require.NoError(t, err)

	token, err := svc.CreateCustomToken(context.Background(), "abc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithAudience(customTokenAudience))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "abc123", claims["uid"])
	assert.Equal(t, cfg.ClientEmail, claims["iss"])
	assert.Equal(t, cfg.ClientEmail, claims["sub"])
}

func TestFirebaseTokenService_RepeatedRequests(t *testing.T) {
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "")
	cfg, _ := testFirebaseConfig(t)

	svc, err := NewFirebaseTokenService(context.Background(), cfg)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		token, err := svc.CreateCustomToken(context.Background(), "abc123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	}
}

func TestFirebaseTokenService_SDKRejectsUID(t *testing.T) {
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "")
	cfg, _ := testFirebaseConfig(t)

	svc, err := NewFirebaseTokenService(context.Background(), cfg)
	require.NoError(t, err)

	// Firebase limits uids to 128 characters
	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}

	_, err = svc.CreateCustomToken(context.Background(), string(long))
	assert.Error(t, err)
}

func TestNewFirebaseTokenService_MissingConfig(t *testing.T) {
	svc, err := NewFirebaseTokenService(context.Background(), config.FirebaseConfig{ProjectID: "pi-demo"})
	assert.Nil(t, svc)

	var missing *config.MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{config.EnvFirebaseClientEmail, config.EnvFirebasePrivateKey}, missing.Keys)
}

func TestNewFirebaseTokenService_InvalidPrivateKey(t *testing.T) {
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "")
	cfg, _ := testFirebaseConfig(t)
	cfg.PrivateKey = "not a pem key"

	svc, err := NewFirebaseTokenService(context.Background(), cfg)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotContains(t, err.Error(), cfg.PrivateKey)
}

type stubMinter struct {
	token string
	err   error
	calls []string
}

func (m *stubMinter) CustomToken(_ context.Context, uid string) (string, error) {
	m.calls = append(m.calls, uid)
	return m.token, m.err
}

func TestFirebaseTokenService_PassesErrorThrough(t *testing.T) {
	sdkErr := errors.New("failed to sign token: permission denied")
	minter := &stubMinter{err: sdkErr}
	svc := newFirebaseTokenService(minter, "pi-demo")

	token, err := svc.CreateCustomToken(context.Background(), "abc123")
	assert.Empty(t, token)
	assert.Same(t, sdkErr, err)
	assert.Equal(t, []string{"abc123"}, minter.calls)
}

func TestNewServiceContainer(t *testing.T) {
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "")
	cfg, _ := testFirebaseConfig(t)

	sc, err := NewServiceContainer(context.Background(), &ServiceConfig{Firebase: cfg})
	require.NoError(t, err)
	assert.NoError(t, sc.Validate())
	assert.NoError(t, sc.Close())

	_, err = NewServiceContainer(context.Background(), nil)
	assert.Error(t, err)
}
