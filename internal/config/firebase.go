package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FirebaseConfig holds the service account values used to sign custom tokens
type FirebaseConfig struct {
	ProjectID   string `env:"FIREBASE_PROJECT_ID" validate:"required"`
	ClientEmail string `env:"FIREBASE_CLIENT_EMAIL" validate:"required"`
	PrivateKey  string `env:"FIREBASE_PRIVATE_KEY" validate:"required"`
}

// MissingConfigError reports which required environment variables are unset
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return "Firebase environment variables are not set: " + strings.Join(e.Keys, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures by environment variable name rather than struct field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate checks that every Firebase value is present.
// It returns a *MissingConfigError naming all missing variables.
func (c FirebaseConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	missing := &MissingConfigError{}
	for _, fe := range validationErrors {
		missing.Keys = append(missing.Keys, fe.Field())
	}
	return missing
}

// IsComplete reports whether all Firebase values are present
func (c FirebaseConfig) IsComplete() bool {
	return c.Validate() == nil
}
