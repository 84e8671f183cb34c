package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	IsVercel     bool
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig returns the serverless configuration detected from the environment
func GetServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		IsVercel:     isRunningOnVercel(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       GetEnv("AWS_REGION", os.Getenv("VERCEL_REGION")),
		Stage:        GetEnv("STAGE", GetEnv("VERCEL_ENV", "dev")),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// isRunningOnVercel detects if the application is running as a Vercel function
func isRunningOnVercel() bool {
	return GetEnvAsBool("VERCEL", false)
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	sc := GetServerlessConfig()
	return sc.IsLambda || sc.IsVercel
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	sc := GetServerlessConfig()
	switch {
	case sc.IsLambda:
		return "lambda"
	case sc.IsVercel:
		return "vercel"
	default:
		return "server"
	}
}

// GetOptimizedConfig returns configuration adjusted for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	// Functions log to a collector that expects one JSON object per line
	if IsServerlessMode() {
		config.Logging.Format = "json"
		if config.Environment == "development" {
			config.Environment = "production"
		}
	}

	return config, nil
}
