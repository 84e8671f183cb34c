package main

import (
	"context"

	"pi-auth-api/internal/config"
	"pi-auth-api/internal/handlers"
	"pi-auth-api/internal/logging"
	"pi-auth-api/pkg/lambda"
	"pi-auth-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var tokenHandler *handlers.TokenHandler

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logging.Setup(cfg.Logging)

	// Missing credentials are reported per request, not at cold start
	container := server.NewContainer(context.Background(), cfg)
	tokenHandler = handlers.NewTokenHandler(container)

	deployment := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function": deployment.FunctionName,
		"region":   deployment.Region,
		"stage":    deployment.Stage,
	}).Info("Lambda initialized")
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := tokenHandler.HandleExchange(ctx, lambda.FromAPIGateway(event))
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
