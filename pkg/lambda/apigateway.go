package lambda

import (
	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event to a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:          event.HTTPMethod,
		Path:            event.Path,
		Headers:         event.Headers,
		QueryParams:     event.QueryStringParameters,
		Body:            []byte(event.Body),
		IsBase64Encoded: event.IsBase64Encoded,
		PathParams:      event.PathParameters,
	}
}

// ToAPIGateway converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
