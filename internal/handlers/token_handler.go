package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"pi-auth-api/internal/logging"
	"pi-auth-api/internal/services"
	"pi-auth-api/pkg/lambda"
)

// TokenHandler exchanges a caller-supplied uid for a Firebase custom token
type TokenHandler struct {
	provider services.TokenServiceProvider
}

// NewTokenHandler creates a new token exchange handler
func NewTokenHandler(provider services.TokenServiceProvider) *TokenHandler {
	return &TokenHandler{
		provider: provider,
	}
}

// Exchange runs the token exchange for one request and returns the status code
// and JSON payload to send. It never returns an error: every failure is mapped
// to an ErrorResponse.
func (h *TokenHandler) Exchange(ctx context.Context, method string, body io.Reader) (int, interface{}) {
	if method != http.MethodPost {
		return http.StatusMethodNotAllowed, errorBody(msgMethodNotAllowed)
	}

	tokenService, err := h.provider.TokenService(ctx)
	if err != nil {
		return http.StatusInternalServerError, errorBody(err.Error())
	}

	var raw []byte
	if body != nil {
		raw, err = io.ReadAll(body)
		if err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to read request body")
			return http.StatusBadRequest, errorBody(msgUnreadableBody)
		}
	}

	uid, status, message := extractUID(raw)
	if message != "" {
		return status, errorBody(message)
	}

	token, err := tokenService.CreateCustomToken(ctx, uid)
	if err != nil {
		return http.StatusInternalServerError, errorBody(err.Error())
	}

	logrus.WithField("uid", logging.RedactUID(uid)).Info("Custom token issued")

	return http.StatusOK, services.CustomTokenResponse{Token: token}
}

// extractUID pulls the uid out of a raw JSON body.
// An empty body counts as a request without a uid, not as malformed JSON.
// A repeated "uid" key resolves to its last value.
func extractUID(body []byte) (string, int, string) {
	if len(body) == 0 {
		return "", http.StatusBadRequest, msgUIDRequired
	}
	if !gjson.ValidBytes(body) {
		return "", http.StatusBadRequest, msgInvalidJSON
	}

	var result gjson.Result
	if doc := gjson.ParseBytes(body); doc.IsObject() {
		doc.ForEach(func(key, value gjson.Result) bool {
			if key.String() == "uid" {
				result = value
			}
			return true
		})
	}

	if !truthy(result) {
		return "", http.StatusBadRequest, msgUIDRequired
	}
	// The signer rejects anything but a string the same way it rejects bad strings
	if result.Type != gjson.String {
		return "", http.StatusInternalServerError, msgUIDInvalid
	}
	return result.Str, 0, ""
}

// truthy treats null, false, 0, "" and absent values as missing
func truthy(result gjson.Result) bool {
	if !result.Exists() {
		return false
	}
	switch result.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return result.Num != 0
	case gjson.String:
		return result.Str != ""
	default:
		return true
	}
}

// @Summary Exchange a uid for a Firebase custom token
// @Description Signs a Firebase custom token for the supplied uid. The client SDK redeems it with signInWithCustomToken.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.CustomTokenRequest true "Identifier to mint a token for"
// @Success 200 {object} services.CustomTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pi-auth [post]
func (h *TokenHandler) ExchangeToken(c *gin.Context) {
	status, payload := h.Exchange(c.Request.Context(), c.Request.Method, c.Request.Body)
	c.JSON(status, payload)
}

// HandleExchange is the Lambda entry for the token exchange
func (h *TokenHandler) HandleExchange(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, payload := h.Exchange(ctx, req.Method, req.BodyReader())

	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}
