package lambda

import (
	"bytes"
	"encoding/base64"
	"io"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method          string            `json:"method"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	QueryParams     map[string]string `json:"query_params"`
	Body            []byte            `json:"body"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
	PathParams      map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// BodyReader returns the raw request body, decoding base64 payloads on read
func (r *Request) BodyReader() io.Reader {
	if r.IsBase64Encoded {
		return base64.NewDecoder(base64.StdEncoding, bytes.NewReader(r.Body))
	}
	return bytes.NewReader(r.Body)
}
