package api

import (
	"encoding/json"
	"net/http"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
)

// ChatResponse is the success body of the chat endpoint
type ChatResponse struct {
	Response   string `json:"response"`
	TokensUsed int    `json:"tokensUsed"`
}

// ErrorResponse represents an error API response. RetryAfter is only
// set on rate-limit rejections; Details only outside production mode.
type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter string `json:"retryAfter,omitempty"`
	Details    string `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// DomainErrorToHTTP maps domain errors to HTTP status codes
func DomainErrorToHTTP(err error) int {
	if err == nil {
		return http.StatusOK
	}

	domainErr, ok := err.(*domain.DomainError)
	if !ok {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domain.ErrCodeUpstreamQuota:
		return http.StatusServiceUnavailable
	case domain.ErrCodeUpstreamConfig, domain.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
