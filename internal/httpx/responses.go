package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

// ErrorResponseBody carries either a single message or a list of messages.
type ErrorResponseBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes an error body with a single message.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorResponseBody{Message: message, Status: statusCode},
	})
}

// JSONErrors writes an error body with an ordered list of messages.
func JSONErrors(w http.ResponseWriter, statusCode int, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorResponseBody{Message: messages, Status: statusCode},
	})
}
