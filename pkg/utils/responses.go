package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorListResponse is the body of filter rejections: {"error": ["code"]}.
type ErrorListResponse struct {
	Error []string `json:"error"`
}

// ErrorResponse is the body of single-resource misses: {"error": "code"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

const ErrCodeInternal = "internal__error"

// ResponseJSON writes data as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 404 with the error codes wrapped in a list
func ResponseNotFoundList(w http.ResponseWriter, codes ...string) {
	ResponseJSON(w, http.StatusNotFound, ErrorListResponse{Error: codes})
}

// returns 404 with a bare error code
func ResponseNotFound(w http.ResponseWriter, code string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Error: code})
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate__limited"})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrCodeInternal})
}
