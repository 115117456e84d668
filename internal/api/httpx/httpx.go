// Package httpx holds the JSON response helpers shared by every handler.
package httpx

import (
	"encoding/json"
	"net/http"
)

// APIError is the uniform error body: a stable machine-readable code next to
// a human-readable message. Contract errors (401/403 gate refusals, the login
// failure text) bypass this shape on purpose.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, APIError{Error: msg, Code: code})
}
