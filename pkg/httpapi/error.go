package httpapi

import (
	"encoding/json"
	"net/http"
)

// Failure is the single error envelope crossing the API boundary. Raw
// errors never reach callers directly.
type Failure struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteFailure(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, &Failure{
		Error: message,
		Code:  code,
	})
}
