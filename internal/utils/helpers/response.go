package helpers

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return
	}
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	Write(w, status, Response{Success: true, Data: data})
}

// Message answers with a success envelope carrying a human readable message
// and optional data.
func Message(w http.ResponseWriter, status int, msg string, data interface{}) {
	Write(w, status, Response{Success: true, Message: msg, Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	Write(w, status, Response{Success: false, Error: errMsg})
}

// ValidationError answers 400 with per-field messages.
func ValidationError(w http.ResponseWriter, errMsg string, fields map[string]string) {
	Write(w, http.StatusBadRequest, Response{Success: false, Error: errMsg, Errors: fields})
}
