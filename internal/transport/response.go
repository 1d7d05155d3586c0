package transport

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// NoticeResponse carries the transient on-screen notice the dashboard shows
// after a mutation. Notice wording varies when the local snapshot was
// skipped (cloud-only save).
type NoticeResponse struct {
	Status string `json:"status"`
	Notice string `json:"notice,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func WriteNotice(w http.ResponseWriter, status int, notice string) {
	WriteJSON(w, status, NoticeResponse{Status: "ok", Notice: notice})
}
