// Package httpapi exposes the public HTTP surface: the auth endpoints,
// the per-user finance CRUD, and the authorization middleware that gates
// the protected routes.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/finledger/finledger/internal/server/models"
)

// authResponse is the uniform envelope of the auth endpoints.
type authResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Token   string             `json:"token,omitempty"`
	User    *models.PublicUser `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeFailure writes the {success:false,message} shape. The message must
// already be safe to show to a client; internals are logged, not returned.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, authResponse{Success: false, Message: message})
}
