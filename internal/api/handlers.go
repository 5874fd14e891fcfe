// Package api exposes the HTTP surface of the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
	"example.com/activities/internal/registry"
)

// Handler translates HTTP requests into registry operations. It holds no
// state of its own beyond the injected registry.
type Handler struct {
	registry *registry.Registry
}

// NewHandler builds a Handler around the given registry.
func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{registry: reg}
}

// RegisterRoutes wires endpoints to the mux. Path parameters are
// URL-decoded by the mux, so activity names with spaces and emails with
// "@" round-trip intact.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{name}/participants/{email}", h.removeParticipant)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Snapshot())
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// Missing email is a request-validation failure, not a registry
	// outcome: it never reaches the store.
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	if err := h.registry.Signup(name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordSignup("activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			observability.RecordSignup("already_registered")
			writeError(w, http.StatusBadRequest, "Student already signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordSignup("ok")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	if err := h.registry.Remove(name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRemoval("activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrParticipantNotFound):
			observability.RecordRemoval("participant_not_found")
			writeError(w, http.StatusNotFound, "Participant not found in this activity")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordRemoval("ok")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Removed %s from %s", email, name),
	})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
