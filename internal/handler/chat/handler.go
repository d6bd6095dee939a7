// Package chat exposes the conversational endpoints over HTTP.
package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/careline/medichat/internal/service/dialog"
	"github.com/careline/medichat/pkg/utils"
)

// Handler routes turn and reset requests into the dialog engine.
type Handler struct {
	engine *dialog.Engine
}

// New creates the chat handler.
func New(engine *dialog.Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes registers the conversational endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/reset", h.handleReset)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		Age       int    `json:"age"`
		Gender    string `json:"gender"`
		Location  string `json:"location"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.engine.Respond(r.Context(), dialog.Request{
		Message:   payload.Message,
		Age:       payload.Age,
		Gender:    payload.Gender,
		Location:  payload.Location,
		SessionID: payload.SessionID,
	})
	if err != nil {
		if errors.Is(err, dialog.ErrEmptyMessage) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Collaborator faults surface with the underlying error text.
		log.Printf("[chat] turn failed for session=%q: %v", payload.SessionID, err)
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply := h.engine.Reset(payload.SessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": reply})
}
