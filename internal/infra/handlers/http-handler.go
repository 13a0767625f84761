package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"persona-engine/internal/domain/dto"
	Iservices "persona-engine/internal/domain/interfaces/services"
	"persona-engine/internal/infra/logger"
	"persona-engine/internal/infra/services"

	"github.com/gorilla/mux"
)

type HttpHandlers struct {
	Logger          *logger.Logger
	DialogueService Iservices.IDialogueService
	PersonaService  Iservices.IPersonaService
	SessionService  Iservices.ISessionService
}

func NewHttpHandlers(log *logger.Logger, dialogueService Iservices.IDialogueService, personaService Iservices.IPersonaService, sessionService Iservices.ISessionService) *HttpHandlers {
	return &HttpHandlers{
		Logger:          log,
		DialogueService: dialogueService,
		PersonaService:  personaService,
		SessionService:  sessionService,
	}
}

// Chat handles one live user turn against the remote generation endpoint.
// While a turn is in flight the UI disables new submissions for the
// session, so one request per session is all this ever sees.
func (th *HttpHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	personaID := mux.Vars(r)["id"]

	var request dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if request.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	response, err := th.DialogueService.Chat(r.Context(), personaID, request)
	if err != nil {
		th.respondServiceError(w, err, personaID)
		return
	}

	th.respondJSON(w, http.StatusOK, response)
}

// Simulate handles the offline/demo dialogue mode.
func (th *HttpHandlers) Simulate(w http.ResponseWriter, r *http.Request) {
	personaID := mux.Vars(r)["id"]

	var request dto.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if request.SessionID != "" && request.Message == "" {
		http.Error(w, "Message is required for an open session", http.StatusBadRequest)
		return
	}

	response, err := th.DialogueService.Simulate(r.Context(), personaID, request)
	if err != nil {
		th.respondServiceError(w, err, personaID)
		return
	}

	th.respondJSON(w, http.StatusOK, response)
}

func (th *HttpHandlers) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := th.PersonaService.FindAll()
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to list personas: %v", err))
		http.Error(w, "Failed to list personas", http.StatusInternalServerError)
		return
	}
	th.respondJSON(w, http.StatusOK, personas)
}

// ExportSession hands the session snapshot to the download collaborator.
func (th *HttpHandlers) ExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	snapshot, err := th.DialogueService.Export(r.Context(), sessionID)
	if err != nil {
		th.respondServiceError(w, err, sessionID)
		return
	}

	th.respondJSON(w, http.StatusOK, snapshot)
}

// CloseSession marks a session closed; any in-flight reply for it will be
// discarded by the bookkeeper.
func (th *HttpHandlers) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := th.SessionService.Close(sessionID); err != nil {
		th.respondServiceError(w, err, sessionID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (th *HttpHandlers) respondServiceError(w http.ResponseWriter, err error, subject string) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, services.ErrSessionClosed):
		http.Error(w, "Session is closed", http.StatusConflict)
	default:
		th.Logger.Error(fmt.Sprintf("Request for %q failed: %v", subject, err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

func (th *HttpHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to encode response: %v", err))
	}
}
