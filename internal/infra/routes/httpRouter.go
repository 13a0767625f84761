package routes

import (
	"encoding/json"
	"net/http"

	"persona-engine/internal/infra/handlers"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux         *mux.Router
	HttpHandler *handlers.HttpHandlers
}

func NewRoutes(mux *mux.Router, httpHandler *handlers.HttpHandlers) *Routes {
	return &Routes{Mux: mux, HttpHandler: httpHandler}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/personas", r.HttpHandler.ListPersonas).Methods(http.MethodGet)
	r.Mux.HandleFunc("/personas/{id}/chat", r.HttpHandler.Chat).Methods(http.MethodPost)
	r.Mux.HandleFunc("/personas/{id}/simulate", r.HttpHandler.Simulate).Methods(http.MethodPost)
	r.Mux.HandleFunc("/sessions/{id}/export", r.HttpHandler.ExportSession).Methods(http.MethodGet)
	r.Mux.HandleFunc("/sessions/{id}", r.HttpHandler.CloseSession).Methods(http.MethodDelete)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
