package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/").Handler(this.getRoot())
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/api/hands").Handler(this.getHands())
	r.Methods(http.MethodGet).Path("/api/hands/{id}").Handler(this.getHandsID())
	r.Methods(http.MethodPost).Path("/api/hands").Handler(this.postHands())

	return this
}

type rootResponse struct {
	Message string `json:"message"`
}

func (m *Mux) getRoot() http.HandlerFunc {
	payload := rootResponse{
		Message: "Poker Game API",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
