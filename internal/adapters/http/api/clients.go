// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/laneboard/internal/domain/validate"
)

// ClientsHandler serves the board: list, fetch, and move.
type ClientsHandler struct {
	deps Dependencies
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(deps Dependencies) *ClientsHandler {
	return &ClientsHandler{deps: deps}
}

// HandleClients handles GET /clients requests, with an optional
// ?lane=backlog|in-progress|complete filter.
func (h *ClientsHandler) HandleClients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	var rawLane *string
	if v := r.URL.Query().Get("lane"); v != "" {
		rawLane = &v
	}
	lane, err := validate.LaneName(rawLane)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	clients, err := h.deps.List(r.Context(), lane)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// HandleClientByID handles GET and PUT /clients/{id} requests.
func (h *ClientsHandler) HandleClientByID(w http.ResponseWriter, r *http.Request) {
	rawID := strings.TrimPrefix(r.URL.Path, "/clients/")
	if rawID == "" || strings.Contains(rawID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	id, err := validate.ClientID(r.Context(), h.deps, rawID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		client, err := h.deps.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, client)

	case http.MethodPut:
		var req moveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}

		lane, err := validate.LaneName(req.Lane)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		priority, err := validate.Priority(req.Priority)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		board, err := h.deps.Move(r.Context(), id, lane, priority)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, board)

	default:
		http.NotFound(w, r)
	}
}
