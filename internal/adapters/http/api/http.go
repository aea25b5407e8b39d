// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/laneboard/internal/adapters/repository"
	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/internal/domain/rerank"
	"github.com/okian/laneboard/internal/domain/validate"
	"github.com/okian/laneboard/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	validate.Lookup

	// List returns the board, optionally filtered to one lane.
	List(ctx context.Context, lane *model.Lane) ([]model.Client, error)

	// Get returns one client by id.
	Get(ctx context.Context, id int) (model.Client, error)

	// Move re-ranks and persists one client's lane/priority change,
	// returning the full updated board.
	Move(ctx context.Context, id int, lane *model.Lane, priority *int) ([]model.Client, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	clientsHandler *ClientsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		clientsHandler: NewClientsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/clients", RequestIDMiddleware(MetricsMiddleware(s.clientsHandler.HandleClients, "clients")))
	mux.HandleFunc("/clients/", RequestIDMiddleware(MetricsMiddleware(s.clientsHandler.HandleClientByID, "client")))
}

// moveRequest mirrors the PUT /clients/{id} body. Priority is decoded as
// a json.Number so the validator can reject fractions with a specific
// error instead of an opaque decode failure.
type moveRequest struct {
	Lane     *string      `json:"lane"`
	Priority *json.Number `json:"priority"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps validation and store errors onto the wire
// contract: a short machine code plus the wrapped human-readable detail.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrIDNotFound):
		metrics.RecordValidationFailure("invalid_id")
		writeError(w, http.StatusNotFound, "invalid_id", err)
	case errors.Is(err, validate.ErrInvalidID):
		metrics.RecordValidationFailure("invalid_id")
		writeError(w, http.StatusBadRequest, "invalid_id", err)
	case errors.Is(err, validate.ErrInvalidLane):
		metrics.RecordValidationFailure("invalid_lane")
		writeError(w, http.StatusBadRequest, "invalid_lane", err)
	case errors.Is(err, validate.ErrInvalidPriority):
		metrics.RecordValidationFailure("invalid_priority")
		writeError(w, http.StatusBadRequest, "invalid_priority", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "invalid_id", err)
	case errors.Is(err, repository.ErrStore):
		writeError(w, http.StatusInternalServerError, "store_error", err)
	case errors.Is(err, rerank.ErrUnknownClient):
		// Pre-validated input failed inside the engine: invariant
		// failure, not a client mistake.
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
