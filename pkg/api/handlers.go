package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"

	"comespath/pkg/csr"
	"comespath/pkg/sssp"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	solver *sssp.Solver
	g      *csr.Graph
}

// NewHandlers creates handlers serving queries against g through solver.
// SetGraph(g) must already have been called on solver.
func NewHandlers(solver *sssp.Solver, g *csr.Graph) *Handlers {
	return &Handlers{solver: solver, g: g}
}

// HandleShortestPath handles POST /v1/shortest-path. With no target it
// returns the full distance vector; with a target it early-terminates and
// returns a single distance.
func (h *Handlers) HandleShortestPath(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req ShortestPathRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	if req.Target != nil {
		dist, err := h.solver.ShortestPathTo(r.Context(), req.Source, *req.Target)
		if !h.writeSolveError(w, err) {
			return
		}
		writeJSON(w, http.StatusOK, ShortestPathResponse{
			Distance:       Distance(dist),
			SparseFallback: h.solver.IsSparseFallback(),
		})
		return
	}

	vec, err := h.solver.ShortestPath(r.Context(), req.Source)
	if !h.writeSolveError(w, err) {
		return
	}
	distVec := make([]Distance, len(vec))
	for i, d := range vec {
		distVec[i] = Distance(d)
	}
	writeJSON(w, http.StatusOK, ShortestPathResponse{
		Vector:         distVec,
		SparseFallback: h.solver.IsSparseFallback(),
	})
}

// writeSolveError maps a solve error to an HTTP response and reports
// whether the caller should continue (err == nil).
func (h *Handlers) writeSolveError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, sssp.ErrInvalidSource):
		writeError(w, http.StatusBadRequest, "invalid_source", "source")
	case errors.Is(err, sssp.ErrInvalidTarget):
		writeError(w, http.StatusBadRequest, "invalid_target", "target")
	case errors.Is(err, sssp.ErrNoGraph):
		writeError(w, http.StatusServiceUnavailable, "no_graph_installed", "")
	case errors.Is(err, sssp.ErrBucketOverflow):
		writeError(w, http.StatusUnprocessableEntity, "bucket_overflow", "")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
	return false
}

// HandleHealth handles GET /v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if h.g != nil {
		resp.NumNodes = h.g.NumNodes
		resp.NumEdges = h.g.NumEdges()
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes status and the JSON encoding of v. An encode failure at
// this point can't change the already-written status line, so it's logged
// rather than surfaced to the client.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	writeJSON(w, status, ErrorResponse{Error: code, Field: field})
}
