// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ib823/cockpit/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Estimate computes one scenario or fails with a capacity error.
	Estimate(ctx context.Context, in *model.EstimatorInputs) (*model.EstimatorResults, error)

	// EstimateBatch evaluates scenarios independently, omitting the ones
	// with non-positive capacity while preserving input order.
	EstimateBatch(ctx context.Context, inputs []model.EstimatorInputs) []model.EstimatorResults

	// Catalog resolution for requests that reference scope items and
	// profiles by code instead of inlining them.
	ResolveScope(ctx context.Context, codes []string) ([]model.ScopeItem, error)
	ResolveProfile(ctx context.Context, name string) (model.Profile, error)

	// MaxBatchSize caps POST /estimate/batch.
	MaxBatchSize() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	estimateHandler *EstimateHandler
	batchHandler    *BatchHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		estimateHandler: NewEstimateHandler(deps),
		batchHandler:    NewBatchHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/estimate", MetricsMiddleware(s.estimateHandler.HandlePostEstimate, "estimate"))
	mux.HandleFunc("/estimate/batch", MetricsMiddleware(s.batchHandler.HandlePostBatch, "estimate_batch"))
}

// estimateRequest mirrors the wire schema for POST /estimate. Scope items and
// the profile may be inlined or referenced by catalog code; inline values win.
type estimateRequest struct {
	model.EstimatorInputs
	SelectedL3Codes []string `json:"selected_l3_codes,omitempty"`
	ProfileName     string   `json:"profile_name,omitempty"`
}

// resolve expands catalog references into the embedded inputs.
func (r *estimateRequest) resolve(ctx context.Context, deps Dependencies) error {
	if len(r.SelectedL3Codes) > 0 {
		items, err := deps.ResolveScope(ctx, r.SelectedL3Codes)
		if err != nil {
			return err
		}
		r.SelectedL3Items = append(r.SelectedL3Items, items...)
	}
	if r.ProfileName != "" && r.Profile == (model.Profile{}) {
		p, err := deps.ResolveProfile(ctx, r.ProfileName)
		if err != nil {
			return err
		}
		r.Profile = p
	}
	return nil
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
