// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ib823/cockpit/internal/domain/catalog"
	"github.com/ib823/cockpit/internal/domain/estimator"
)

// EstimateHandler handles single-scenario estimate requests.
type EstimateHandler struct {
	deps Dependencies
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(deps Dependencies) *EstimateHandler {
	return &EstimateHandler{deps: deps}
}

// HandlePostEstimate handles POST /estimate requests.
func (h *EstimateHandler) HandlePostEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_estimate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.resolve(r.Context(), h.deps); err != nil {
		if errors.Is(err, catalog.ErrUnknownItem) || errors.Is(err, catalog.ErrUnknownProfile) {
			writeError(w, http.StatusBadRequest, "unknown_reference", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	res, err := h.deps.Estimate(r.Context(), &req.EstimatorInputs)
	if err != nil {
		if errors.Is(err, estimator.ErrNonPositiveCapacity) {
			writeError(w, http.StatusUnprocessableEntity, "capacity", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, res)
}
