// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ib823/cockpit/internal/domain/catalog"
	"github.com/ib823/cockpit/internal/domain/model"
)

// BatchHandler handles batch estimate requests.
type BatchHandler struct {
	deps Dependencies
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(deps Dependencies) *BatchHandler {
	return &BatchHandler{deps: deps}
}

// HandlePostBatch handles POST /estimate/batch requests. Scenarios with
// non-positive capacity are omitted from the response, not errored.
func (h *BatchHandler) HandlePostBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_estimate_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var reqs []estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(reqs) > h.deps.MaxBatchSize() {
		writeError(w, http.StatusBadRequest, "batch_too_large", NewKind(op, ErrBatchTooLarge))
		return
	}

	inputs := make([]model.EstimatorInputs, len(reqs))
	for i := range reqs {
		if err := reqs[i].resolve(r.Context(), h.deps); err != nil {
			if errors.Is(err, catalog.ErrUnknownItem) || errors.Is(err, catalog.ErrUnknownProfile) {
				writeError(w, http.StatusBadRequest, "unknown_reference", Wrap(op, err))
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		inputs[i] = reqs[i].EstimatorInputs
	}

	results := h.deps.EstimateBatch(r.Context(), inputs)
	writeJSON(w, http.StatusOK, results)
}
