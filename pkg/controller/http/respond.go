package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses. Upstream outages surface as
// 502 so callers know to retry; the report core never substitutes fabricated
// numbers for a failed fetch.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrClientNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	}

	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}

	if status >= http.StatusInternalServerError {
		apperr.Handle(ctx, err)
	}

	writeJSON(ctx, w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
