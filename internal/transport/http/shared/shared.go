// Package shared holds response helpers used by every HTTP handler so error
// envelopes and JSON encoding stay consistent across the API.
package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "regate/pkg/domain-errors"
)

// WriteJSON encodes v with the standard content type. Encoding failures after
// the status line are logged, not surfaced; the response is already committed.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "response encode failed", "error", err.Error())
	}
}

// WriteError translates a domain error into the JSON error envelope. Uncoded
// errors map to 500 without leaking their message.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := dErrors.CodeInternal

	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status = dErrors.ToHTTPStatus(domainErr.Code)
		code = domainErr.Code
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "code", string(code), "error", err.Error())
	}
	WriteJSON(ctx, w, status, map[string]string{"error": string(code)})
}
