package testutil

import (
	"context"
	"net/http"
	"time"

	"regate/pkg/requestcontext"
)

// FrozenTime is a stable instant for tests that assert derived timestamps.
var FrozenTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// ContextAt returns a context whose request-scoped clock reads t.
func ContextAt(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

// WithRequestTime pins the request-scoped clock of an HTTP request, mirroring
// what the requesttime middleware does in production.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}

// WithHost sets the Host header used for organization resolution.
func WithHost(req *http.Request, host string) *http.Request {
	req.Host = host
	return req
}
