package observability

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions. A caller that
// already has an ID, such as a retried event from the page, may send it.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDMiddleware tags every request with an ID, echoes it in the
// response header and stores it on the context for logs and spans.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestIDFor(r)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}

// requestIDFor keeps an incoming ID only when it is a UUID; anything else is
// replaced so logs never carry arbitrary client text.
func requestIDFor(r *http.Request) string {
	if u, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return u.String()
	}
	return uuid.NewString()
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
