package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestIDHeader carries the per-request id assigned by RequestID.
const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a fresh uuid, exposed on the
// response so callers can correlate log lines with their requests.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			r.Header.Set(requestIDHeader, id)

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs basic information about each HTTP request,
// including method, path, request id and how long it took to serve.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.Printf("%s %s %s id=%s [%s]",
				r.Method, r.URL.Path, r.RemoteAddr, r.Header.Get(requestIDHeader), time.Since(start))
		})
	}
}
