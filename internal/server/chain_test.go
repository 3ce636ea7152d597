package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rwizi/clickatellhttp/internal/middleware"
)

func TestChain_AppliesMiddlewareInOrder(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Fatalf("unexpected middleware order: %v", order)
	}
}

func TestChain_RequestIDReachesHandler(t *testing.T) {
	var seen string

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
	}), middleware.RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("handler did not see a request id")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header id %q does not match handler id %q", got, seen)
	}
}
