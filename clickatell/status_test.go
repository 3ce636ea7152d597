package clickatell

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_WellFormedResponse(t *testing.T) {
	f := newFakeFetcher()
	f.respond("querymsg", "ID: 1 Status: 008")
	c := newTestClient(t, f)

	code, err := c.Status(context.Background(), "1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if code != "008" {
		t.Fatalf("unexpected status code: %q", code)
	}

	q := queryOf(t, f.callsTo("querymsg")[0])
	if q.Get("apimsgid") != "1" || q.Get("session_id") != c.SessionID() {
		t.Fatalf("querymsg URL missing parameters: %+v", q)
	}
}

func TestStatus_GatewayError(t *testing.T) {
	f := newFakeFetcher()
	f.respond("querymsg", "ERR: 103, Unknown API Message ID")
	c := newTestClient(t, f)

	_, err := c.Status(context.Background(), "nope")

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if gwErr.Code != "103" || gwErr.Description != "Unknown API Message ID" {
		t.Fatalf("unexpected gateway error: %+v", gwErr)
	}
}

func TestStatus_EmptyResponse(t *testing.T) {
	f := newFakeFetcher()
	f.respond("querymsg", "")
	c := newTestClient(t, f)

	_, err := c.Status(context.Background(), "1")
	if !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}

func TestStatus_MalformedResponse(t *testing.T) {
	f := newFakeFetcher()
	f.respond("querymsg", "<html>so long</html>")
	c := newTestClient(t, f)

	_, err := c.Status(context.Background(), "1")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestPing_KeepsSessionAlive(t *testing.T) {
	f := newFakeFetcher()
	f.respond("ping", "OK: ")
	c := newTestClient(t, f)

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestPing_ExpiredSession(t *testing.T) {
	f := newFakeFetcher()
	f.respond("ping", "ERR: 003, Session ID Expired")
	c := newTestClient(t, f)

	err := c.Ping(context.Background())

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if gwErr.Code != "003" {
		t.Fatalf("unexpected code: %q", gwErr.Code)
	}
}

func TestBalance_ParsesCredit(t *testing.T) {
	f := newFakeFetcher()
	f.respond("getbalance", "Credit: 100.5")
	c := newTestClient(t, f)

	credit, err := c.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if credit != 100.5 {
		t.Fatalf("unexpected credit: %v", credit)
	}
}

func TestBalance_GatewayError(t *testing.T) {
	f := newFakeFetcher()
	f.respond("getbalance", "ERR: 301, No Credit Left")
	c := newTestClient(t, f)

	_, err := c.Balance(context.Background())

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if gwErr.Code != "301" {
		t.Fatalf("unexpected code: %q", gwErr.Code)
	}
}
