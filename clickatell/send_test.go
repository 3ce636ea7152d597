package clickatell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSend_EmptyMessage(t *testing.T) {
	c := newTestClient(t, newFakeFetcher())

	_, err := c.Send(context.Background(), "", []string{"27821234567"})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSend_NoRecipients(t *testing.T) {
	c := newTestClient(t, newFakeFetcher())

	_, err := c.Send(context.Background(), "hello", nil)
	if !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("expected ErrNoRecipients, got %v", err)
	}
}

func TestSend_SingleRecipientSuccess(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "ID:1234 To:2637")
	c := newTestClient(t, f)

	result, err := c.Send(context.Background(), "hello", []string{"27821234567"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(result.Successes) != 1 || len(result.Failures) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	got := result.Successes[0]
	if got.APIMessageID != "1234" {
		t.Fatalf("unexpected message id: %q", got.APIMessageID)
	}
	// Single-line responses are always associated with the first
	// recipient as passed in, not the echoed token.
	if got.Recipient != "27821234567" {
		t.Fatalf("unexpected recipient: %q", got.Recipient)
	}
}

func TestSend_SingleRecipientRejected(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "ERR:105, Invalid Destination Address")
	c := newTestClient(t, f)

	result, err := c.Send(context.Background(), "hello", []string{"bogus"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(result.Successes) != 0 || len(result.Failures) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	got := result.Failures[0]
	if got.Code != "105" || got.Recipient != "bogus" {
		t.Fatalf("unexpected failure: %+v", got)
	}
	if got.Description != "Invalid Destination Address" {
		t.Fatalf("unexpected description: %q", got.Description)
	}
}

func TestSend_MultiLineMixedResult(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg",
		"ID: 2f61 To: 27821111111\nERR: 105, Invalid Destination Address, To: 27822222222")
	c := newTestClient(t, f)

	result, err := c.Send(context.Background(), "hello",
		[]string{"27821111111", "27822222222"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(result.Successes) != 1 || len(result.Failures) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Multi-line responses associate by the recipient echoed in each line.
	success := result.Successes[0]
	if success.APIMessageID != "2f61" || success.Recipient != "27821111111" {
		t.Fatalf("unexpected success: %+v", success)
	}

	failure := result.Failures[0]
	if failure.Code != "105" || failure.Recipient != "27822222222" {
		t.Fatalf("unexpected failure: %+v", failure)
	}
}

func TestSend_ChunksRecipients(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "ID: af3c To: 27821111111")
	c := newTestClient(t, f)

	recipients := make([]string, 250)
	for i := range recipients {
		recipients[i] = fmt.Sprintf("2782%07d", i)
	}

	result, err := c.Send(context.Background(), "hello", recipients)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// ceil(250/100) = 3 batches.
	calls := f.callsTo("sendmsg")
	if len(calls) != 3 {
		t.Fatalf("expected 3 sendmsg requests, got %d", len(calls))
	}

	var total int
	for i, u := range calls {
		q := queryOf(t, u)
		if q.Get("session_id") != c.SessionID() {
			t.Fatalf("batch %d missing session id: %q", i, u)
		}
		batch := strings.Split(q.Get("to"), ",")
		if len(batch) > MaxRecipients {
			t.Fatalf("batch %d exceeds limit: %d recipients", i, len(batch))
		}
		total += len(batch)
	}
	if total != len(recipients) {
		t.Fatalf("expected %d recipients across batches, got %d", len(recipients), total)
	}

	// First and last recipients must keep their order.
	first := queryOf(t, calls[0]).Get("to")
	if !strings.HasPrefix(first, recipients[0]) {
		t.Fatalf("first batch does not start with first recipient: %q", first)
	}
	last := queryOf(t, calls[2]).Get("to")
	if !strings.HasSuffix(last, recipients[249]) {
		t.Fatalf("last batch does not end with last recipient: %q", last)
	}

	// One sticky response line per batch accumulates into 3 lines.
	if len(result.Successes) != 3 {
		t.Fatalf("expected 3 successes, got %d", len(result.Successes))
	}
}

func TestSend_BlankResponse(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "\n\n")
	c := newTestClient(t, f)

	_, err := c.Send(context.Background(), "hello", []string{"27821234567"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestSend_TransportError(t *testing.T) {
	f := newFakeFetcher()
	f.fail("sendmsg", errors.New("connection reset"))
	c := newTestClient(t, f)

	_, err := c.Send(context.Background(), "hello", []string{"27821234567"})
	if !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}

func TestSend_UnknownErrorCode(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "ERR: 999, Something New")
	c := newTestClient(t, f)

	result, err := c.Send(context.Background(), "hello", []string{"27821234567"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(result.Failures) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	got := result.Failures[0]
	if got.Code != "999" {
		t.Fatalf("unexpected code: %q", got.Code)
	}
	if got.Description != "Unknown Error (999)" {
		t.Fatalf("unexpected placeholder description: %q", got.Description)
	}
}

func TestSend_EscapesMessageText(t *testing.T) {
	f := newFakeFetcher()
	f.respond("sendmsg", "ID: 1234")
	c := newTestClient(t, f)

	if _, err := c.Send(context.Background(), "hello & goodbye?", []string{"27821234567"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	q := queryOf(t, f.callsTo("sendmsg")[0])
	if q.Get("text") != "hello & goodbye?" {
		t.Fatalf("message text not round-tripped through the URL: %q", q.Get("text"))
	}
}
