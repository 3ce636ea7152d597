package clickatell

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// intHexRe matches hex-or-decimal tokens (API message ids are hex).
var intHexRe = regexp.MustCompile(`[0-9a-f]+`)

// intRe matches decimal tokens (error codes, recipient numbers).
var intRe = regexp.MustCompile(`[0-9]+`)

// SendSuccess records one message accepted by the gateway.
type SendSuccess struct {
	// APIMessageID is the gateway-issued id, used for status queries.
	APIMessageID string
	// Recipient is the destination the message was accepted for.
	Recipient string
}

// SendFailure records one recipient the gateway rejected. Failures are
// returned as data inside SendResult, never raised as an error.
type SendFailure struct {
	// Code is the 3-digit gateway error code.
	Code string
	// Recipient is the destination the gateway rejected.
	Recipient string
	// Description is the human-readable mapping of Code.
	Description string
}

// SendResult partitions one send call's gateway response into accepted
// and rejected recipients.
type SendResult struct {
	Successes []SendSuccess
	Failures  []SendFailure
}

// Send delivers message to the given recipients.
//
// Recipients are partitioned into consecutive batches of at most
// MaxRecipients, one sequential sendmsg request per batch. Response
// lines are accumulated across batches and reconciled per line:
// "ID: ..." lines become successes, "ERR: ..." lines become failures
// with the error code mapped through the code table.
//
// With multiple response lines the recipient is taken from the token
// the gateway echoes back in each line; this positional association is
// a known fragility of the upstream protocol and is preserved as-is.
//
// Per-recipient rejections land in the result's Failures list; Send
// only returns an error for invalid arguments, transport failures or
// an entirely unparsable response.
func (c *Client) Send(ctx context.Context, message string, recipients []string) (*SendResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	var lines []string

	for start := 0; start < len(recipients); start += MaxRecipients {
		end := start + MaxRecipients
		if end > len(recipients) {
			end = len(recipients)
		}

		q := url.Values{}
		q.Set("session_id", c.sessionID)
		q.Set("to", strings.Join(recipients[start:end], ","))
		q.Set("text", message)

		body, err := c.fetcher.Fetch(ctx, c.baseURL+"/sendmsg?"+q.Encode())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnect, err)
		}

		// Blank lines carry no information; dropping them here makes a
		// dead transport surface as ErrEmptyResponse below instead of
		// an empty-but-successful result.
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	if len(lines) == 0 {
		return nil, ErrEmptyResponse
	}

	result := &SendResult{}

	if len(lines) == 1 {
		// Single response line: the gateway does not echo the
		// recipient, so the line belongs to recipients[0].
		if err := parseSingleLine(lines[0], recipients[0], result); err != nil {
			return nil, err
		}
		return result, nil
	}

	for _, line := range lines {
		if err := parseBatchLine(line, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// parseSingleLine reconciles a lone response line against the one
// recipient it can belong to.
func parseSingleLine(line, recipient string, result *SendResult) error {
	if strings.HasPrefix(line, "ID") {
		tokens := intHexRe.FindAllString(line, -1)
		if len(tokens) < 1 {
			return fmt.Errorf("%w: %q", ErrBadResponse, line)
		}
		result.Successes = append(result.Successes, SendSuccess{
			APIMessageID: tokens[0],
			Recipient:    recipient,
		})
		return nil
	}

	tokens := intRe.FindAllString(line, -1)
	if len(tokens) < 1 {
		return fmt.Errorf("%w: %q", ErrBadResponse, line)
	}
	result.Failures = append(result.Failures, SendFailure{
		Code:        tokens[0],
		Recipient:   recipient,
		Description: ErrorDescription(tokens[0]),
	})
	return nil
}

// parseBatchLine reconciles one line of a multi-line response, taking
// the recipient from the token echoed by the gateway.
func parseBatchLine(line string, result *SendResult) error {
	if strings.HasPrefix(line, "ID") {
		tokens := intHexRe.FindAllString(line, -1)
		if len(tokens) < 2 {
			return fmt.Errorf("%w: %q", ErrBadResponse, line)
		}
		result.Successes = append(result.Successes, SendSuccess{
			APIMessageID: tokens[0],
			Recipient:    tokens[1],
		})
		return nil
	}

	tokens := intRe.FindAllString(line, -1)
	if len(tokens) < 2 {
		return fmt.Errorf("%w: %q", ErrBadResponse, line)
	}
	result.Failures = append(result.Failures, SendFailure{
		Code:        tokens[0],
		Recipient:   tokens[1],
		Description: ErrorDescription(tokens[0]),
	})
	return nil
}
