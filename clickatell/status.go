package clickatell

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// statusMarker precedes the status code in a querymsg response:
// "ID: <msgid> Status: <code>".
const statusMarker = "Status: "

// gatewayErr parses an "ERR: <code>, <description>" body into a
// GatewayError using the error-code table.
func gatewayErr(body string) error {
	tokens := intRe.FindAllString(body, -1)
	if len(tokens) < 1 {
		return fmt.Errorf("%w: %q", ErrBadResponse, body)
	}
	return &GatewayError{Code: tokens[0], Description: ErrorDescription(tokens[0])}
}

// Status queries the delivery status of a previously sent message and
// returns the 3-digit status code (see StatusDescription for the
// human-readable mapping).
//
// A gateway-reported error comes back as *GatewayError, an unreachable
// gateway as an error wrapping ErrConnect, and anything else the
// gateway might answer as ErrBadResponse.
func (c *Client) Status(ctx context.Context, apiMsgID string) (string, error) {
	q := url.Values{}
	q.Set("session_id", c.sessionID)
	q.Set("apimsgid", apiMsgID)

	body, err := c.fetcher.Fetch(ctx, c.baseURL+"/querymsg?"+q.Encode())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnect, err)
	}

	switch {
	case strings.HasPrefix(body, "ID"):
		idx := strings.Index(body, statusMarker)
		if idx < 0 {
			return "", fmt.Errorf("%w: %q", ErrBadResponse, body)
		}
		return strings.TrimSpace(body[idx+len(statusMarker):]), nil

	case strings.HasPrefix(body, "ERR"):
		return "", gatewayErr(body)

	case body == "":
		return "", ErrConnect

	default:
		return "", fmt.Errorf("%w: %q", ErrBadResponse, body)
	}
}

// Ping keeps the session alive. The gateway answers "OK: " while the
// session is valid.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("session_id", c.sessionID)

	body, err := c.fetcher.Fetch(ctx, c.baseURL+"/ping?"+q.Encode())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}

	switch {
	case strings.HasPrefix(body, "OK"):
		return nil
	case strings.HasPrefix(body, "ERR"):
		return gatewayErr(body)
	case body == "":
		return ErrConnect
	default:
		return fmt.Errorf("%w: %q", ErrBadResponse, body)
	}
}

// Balance queries the remaining account credit. The gateway answers
// "Credit: <amount>".
func (c *Client) Balance(ctx context.Context) (float64, error) {
	q := url.Values{}
	q.Set("session_id", c.sessionID)

	body, err := c.fetcher.Fetch(ctx, c.baseURL+"/getbalance?"+q.Encode())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	switch {
	case strings.HasPrefix(body, "Credit:"):
		raw := strings.TrimSpace(strings.TrimPrefix(body, "Credit:"))
		credit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadResponse, body)
		}
		return credit, nil

	case strings.HasPrefix(body, "ERR"):
		return 0, gatewayErr(body)

	case body == "":
		return 0, ErrConnect

	default:
		return 0, fmt.Errorf("%w: %q", ErrBadResponse, body)
	}
}
