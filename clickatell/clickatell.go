// Package clickatell implements a client for the Clickatell SMS
// gateway's legacy HTTP/HTTPS API (v2.5.3). The client authenticates
// once at construction time, sends text messages to one or more
// recipients (batching over the protocol's 100-recipient limit), and
// queries the delivery status of previously sent messages.
//
// All gateway responses are line-oriented text; the client parses them
// into structured results and maps the gateway's 3-digit codes to
// human-readable descriptions.
package clickatell

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	// MaxRecipients is the maximum number of recipients per sendmsg
	// request, as per the v2.5.3 HTTP API.
	MaxRecipients = 100

	// DefaultHost is the public Clickatell API host.
	DefaultHost = "api.clickatell.com"
)

// Config holds the gateway credentials and connection settings.
// It is immutable once passed to Connect.
type Config struct {
	// APIID is the Clickatell API id for the HTTP connection.
	APIID string
	// User and Password are the account credentials.
	User     string
	Password string
	// Secure selects https over http for all gateway requests.
	Secure bool
	// Host overrides the gateway host. Empty means DefaultHost.
	Host string
}

// scheme returns the transport scheme selected by the config.
func (c Config) scheme() string {
	if c.Secure {
		return "https"
	}
	return "http"
}

// Client is an authenticated session against the Clickatell gateway.
//
// A Client is created with Connect and holds a single session id for
// its whole lifetime. There is no re-authentication path: if the
// gateway expires the session, subsequent calls fail with the
// gateway-reported error (code 003, "Session ID Expired").
//
// The Client itself holds no mutable state after Connect, so it is safe
// for concurrent use as long as its Fetcher is.
type Client struct {
	cfg       Config
	fetcher   Fetcher
	baseURL   string
	sessionID string
}

// Connect authenticates against the gateway and returns a live client.
//
// Construction is eager: the auth request happens here, and a returned
// *Client always holds a non-empty session id. A nil fetcher selects
// the default HTTP transport.
func Connect(ctx context.Context, cfg Config, fetcher Fetcher) (*Client, error) {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(DefaultTimeout)
	}

	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}

	c := &Client{
		cfg:     cfg,
		fetcher: fetcher,
		baseURL: fmt.Sprintf("%s://%s/http", cfg.scheme(), host),
	}

	if err := c.login(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// SessionID returns the session id obtained at Connect time.
func (c *Client) SessionID() string {
	return c.sessionID
}

// login sends the auth request and stores the session id.
//
// The gateway answers "OK: <session id>" on success and
// "ERR: <code>, <description>" on rejected credentials.
func (c *Client) login(ctx context.Context) error {
	q := url.Values{}
	q.Set("api_id", c.cfg.APIID)
	q.Set("user", c.cfg.User)
	q.Set("password", c.cfg.Password)

	body, err := c.fetcher.Fetch(ctx, c.baseURL+"/auth?"+q.Encode())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}

	switch {
	case strings.HasPrefix(body, "OK"):
		// The session id is everything after the literal "OK: ".
		if len(body) <= 4 {
			return ErrConnect
		}
		c.sessionID = strings.TrimSpace(body[4:])
		if c.sessionID == "" {
			return ErrConnect
		}
		return nil

	case strings.HasPrefix(body, "ERR"):
		// The 3-digit error code sits at a fixed offset: "ERR: 001, ...".
		if len(body) < 8 {
			return ErrConnect
		}
		code := body[5:8]
		return &AuthError{Code: code, Description: ErrorDescription(code)}

	default:
		return ErrConnect
	}
}
