// Package graph implements drive.Service against the Microsoft Graph API.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/auth"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/logging"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/telemetry"
)

// defaultBaseURL is the Microsoft Graph v1.0 endpoint.
const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Session is the cached user and site context resolved on first use.
type Session struct {
	UserID            string
	UserPrincipalName string
	SiteID            string
}

// Client is a Graph API client exposing drive operations. The session is
// resolved lazily on the first operation and cached for the process lifetime.
type Client struct {
	http     *http.Client
	provider auth.TokenProvider
	baseURL  string
	metrics  *telemetry.MetricsProvider

	mu      sync.Mutex
	ready   bool
	session Session
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithBaseURL overrides the Graph endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithMetrics attaches a metrics provider.
func WithMetrics(m *telemetry.MetricsProvider) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a Graph client around a token provider.
func NewClient(provider auth.TokenProvider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: no token provider configured", drive.ErrAuthRequired)
	}

	c := &Client{
		http:     &http.Client{Timeout: 60 * time.Second},
		provider: provider,
		baseURL:  defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ensureSession resolves the signed-in user and root site on first use.
// A failed initialization is retried on the next call.
func (c *Client) ensureSession(ctx context.Context) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return c.session, nil
	}

	var me struct {
		ID                string `json:"id"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/me", &me); err != nil {
		return Session{}, fmt.Errorf("resolving user: %w", err)
	}

	var site struct {
		ID string `json:"id"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/sites/root", &site); err != nil {
		return Session{}, fmt.Errorf("resolving root site: %w", err)
	}

	c.session = Session{
		UserID:            me.ID,
		UserPrincipalName: me.UserPrincipalName,
		SiteID:            site.ID,
	}
	c.ready = true

	logging.Debug().
		Add(logging.User(c.session.UserPrincipalName)).
		Add(logging.Site(c.session.SiteID)).
		Msg("graph session established")

	return c.session, nil
}

// do issues an authenticated request and maps error responses onto the
// domain sentinels. The caller owns the response body on success.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body io.Reader) (*http.Response, error) {
	token, err := c.provider.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph request failed: %w", err)
	}
	c.metrics.RecordGraphRequest(ctx, method, res.StatusCode, time.Since(start))

	logging.Debug().
		Add(logging.Method(method)).
		Add(logging.Status(res.StatusCode)).
		Add(logging.Duration(time.Since(start))).
		Msg("graph request")

	if res.StatusCode >= 400 {
		defer res.Body.Close()
		resBody, _ := io.ReadAll(res.Body)
		return nil, mapError(res.StatusCode, resBody)
	}

	return res, nil
}

// getJSON issues a GET request and decodes the response body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	res, err := c.do(ctx, http.MethodGet, rawURL, "", nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// itemURL builds the drive item URL for a path. The empty path and "/"
// address the drive root.
func (c *Client) itemURL(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return c.baseURL + "/me/drive/root"
	}

	segments := strings.Split(trimmed, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.baseURL + "/me/drive/root:/" + strings.Join(segments, "/") + ":"
}
