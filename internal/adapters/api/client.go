package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

// AuthExpiredFunc is invoked after a 401 response has evicted the persisted
// session, before the failure propagates to the caller. The composition root
// uses it to steer the user back to login.
type AuthExpiredFunc func(ctx context.Context)

type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Sessions       ports.SessionRepository
	RequestTimeout time.Duration
	OnAuthExpired  AuthExpiredFunc
}

// Client is the storefront API wrapper. It injects the bearer token from the
// persisted session into every outgoing request and is the only layer that
// inspects response status codes: a 401 to any endpoint evicts the session
// record and surfaces domain.ErrSessionExpired. It never retries.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       ports.SessionRepository
	requestTimeout time.Duration
	onAuthExpired  AuthExpiredFunc
}

var (
	_ ports.AuthAPI    = (*Client)(nil)
	_ ports.CartAPI    = (*Client)(nil)
	_ ports.CatalogAPI = (*Client)(nil)
	_ ports.OrdersAPI  = (*Client)(nil)
)

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session repository is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     httpClient,
		sessions:       cfg.Sessions,
		requestTimeout: cfg.RequestTimeout,
		onAuthExpired:  cfg.OnAuthExpired,
	}, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if session, err := c.sessions.Load(ctx); err == nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.RequestError{
			Kind: domain.ErrorKindNetwork,
			Err:  fmt.Errorf("%s %s: %w", method, path, err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireSession(ctx, resp)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RequestError{
			Kind:       domain.ErrorKindServer,
			StatusCode: resp.StatusCode,
			Detail:     decodeErrorDetail(resp),
			Err:        fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// expireSession performs the 401 side effect: erase the persisted session
// record, fire the wired hook, then propagate the classified failure. This
// runs for every unauthorized response regardless of which endpoint failed.
func (c *Client) expireSession(ctx context.Context, resp *http.Response) error {
	cause := error(domain.ErrSessionExpired)
	if clearErr := c.sessions.Clear(ctx); clearErr != nil {
		cause = errors.Join(domain.ErrSessionExpired, fmt.Errorf("clear persisted session: %w", clearErr))
	}

	if c.onAuthExpired != nil {
		c.onAuthExpired(ctx)
	}

	return &domain.RequestError{
		Kind:       domain.ErrorKindAuthExpired,
		StatusCode: resp.StatusCode,
		Detail:     decodeErrorDetail(resp),
		Err:        cause,
	}
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.requestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

// decodeErrorDetail extracts the backend's structured error message, which
// arrives as {"detail": "..."} on business and auth failures.
func decodeErrorDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
