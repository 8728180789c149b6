// Package remote talks to the theme server. Every operation is a single
// HTTP request and its outcome is decided by the status code alone.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
)

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient HTTPDoer
	Logger     domain.Logger
}

// Client is the theme server client. It implements domain.ThemeService.
type Client struct {
	base       *url.URL
	httpClient HTTPDoer
	userAgent  string
	logger     domain.Logger
	requestID  func() string
}

// New creates a client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base, err := ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "raven"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NopLogger{}
	}

	return &Client{
		base:       base,
		httpClient: cfg.HTTPClient,
		userAgent:  cfg.UserAgent,
		logger:     cfg.Logger,
		requestID:  uuid.NewString,
	}, nil
}

// BaseURL returns the server the client talks to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// do sends r and returns the response of a 2xx status. Any other status is
// turned into a *StatusError and the body is discarded.
func (c *Client) do(ctx context.Context, op Operation, r Request) (*http.Response, error) {
	target, err := r.URL(c.base)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, r.Body)
	if err != nil {
		return nil, err
	}

	id := c.requestID()
	req.Header.Set("X-Request-ID", id)
	req.Header.Set("User-Agent", c.userAgent)
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("remote: %s %s id=%s failed: %v", r.Method, req.URL.Path, id, err)
		return nil, &TransportError{Op: op, Err: err}
	}

	c.logger.Debug("remote: %s %s id=%s status=%d in %s",
		r.Method, req.URL.Path, id, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	if err := classify(op, resp.StatusCode); err != nil {
		drain(resp)
		return nil, err
	}
	return resp, nil
}

// exec sends r and discards the body of a successful response.
func (c *Client) exec(ctx context.Context, op Operation, r Request) (int, error) {
	resp, err := c.do(ctx, op, r)
	if err != nil {
		return 0, err
	}
	drain(resp)
	return resp.StatusCode, nil
}

// fetchJSON sends r and decodes the successful body into v.
func (c *Client) fetchJSON(ctx context.Context, op Operation, r Request, v any) error {
	resp, err := c.do(ctx, op, r)
	if err != nil {
		return err
	}
	defer drain(resp)

	body := &transportBody{op: op, rc: resp.Body}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return te
		}
		if ctx.Err() != nil {
			return &TransportError{Op: op, Err: err}
		}
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// transportBody reports read failures of a streamed body as TransportError.
type transportBody struct {
	op Operation
	rc io.ReadCloser
}

func (b *transportBody) Read(p []byte) (int, error) {
	n, err := b.rc.Read(p)
	if err != nil && err != io.EOF {
		return n, &TransportError{Op: b.op, Err: err}
	}
	return n, err
}

func (b *transportBody) Close() error {
	return b.rc.Close()
}

var _ domain.ThemeService = (*Client)(nil)
