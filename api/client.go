// Package api is the client for the department API. Authorized calls take an
// oauth2.TokenSource and read the bearer token from it when the request is
// sent, so the caller owns the credential and the client stays stateless.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	RequestIDHeader = "X-Request-ID"

	LoginPath          = "/api/login"
	ProfilePath        = "/api/profile"
	ChangePasswordPath = "/api/change-password"

	maxBodyBytes = 1 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Its Transport becomes the base
// transport of authorized calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// authorized wraps the base transport so every request carries
// "Authorization: Bearer <token>" read from src at send time.
func (c *Client) authorized(src oauth2.TokenSource) *http.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: base},
		Timeout:   c.httpClient.Timeout,
	}
}

// GetJSON performs an authorized GET of path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, src oauth2.TokenSource, path string, out any) error {
	return c.do(ctx, c.authorized(src), http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "build request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID(ctx))

	resp, err := hc.Do(req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoToken) {
			return err
		}
		return fmt.Errorf("%w: %w", apperrors.ErrTransport, errors.Wrapf(err, "%s %s", method, path))
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrTransport, errors.Wrapf(err, "read response %s %s", method, path))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: messageFromBody(b)}
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrTransport, errors.Wrapf(err, "decode response %s %s", method, path))
	}
	return nil
}

// requestID propagates the inbound request id when the context carries one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
