// Package api implements the outbound HTTP pipeline and the stateless
// service façades built on top of it. Every request flows through Client.Do,
// which attaches the bearer credential for non-public paths and maps every
// response, success or failure, to exactly one typed outcome plus, on
// failure, one user-facing notification.
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
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
	"github.com/Green-Future-Society/incident-console/internal/metrics"
)

const (
	defaultTimeout = 30 * time.Second
	loginPath      = "/login"
)

// publicEndpoints are path prefixes that never carry the bearer header, even
// when a token is present: authentication and account registration.
var publicEndpoints = []string{"/token", "/registration"}

// ClientOptions collects the pipeline's collaborators. Session, Notifier and
// Navigator are required; the zero Timeout falls back to defaultTimeout.
type ClientOptions struct {
	BaseURL  string
	Timeout  time.Duration
	Session  ports.SessionStore
	Notifier ports.Notifier
	Nav      ports.Navigator
	Logger   zerolog.Logger
}

// Client is the HTTP pipeline shared by all domain services talking to the
// main backend.
type Client struct {
	baseURL  string
	http     *http.Client
	session  ports.SessionStore
	notifier ports.Notifier
	nav      ports.Navigator
	log      zerolog.Logger
	validate *validator.Validate

	// onUnauthorized lets the auth store reset in-memory session state when
	// a 401 tears down the persisted session. One expired token invalidates
	// the whole session, not just the request that hit it.
	onUnauthorized func()
}

// NewClient builds the pipeline client.
func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		session:  opts.Session,
		notifier: opts.Notifier,
		nav:      opts.Nav,
		log:      opts.Logger,
		validate: validator.New(),
	}
}

// OnUnauthorized registers the in-memory teardown hook invoked after a 401
// clears the persisted session.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// Get performs a GET request; query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do executes one request through the full pipeline. On a 2xx response the
// body is decoded into out (when out is non-nil) and validated. Every failure
// branch both notifies the user and returns the error: notification is a side
// effect, not a substitute for error propagation.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.do(ctx, method, path, query, body, out)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(method, outcomeLabel(err)).Inc()
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if !isPublic(path) {
		token, _, loadErr := c.session.Load(ctx)
		if loadErr != nil {
			c.log.Warn().Err(loadErr).Msg("session load failed, sending unauthenticated")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and refused connections are indistinguishable here:
		// no response means network failure.
		c.notifier.Notify(domain.NotifyError, domain.MsgNetworkError)
		return &domain.APIError{Message: err.Error(), Kind: domain.ErrNetwork}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Notify(domain.NotifyError, domain.MsgNetworkError)
		return &domain.APIError{Message: err.Error(), Kind: domain.ErrNetwork}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.decode(raw, out)
	}
	return c.fail(ctx, resp.StatusCode, raw)
}

// fail maps a non-2xx response to a notification plus a typed error. The 401
// branch additionally tears the session down globally.
func (c *Client) fail(ctx context.Context, status int, body []byte) error {
	msg := backendMessage(body)
	if msg == "" {
		msg = domain.MsgGenericError
	}

	switch {
	case status == http.StatusUnauthorized:
		// The toast wording is canonical (inside expireSession); the error
		// keeps the backend message for callers such as the login form.
		c.expireSession(ctx)
	case status == http.StatusForbidden:
		msg = domain.MsgForbidden
		c.notifier.Notify(domain.NotifyError, msg)
	case status == http.StatusNotFound:
		msg = domain.MsgNotFound
		c.notifier.Notify(domain.NotifyError, msg)
	case status >= 500:
		msg = domain.MsgServerError
		c.notifier.Notify(domain.NotifyError, msg)
	default:
		c.notifier.Notify(domain.NotifyError, msg)
	}

	return &domain.APIError{Status: status, Message: msg, Kind: sentinelFor(status)}
}

// expireSession is the 401 path: clear persisted session, reset in-memory
// state, and, unless the user is already looking at the login screen, notify
// and force navigation there. Fires for every 401 regardless of which call
// triggered it; one expired token invalidates the whole session.
func (c *Client) expireSession(ctx context.Context) {
	if err := c.session.Clear(ctx); err != nil {
		c.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	metrics.SessionTeardownsTotal.WithLabelValues("expired").Inc()

	if c.nav.CurrentPath() != loginPath {
		c.notifier.Notify(domain.NotifyError, domain.MsgSessionExpired)
		c.nav.NavigateTo(loginPath)
	}
}

// decode unmarshals a success body into out and validates struct payloads at
// the boundary so malformed server data fails fast instead of leaking into
// store state.
func (c *Client) decode(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.notifier.Notify(domain.NotifyError, domain.MsgGenericError)
		return &domain.APIError{Status: http.StatusOK, Message: "malformed response body", Kind: domain.ErrRequestFailed}
	}
	if err := c.validateOut(out); err != nil {
		c.notifier.Notify(domain.NotifyError, domain.MsgGenericError)
		return &domain.APIError{Status: http.StatusOK, Message: err.Error(), Kind: domain.ErrRequestFailed}
	}
	return nil
}

// validateOut runs struct validation when out points at a struct; slices and
// maps pass through untouched (their elements carry no required tags).
func (c *Client) validateOut(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := c.validate.Struct(v.Interface()); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return fmt.Errorf("response validation: %s", ve.Error())
		}
		return err
	}
	return nil
}

// ValidateRequest checks an outbound payload against its validate tags
// before it is shipped, so obviously incomplete requests never leave the
// client.
func (c *Client) ValidateRequest(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// Reachable reports whether the backend answers at all. Any HTTP response,
// including an error status, counts as reachable; only transport failures do
// not. Used by the watch-mode readiness probe and bypasses the notification
// pipeline.
func (c *Client) Reachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

func isPublic(path string) bool {
	for _, p := range publicEndpoints {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func outcomeLabel(err error) string {
	if err == nil {
		return "2xx"
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 0:
			return "network"
		case apiErr.Status >= 500:
			return "5xx"
		case apiErr.Status >= 400:
			return "4xx"
		}
	}
	return "2xx"
}
