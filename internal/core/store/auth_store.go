// Package store holds the client's observable state: the auth store (session
// lifecycle) and the reports store (cached collection with derived views).
// Stores are explicitly constructed single instances injected into whatever
// needs them; there is no ambient global session.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
	"github.com/Green-Future-Society/incident-console/internal/metrics"
)

const loginPath = "/login"

// AuthStoreOptions collects the auth store's collaborators.
type AuthStoreOptions struct {
	API      ports.AuthAPI
	Session  ports.SessionStore
	Notifier ports.Notifier
	Nav      ports.Navigator
	Logger   zerolog.Logger

	// HydrateRedirect preserves the legacy behaviour of forcing a visible
	// redirect to the login screen when startup hydration finds a corrupted
	// snapshot. Default false: fall back to anonymous silently.
	HydrateRedirect bool
}

// AuthStore owns the in-memory session and its lifecycle:
// Anonymous → Authenticated (login, hydration) → Anonymous (logout, 401,
// corrupted snapshot). No intermediate state is durable.
type AuthStore struct {
	api             ports.AuthAPI
	store           ports.SessionStore
	notifier        ports.Notifier
	nav             ports.Navigator
	log             zerolog.Logger
	hydrateRedirect bool

	mu      sync.RWMutex
	session domain.Session
	loading bool
}

// NewAuthStore builds the auth store. Call Hydrate once before first use.
func NewAuthStore(opts AuthStoreOptions) *AuthStore {
	return &AuthStore{
		api:             opts.API,
		store:           opts.Session,
		notifier:        opts.Notifier,
		nav:             opts.Nav,
		log:             opts.Logger,
		hydrateRedirect: opts.HydrateRedirect,
	}
}

// Hydrate restores the session from persistent storage. Run once at process
// start. A snapshot that fails to parse is treated as corrupted and torn down
// exactly like a logout; whether that teardown also navigates to the login
// screen is controlled by HydrateRedirect.
func (s *AuthStore) Hydrate(ctx context.Context) {
	token, rawUser, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session hydration failed, starting anonymous")
		return
	}

	if token == "" && len(rawUser) == 0 {
		return // nothing persisted
	}

	var user domain.User
	if token == "" || json.Unmarshal(rawUser, &user) != nil {
		// Half session or unparsable snapshot: corrupted either way.
		s.log.Warn().Msg("corrupted session snapshot, tearing down")
		metrics.SessionTeardownsTotal.WithLabelValues("corrupt").Inc()
		s.teardown(ctx, s.hydrateRedirect)
		return
	}

	s.mu.Lock()
	s.session = domain.Session{Token: token, User: &user}
	s.mu.Unlock()

	if exp, ok := s.TokenExpiry(); ok && exp.Before(time.Now()) {
		s.log.Debug().Time("expired_at", exp).Msg("stored token already expired, first request will re-authenticate")
	}
	s.log.Info().Str("username", user.Username).Msg("session hydrated")
}

// Login authenticates against the backend and establishes the session in
// memory and in persistent storage.
func (s *AuthStore) Login(ctx context.Context, creds domain.LoginRequest) (*domain.LoginResponse, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		s.notifier.Notify(domain.NotifyError, loginFailureMessage(err))
		return nil, err
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, resp.Token, rawUser); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session, continuing in memory")
	}

	user := resp.User
	s.mu.Lock()
	s.session = domain.Session{Token: resp.Token, User: &user}
	s.mu.Unlock()

	s.notifier.Notify(domain.NotifySuccess, "Welcome back, "+user.Name+"!")
	return resp, nil
}

// Register submits a new-account application. No session is established;
// failures propagate without an extra notification because the pipeline has
// already notified.
func (s *AuthStore) Register(ctx context.Context, data domain.RegistrationRequest) (*domain.RESTResponse, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(domain.NotifySuccess, messageOr(resp, "Registration successful!"))
	return resp, nil
}

// ResetPassword requests a password reset for the given MSISDN. Same shape
// as Register: notify on success, propagate on failure.
func (s *AuthStore) ResetPassword(ctx context.Context, msisdn string) (*domain.RESTResponse, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.ResetPassword(ctx, msisdn)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(domain.NotifySuccess, messageOr(resp, "Password reset email sent!"))
	return resp, nil
}

// Logout is the single teardown path: clear all persisted client state,
// reset in-memory state to anonymous, and force navigation to the login
// screen. Also used internally by 401 handling and corrupted hydration.
func (s *AuthStore) Logout(ctx context.Context) {
	metrics.SessionTeardownsTotal.WithLabelValues("logout").Inc()
	s.teardown(ctx, true)
}

// InvalidateSession resets in-memory state only. Wired as the pipeline's
// 401 hook, which has already cleared persistent storage itself.
func (s *AuthStore) InvalidateSession() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()
}

func (s *AuthStore) teardown(ctx context.Context, navigate bool) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.InvalidateSession()
	if navigate {
		s.nav.NavigateTo(loginPath)
	}
}

// ── Derived predicates (pure reads of current state) ──────────────────────────

// Session returns a copy of the current session.
func (s *AuthStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsAuthenticated reports whether a token is held.
func (s *AuthStore) IsAuthenticated() bool { return !s.Session().Anonymous() }

// IsAdmin reports whether the session user holds the ADMIN role.
func (s *AuthStore) IsAdmin() bool { return s.Session().Admin() }

// DisplayName returns the session user's name, or "User" when anonymous.
func (s *AuthStore) DisplayName() string { return s.Session().DisplayName() }

// Loading reports whether an auth action is in flight. The flag is coarse:
// overlapping calls share it and it reflects the most recently settled call.
func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// TokenExpiry inspects the held bearer token's exp claim without verifying
// the signature (the client has no key material; verification is the
// backend's job). Returns ok=false when no token is held or the token does
// not parse as a JWT.
func (s *AuthStore) TokenExpiry() (time.Time, bool) {
	sess := s.Session()
	if sess.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// loginFailureMessage prefers the backend's message, falling back to the
// canonical login failure text.
func loginFailureMessage(err error) string {
	if msg := domain.APIMessage(err); msg != "" && msg != domain.MsgGenericError {
		return msg
	}
	return "Login failed"
}

func messageOr(resp *domain.RESTResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
