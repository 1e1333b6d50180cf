package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/nav"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
	"github.com/Green-Future-Society/incident-console/internal/core/store"
	"github.com/Green-Future-Society/incident-console/internal/infrastructure/api"
	"github.com/Green-Future-Society/incident-console/internal/infrastructure/config"
	"github.com/Green-Future-Society/incident-console/internal/infrastructure/notify"
	"github.com/Green-Future-Society/incident-console/internal/infrastructure/session"
)

// App wires every layer together for one process: config, session storage,
// the HTTP pipeline, the service façades, and the two stores. Commands reach
// it through the package-level app variable set up by the root command.
type App struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	Client *api.Client
	Nav    *navigator

	Auth      *store.AuthStore
	Reports   *store.ReportsStore
	Weather   ports.WeatherAPI
	Geocoding ports.GeocodingAPI
	Analytics ports.AnalyticsAPI

	SessionCheck func(ctx context.Context) error
}

// newApp builds and hydrates the application. The session store backend is
// picked from configuration; everything else is fixed wiring.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	sessions, sessionCheck, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	toaster := notify.NewToaster(nil, log)
	navg := &navigator{log: log}

	client := api.NewClient(api.ClientOptions{
		BaseURL:  cfg.APIBaseURL,
		Timeout:  cfg.HTTPTimeout,
		Session:  sessions,
		Notifier: toaster,
		Nav:      navg,
		Logger:   log,
	})

	authStore := store.NewAuthStore(store.AuthStoreOptions{
		API:             api.NewAuthAPI(client),
		Session:         sessions,
		Notifier:        toaster,
		Nav:             navg,
		Logger:          log,
		HydrateRedirect: cfg.HydrateRedirect,
	})
	client.OnUnauthorized(authStore.InvalidateSession)

	reportsStore := store.NewReportsStore(store.ReportsStoreOptions{
		API:      api.NewReportsAPI(client),
		Notifier: toaster,
		Logger:   log,
	})

	a := &App{
		Cfg:          cfg,
		Log:          log,
		Client:       client,
		Nav:          navg,
		Auth:         authStore,
		Reports:      reportsStore,
		Weather:      api.NewWeatherAPI(client),
		Geocoding:    api.NewGeocodingAPI(cfg.GeocodingBaseURL, cfg.HTTPTimeout),
		Analytics:    api.NewAnalyticsAPI(cfg.AnalyticsBaseURL, cfg.AnalyticsHeader, cfg.HTTPTimeout),
		SessionCheck: sessionCheck,
	}

	a.Auth.Hydrate(ctx)
	return a, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, func(context.Context) error, error) {
	switch cfg.Session.Backend {
	case "redis":
		client, err := session.Connect(ctx, session.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("session backend: %w", err)
		}
		check := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return session.NewRedisStore(client), check, nil
	case "file", "":
		fs := session.NewFileStore(cfg.Session.Path)
		check := func(ctx context.Context) error {
			_, _, err := fs.Load(ctx)
			return err
		}
		return fs, check, nil
	default:
		return nil, nil, fmt.Errorf("session backend: unknown backend %q", cfg.Session.Backend)
	}
}

// enter resolves a command's route, runs the navigation guard against the
// current session, and moves the navigator there when allowed. A redirect
// decision aborts the command with the guard's reason.
func (a *App) enter(routeName string) error {
	route, ok := nav.Lookup(routeName)
	if !ok {
		return fmt.Errorf("unknown route %q", routeName)
	}

	decision := nav.Guard(route, a.Auth.Session())
	if !decision.Allow {
		target, _ := nav.Lookup(decision.RedirectName)
		path := target.Path
		if len(decision.RedirectQuery) > 0 {
			path += "?" + decision.RedirectQuery.Encode()
		}
		a.Nav.NavigateTo(path)
		return fmt.Errorf("%w: %s requires %s, redirected to %s",
			domain.ErrNavBlocked, route.Path, requirement(route), path)
	}

	a.Nav.NavigateTo(route.Path)
	return nil
}

func requirement(r nav.Route) string {
	switch {
	case r.RequiresAdmin:
		return "an admin session"
	case r.RequiresAuth:
		return "login"
	case r.RequiresGuest:
		return "an anonymous session"
	default:
		return "nothing"
	}
}

// navigator tracks the console's notional location, the CLI stand-in for
// the browser address bar. Navigation is recorded and logged; there is no
// page to actually move.
type navigator struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

func (n *navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *navigator) NavigateTo(path string) {
	n.mu.Lock()
	n.path = path
	n.mu.Unlock()
	n.log.Debug().Str("path", path).Msg("navigate")
}
