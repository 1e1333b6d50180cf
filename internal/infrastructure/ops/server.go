// Package ops hosts the watch-mode sidecar: a small HTTP surface with
// liveness/readiness probes and Prometheus metrics, plus the background
// poller that keeps the reports cache fresh.
package ops

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const checkTimeout = 5 * time.Second

// Check probes one dependency; nil means healthy.
type Check func(ctx context.Context) error

// NewRouter builds the ops Echo instance. checks feed the readiness probe,
// keyed by dependency name (e.g. "backend", "session_store").
func NewRouter(checks map[string]Check) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("incident_console_ops"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", liveness)
	e.GET("/health/ready", readiness(checks))

	return e
}

func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func readiness(checks map[string]Check) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		defer cancel()

		resp := readinessResponse{
			Status:       "ok",
			Dependencies: make(map[string]dependencyStatus, len(checks)),
		}
		code := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Dependencies[name] = dependencyStatus{Status: "down", Error: err.Error()}
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Dependencies[name] = dependencyStatus{Status: "up"}
		}

		return c.JSON(code, resp)
	}
}
