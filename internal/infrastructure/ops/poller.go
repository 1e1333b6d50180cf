package ops

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultInterval = time.Minute

// Poller periodically invokes a refresh function until its context is
// cancelled. Watch mode uses it to keep the reports cache current; a failed
// refresh is logged and retried on the next tick, never escalated.
type Poller struct {
	interval time.Duration
	refresh  func(ctx context.Context) error
	log      zerolog.Logger
}

// NewPoller creates a Poller. interval <= 0 falls back to one minute.
func NewPoller(interval time.Duration, refresh func(ctx context.Context) error, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{interval: interval, refresh: refresh, log: log}
}

// Run refreshes immediately, then on every tick, until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	if err := p.refresh(ctx); err != nil {
		p.log.Warn().Err(err).Msg("initial refresh failed")
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			if err := p.refresh(ctx); err != nil {
				p.log.Warn().Err(err).Msg("refresh failed")
				continue
			}
			p.log.Debug().Dur("took", time.Since(start)).Msg("cache refreshed")
		}
	}
}
