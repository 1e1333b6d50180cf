// Package notify implements the toast sink for a terminal: non-blocking
// one-line messages on stderr, mirrored into the structured log and counted
// in metrics. Rendering is fire-and-forget; failures to write are ignored.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/metrics"
)

// Toaster writes notifications to a terminal stream.
type Toaster struct {
	mu  sync.Mutex
	out io.Writer
	log zerolog.Logger
}

// NewToaster returns a Toaster writing to out; nil defaults to os.Stderr.
func NewToaster(out io.Writer, log zerolog.Logger) *Toaster {
	if out == nil {
		out = os.Stderr
	}
	return &Toaster{out: out, log: log}
}

// Notify renders one toast. Never blocks on anything but the write itself
// and never reports failure to the caller.
func (t *Toaster) Notify(kind domain.NotificationKind, message string) {
	metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()

	t.log.Debug().Str("kind", string(kind)).Str("message", message).Msg("notification")

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.out, "%s %s\n", prefix(kind), message)
}

func prefix(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotifySuccess:
		return "[ok]"
	case domain.NotifyError:
		return "[error]"
	default:
		return "[info]"
	}
}
