package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

func TestToaster_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	toaster := NewToaster(&buf, zerolog.Nop())

	toaster.Notify(domain.NotifySuccess, "Report created successfully")
	toaster.Notify(domain.NotifyError, "Server error. Please try again later.")
	toaster.Notify(domain.NotifyInfo, "Refreshing")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}
	want := []string{
		"[ok] Report created successfully",
		"[error] Server error. Please try again later.",
		"[info] Refreshing",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
