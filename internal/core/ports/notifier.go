package ports

import "github.com/Green-Future-Society/incident-console/internal/core/domain"

// Notifier is the fire-and-forget toast sink. Implementations must not block
// and must not fail: notification is a side effect, never a substitute for
// error propagation.
type Notifier interface {
	Notify(kind domain.NotificationKind, message string)
}

// Navigator abstracts the application's current location. The pipeline and
// the auth store only ever decide to redirect; performing the redirect is the
// implementation's concern at the application boundary.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}
