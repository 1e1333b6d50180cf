package domain

// NotificationKind is the severity of a user-facing toast.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Canonical notification texts emitted by the HTTP pipeline. Kept as package
// consts so tests and the pipeline agree on the exact wording.
const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgForbidden      = "You do not have permission to perform this action"
	MsgNotFound       = "Resource not found"
	MsgServerError    = "Server error. Please try again later."
	MsgNetworkError   = "Network error. Please check your connection."
	MsgGenericError   = "An error occurred"
)

// Notification is a fire-and-forget message for the notification sink.
type Notification struct {
	Kind    NotificationKind
	Message string
}
