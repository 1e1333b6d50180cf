package ports

import "context"

// SessionStore is the durable key-value storage backing the session. At most
// one token/user pair is held at a time; Save and Clear replace or remove the
// pair atomically.
//
// Load returns the raw user snapshot rather than a parsed User so the caller
// decides how to treat a corrupted value (the auth store tears the whole
// session down). A missing session is ("", nil, nil), not an error.
type SessionStore interface {
	Load(ctx context.Context) (token string, rawUser []byte, err error)
	Save(ctx context.Context, token string, rawUser []byte) error
	Clear(ctx context.Context) error
}
