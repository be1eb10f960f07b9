package upstream

import "context"

// Session carries the caller's credentials verbatim. The gateway never mints
// its own upstream credentials; it forwards whatever the SPA sent.
type Session struct {
	Cookie        string
	Authorization string
}

type sessionKey struct{}

// WithSession returns a context carrying the caller's session headers.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext extracts the session headers, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
