package auth

import "context"

// Session is the authenticated caller of a request. Subject owns the score
// history; for anonymous learners it is the session id.
type Session struct {
	Subject string
	Role    string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the caller set by JWTMiddleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// SubjectFromContext is the history owner of the request, or "".
func SubjectFromContext(ctx context.Context) string {
	s, _ := SessionFromContext(ctx)
	return s.Subject
}
