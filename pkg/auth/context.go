package auth

import (
	"context"

	"go.uber.org/zap"
)

// Context keys for authentication data
type contextKey string

// ContextKeySubject is the context key for the authenticated token subject
const ContextKeySubject contextKey = "subject"

// WithSubject adds the token subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// SubjectFromContext retrieves the token subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}

// SubjectField returns the token subject as a log field, or a no-op field for unauthenticated requests
func SubjectField(ctx context.Context) zap.Field {
	if sub, ok := SubjectFromContext(ctx); ok {
		return zap.String("subject", sub)
	}
	return zap.Skip()
}
