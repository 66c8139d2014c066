package auth

import "context"

type contextKey struct{}

// NewContext returns a context carrying the authenticated principal.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext extracts the authenticated principal, if present. Mutating
// commands require one; handlers install it from the verified bearer token.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
