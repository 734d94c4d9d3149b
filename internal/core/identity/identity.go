package identity

import (
	"context"
	"errors"
)

// Principal is the caller identity resolved by the external identity
// provider before a request reaches this service. It is carried through the
// request context by the auth middleware and is never taken from request
// bodies, so authorship cannot be forged by request content.
type Principal string

// Anonymous is the zero principal: no resolvable caller identity.
const Anonymous Principal = ""

// IsAnonymous reports whether the principal carries no caller identity.
func (p Principal) IsAnonymous() bool {
	return p == Anonymous
}

func (p Principal) String() string {
	return string(p)
}

// ErrUnauthorized indicates a write was attempted without a resolvable
// non-anonymous caller identity.
var ErrUnauthorized = errors.New("authentication required")

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal returns a context carrying the caller principal.
// Used by the auth middleware after token verification.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext extracts the caller principal from the request context.
// Returns Anonymous if no principal was attached.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalKey).(Principal); ok {
		return p
	}
	return Anonymous
}
