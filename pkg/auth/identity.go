package auth

import "context"

// Identity is the authenticated caller for one request. It is carried
// explicitly through the request context by the auth middleware; nothing in
// the application reads ambient global user state.
type Identity struct {
	UserID uint
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx returns the request identity and whether one is present.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
