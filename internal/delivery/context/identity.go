package context

import (
	"context"

	"gamevault/internal/domain/entity"
)

// WithIdentity returns a new context carrying the verified caller identity.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the verified caller identity from context.Context.
// The second return value reports whether an identity was set.
func GetIdentity(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}
