package api

import (
	"context"

	"github.com/inkwell-app/inkwell-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity stores the verified identity on the request context.
func ctxWithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// ctxGetIdentity retrieves the verified identity, reporting whether the
// request actually passed through the auth middleware.
func ctxGetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
