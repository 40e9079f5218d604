// Package auth abstracts the external identity provider. The backend
// never issues credentials itself: it only verifies bearer tokens minted
// by the provider and maps them to an Identity.
package auth

import "context"

// Identity is the provider-side view of an authenticated user. ExternalID
// is the provider's stable user identifier; the internal user row is
// resolved from it on each request.
type Identity struct {
	ExternalID string
	Email      string
}

// Verifier validates a bearer token and returns the identity it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
