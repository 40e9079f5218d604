package auth

import (
	"context"
	"fmt"

	"github.com/descope/go-sdk/descope/client"
)

// DescopeVerifier validates Descope session tokens against the project's
// public keys. This is the production verifier.
type DescopeVerifier struct {
	client *client.DescopeClient
}

func NewDescopeVerifier(projectID string) (*DescopeVerifier, error) {
	c, err := client.NewWithConfig(&client.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("initializing Descope client: %w", err)
	}
	return &DescopeVerifier{client: c}, nil
}

func (v *DescopeVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	authorized, session, err := v.client.Auth.ValidateSessionWithToken(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("validating session: %w", err)
	}
	if !authorized || session == nil {
		return Identity{}, fmt.Errorf("session token not authorized")
	}

	identity := Identity{ExternalID: session.ID}
	if email, ok := session.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
