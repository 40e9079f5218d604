package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier validates HS256 tokens signed with a shared secret. It is
// meant for local development and tests, where standing up a hosted
// identity provider is not worth the trouble.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("token has no subject")
	}

	identity := Identity{ExternalID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
