// File: internal/auth/claims.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read out of a bearer token without the
// server's secret.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekToken decodes the token's claims without verifying the signature; only
// the backend can verify, the client just displays who is signed in and for
// how long. Opaque (non-JWT) tokens return an error the caller may ignore.
func PeekToken(token string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.New("token is not a readable JWT")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
