// Package token implements bearer token issuance and verification with
// HMAC-signed JWTs.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pizzanow/ordering-system/internal/core/domain"
)

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Issuer signs and verifies tokens carrying a single subject claim. Issued
// tokens have no expiry claim: once handed out they stay valid until the
// signing secret rotates.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
}

// NewIssuer builds an Issuer for the given secret and algorithm name
// (HS256, HS384, or HS512). Both come from configuration; the secret is
// never embedded in the binary.
func NewIssuer(secret, algorithm string) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token: empty signing secret")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("token: unsupported algorithm %q", algorithm)
	}
	return &Issuer{secret: []byte(secret), method: method}, nil
}

// Issue produces a compact signed token with sub set to username.
func (i *Issuer) Issue(username string) (string, error) {
	t := jwt.NewWithClaims(i.method, jwt.RegisteredClaims{Subject: username})
	return t.SignedString(i.secret)
}

// Verify parses the token, checks the signing method and signature, and
// returns the subject username. Malformed structure, a signature mismatch,
// and an unexpected algorithm all collapse into domain.ErrInvalidToken so
// callers learn nothing about which check failed.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
