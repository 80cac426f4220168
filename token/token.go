// Package token issues and verifies the signed access tokens handed out at
// login. Tokens are self-contained: the server keeps only the signing secret.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its expiry has passed.
	ErrExpired = errors.New("token: expired")
	// ErrInvalid covers every other failure: bad signature, tampering,
	// malformed structure, wrong algorithm.
	ErrInvalid = errors.New("token: invalid")
)

// Claims carried by an access token.
type Claims struct {
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies tokens with a symmetric secret.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewIssuer builds an Issuer. algorithm must name an HMAC method (HS256,
// HS384 or HS512).
func NewIssuer(secret string, algorithm string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: signing secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not an HMAC method", algorithm)
	}
	return &Issuer{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token for the given subject and nickname, expiring after the
// configured ttl.
func (i *Issuer) Issue(subject, nickname string) (string, error) {
	claims := &Claims{
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity first, then expiry, and returns the
// claims on success. The keyfunc pins the algorithm so a token signed with
// anything but the configured method is rejected outright.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
