// Package token verifies the bearer tokens clients send with each request.
// Two schemes are supported: Supabase-issued JWTs (HS256 shared secret or
// RS256 public key) and locally signed mock session tokens for development.
package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the identity extracted from a verified token.
type Claims struct {
	UserID string
	Email  string
}

// Verifier checks a bearer token and returns the caller's identity.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

type supabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type jwtVerifier struct {
	keyFunc jwt.Keyfunc
	methods []string
}

// NewHS256Verifier verifies Supabase JWTs signed with the project's shared
// JWT secret.
func NewHS256Verifier(secret string) Verifier {
	return &jwtVerifier{
		keyFunc: func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		methods: []string{jwt.SigningMethodHS256.Name},
	}
}

// NewRS256Verifier verifies Supabase JWTs against a PEM-encoded RSA public key.
func NewRS256Verifier(publicKeyPEM []byte) (Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return newRS256Verifier(key), nil
}

// NewRS256VerifierFromFile loads the public key PEM from disk.
func NewRS256VerifierFromFile(path string) (Verifier, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key file: %w", err)
	}
	return NewRS256Verifier(pem)
}

func newRS256Verifier(key *rsa.PublicKey) Verifier {
	return &jwtVerifier{
		keyFunc: func(t *jwt.Token) (any, error) { return key, nil },
		methods: []string{jwt.SigningMethodRS256.Name},
	}
}

func (v *jwtVerifier) Verify(raw string) (*Claims, error) {
	var claims supabaseClaims
	_, err := jwt.ParseWithClaims(raw, &claims, v.keyFunc, jwt.WithValidMethods(v.methods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &Claims{UserID: claims.Subject, Email: claims.Email}, nil
}
