package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failure kinds. The HTTP layer collapses all of them
// into one generic response; they stay distinct for logging.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
	ErrMissingSubject = errors.New("token has no subject claim")
)

// TokenService issues and verifies signed identity tokens. Tokens are
// stateless: the signature plus payload is the whole proof, nothing is
// stored server-side. That trades revocability for simplicity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service signing with the given secret. A ttl of
// zero issues tokens without an expiry claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256 token whose subject is subjectID.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  subjectID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns its
// subject. The payload is never trusted before the signature passes.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrBadSignature
	default:
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", ErrBadSignature
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
