package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/northstar/goals-api/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// TokenService issues and validates HS256-signed bearer tokens. Tokens carry
// no server-side state: validity is signature plus embedded expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subject with issued-at and expiry claims.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the token's subject.
// Every structural or cryptographic failure collapses into
// domain.ErrInvalidToken so callers cannot probe for the specific reason.
func (s *TokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
