package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// DefaultTokenTTL is the fixed lifetime of an issued token. There is no
// refresh or revocation; expiry forces a fresh login.
const DefaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 identity assertions.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed assertion for the subject. The embedded role is a
// snapshot at issuance time and carries no authority on its own.
func (s *TokenService) Issue(subjectID, role string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Any failure (bad signature, malformed
// payload, expiry) yields domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &ports.TokenClaims{SubjectID: sub, Role: role}, nil
}
