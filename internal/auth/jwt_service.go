package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT claims carried by session tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries the given role.
func (c *Claims) HasRole(role string) bool {
	for _, have := range c.Roles {
		if have == role {
			return true
		}
	}
	return false
}

// JWTService issues and validates signed, stateless session tokens.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a new JWT service with the given secret and token lifetime.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue generates a signed token embedding the username as subject and the
// user's roles. Tokens are never revoked server-side; expiry is the only
// invalidation mechanism.
func (s *JWTService) Issue(username string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate reports whether the token is well formed, carries a valid
// signature, is not expired, and was issued for the expected username.
// It fails closed on every parse error. The credential store is deliberately
// not consulted: a token outlives its user until natural expiry.
func (s *JWTService) Validate(tokenString, expectedUsername string) bool {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return false
	}
	return claims.Subject == expectedUsername
}

// ExtractSubject returns the subject of a signature-valid token without
// checking expiry, so callers can look up the claimed user before deciding
// whether the token is still acceptable.
func (s *JWTService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString, true)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

func (s *JWTService) parse(tokenString string, skipClaimsValidation bool) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if skipClaimsValidation {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &Claims{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
