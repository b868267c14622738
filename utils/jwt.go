package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, unparseable claims, or elapsed expiry. Callers get no
// further detail.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies HS256 access tokens with a single shared
// secret. Tokens are valid until natural expiry; there is no revocation or
// refresh.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttlHours int) *TokenService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

// Issue signs the given claims, adding an exp claim of now plus the ttl.
func (s *TokenService) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns its claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
