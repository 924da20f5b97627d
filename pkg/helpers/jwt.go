package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the fixed iss claim on every token.
const Issuer = "Jericho"

// JWTManager signs and validates the access tokens issued after registration
// and sign-in. A single symmetric HMAC-SHA-256 key is used.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Claims carried by an access token: subject is the user name, sid the user id.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Generate issues a token for the user name and id. Not-before is now (UTC),
// expiry now plus the configured TTL.
func (m *JWTManager) Generate(userName, userID string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(m.TTL)
	claims := &Claims{
		SessionID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userName,
			Issuer:    Issuer,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates a token string and returns its claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
