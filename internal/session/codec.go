// Package session implements a signed, cookie-backed session store.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HMAC key size accepted by NewCodec.
const MinSecretLength = 32

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrWeakSecret   = fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)
)

// Claims is the signed payload stored in the session cookie.
type Claims struct {
	Values map[string]string `json:"values"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session payloads.
type Codec interface {
	Encode(sessionID string, values map[string]string) (string, error)
	Decode(token string) (*Claims, error)
	MaxAge() time.Duration
}

type jwtCodec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewCodec creates an HS256 codec whose tokens expire after maxAge.
func NewCodec(secret string, maxAge time.Duration) (Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive, got %v", maxAge)
	}
	return &jwtCodec{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

func (c *jwtCodec) MaxAge() time.Duration {
	return c.maxAge
}

func (c *jwtCodec) Encode(sessionID string, values map[string]string) (string, error) {
	now := c.now()
	claims := Claims{
		Values: values,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

func (c *jwtCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	if claims.Values == nil {
		claims.Values = map[string]string{}
	}
	return claims, nil
}
