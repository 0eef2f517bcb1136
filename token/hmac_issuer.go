package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims carried by a department API access token
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwtlib.RegisteredClaims
}

// HMACIssuer signs and verifies HS256 access tokens with a shared secret, the
// way the department API does.
type HMACIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewHMACIssuer(secret []byte, expiry time.Duration) (*HMACIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("[NewHMACIssuer] secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &HMACIssuer{secret: secret, expiry: expiry}, nil
}

// Issue creates a signed token for the user
func (i *HMACIssuer) Issue(userID int, username string) (string, error) {
	now := NowTimeFunc()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.expiry)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the claims
func (i *HMACIssuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwtlib.WithTimeFunc(NowTimeFunc), jwtlib.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
