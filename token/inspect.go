package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token carries no expiry")

// ExpiryOf returns the exp claim of a JWT without verifying its signature.
// The console treats tokens as opaque; this is for display only, never for
// deciding whether a session is valid.
func ExpiryOf(raw string) (time.Time, error) {
	unverified, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := unverified.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
