package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the payload of a platform access token. The signing
// secret lives server side only, so this layer decodes claims without
// verifying the signature: expiry and identity checks, nothing more.
type Claims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

var ErrMalformed = errors.New("tokens: malformed token")

func Decode(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMalformed
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return nil, ErrMalformed
	}
	return &claims, nil
}

// Valid reports whether raw decodes and its exp claim is strictly in
// the future. Malformed input is invalid, never an error.
func Valid(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.After(time.Now())
}

// Expired reports whether raw decodes cleanly but carries an exp claim
// that has passed. A malformed token is not "expired", it is garbage.
func Expired(raw string) bool {
	claims, err := Decode(raw)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(time.Now())
}
