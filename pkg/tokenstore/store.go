package tokenstore

import "github.com/eventfold/eventfold/pkg/tokens"

// Store holds one access/refresh token pair. Implementations must be
// safe for concurrent use; the only writers are the auth flows
// (login, refresh, logout).
type Store interface {
	// SetToken writes the access token unconditionally and the refresh
	// token only when non-empty.
	SetToken(access, refresh string) error
	AccessToken() (string, error)
	RefreshToken() (string, error)
	// Clear removes both tokens.
	Clear() error
}

type TokenUser struct {
	UUID string
}

// UserFromToken derives the current user identity from the stored
// access token. Any failure, storage or decode, yields nil.
func UserFromToken(s Store) *TokenUser {
	raw, err := s.AccessToken()
	if err != nil || raw == "" {
		return nil
	}
	claims, err := tokens.Decode(raw)
	if err != nil || claims.UserUUID == "" {
		return nil
	}
	return &TokenUser{UUID: claims.UserUUID}
}
