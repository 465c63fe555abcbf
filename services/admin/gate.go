package admin

import (
	"crypto/subtle"
	"errors"
)

// ErrForbidden is returned for any key that is not the configured secret.
var ErrForbidden = errors.New("forbidden")

// Gate authorizes destructive operations with one shared secret.
type Gate struct {
	secret []byte
}

// NewGate captures the secret. An empty secret rejects every key.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authorize returns ErrForbidden unless key equals the secret.
func (g *Gate) Authorize(key string) error {
	if len(g.secret) == 0 {
		return ErrForbidden
	}
	if subtle.ConstantTimeCompare([]byte(key), g.secret) != 1 {
		return ErrForbidden
	}
	return nil
}
