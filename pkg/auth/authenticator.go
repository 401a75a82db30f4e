package auth

import (
	"crypto/subtle"
	"log/slog"
)

// authenticator gates API access behind a shared key. An empty configured
// key leaves the deck open, which is how a pitch deck is usually served.
type authenticator struct {
	accessKey string
}

func NewAuthenticator(accessKey string) *authenticator {
	slog.Info("access key auth", "enabled", accessKey != "")

	return &authenticator{
		accessKey: accessKey,
	}
}

func (a *authenticator) IsAuthorized(key string) bool {
	if a.accessKey == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(a.accessKey), []byte(key)) == 1
}
