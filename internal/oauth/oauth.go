package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// stateBytes sizes every random token this package hands out.
const stateBytes = 32

// UserInfo is the provider-agnostic identity used to find or create a site
// account. Provider plus ID uniquely name the external account; Email links
// it to an existing local one.
type UserInfo struct {
	Provider  string
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// Provider is one OAuth2 sign-in backend. GetConsentURL starts the flow;
// ExchangeCode trades the callback code for the user's identity.
type Provider interface {
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*UserInfo, error)
	Name() string
}

// GenerateState returns a URL-safe random token. It backs the OAuth state
// parameter, the frontend code relay, and password-reset tokens.
func GenerateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
