package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	confirmTokenLen      = 32
	confirmTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateConfirmToken returns a 32-character alphanumeric token used to
// confirm a user's email address.
func GenerateConfirmToken() (string, error) {
	b := make([]byte, confirmTokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	out := make([]byte, confirmTokenLen)
	for i, v := range b {
		out[i] = confirmTokenAlphabet[int(v)%len(confirmTokenAlphabet)]
	}

	return string(out), nil
}

// EncodeConfirmLink packs an email and confirmation token into the opaque
// URL-safe payload embedded in the confirmation link.
func EncodeConfirmLink(email, token string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(email + " " + token))
}

// DecodeConfirmLink reverses EncodeConfirmLink.
func DecodeConfirmLink(payload string) (email, token string, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", "", fmt.Errorf("decode confirmation payload: %w", err)
	}

	email, token, ok := strings.Cut(string(raw), " ")
	if !ok || email == "" || token == "" {
		return "", "", fmt.Errorf("malformed confirmation payload")
	}

	return email, token, nil
}
