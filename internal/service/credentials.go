package service

import (
	"crypto/rand"
	"fmt"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// credentialLength is the fixed size of minted one-time passwords.
const credentialLength = 8

// GenerateCredential mints a fresh random alphanumeric credential using a
// cryptographically secure source.
func GenerateCredential() (string, error) {
	buf := make([]byte, credentialLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate credential: %w", err)
	}
	for i, b := range buf {
		buf[i] = credentialAlphabet[int(b)%len(credentialAlphabet)]
	}
	return string(buf), nil
}
