// Package verify authenticates requests delivered by discord's interaction
// webhook.
//
// https://discord.com/developers/docs/interactions/overview#setting-up-an-endpoint-validating-security-request-headers
package verify

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"
)

var (
	ErrMissingSignature   = errors.New("missing signature headers")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrInvalidSignature   = errors.New("invalid request signature")
)

// ParsePublicKey decodes the hex encoded application public key.
func ParsePublicKey(publicKeyHex string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	return ed25519.PublicKey(key), nil
}

// VerifyKey checks that signatureHex signs timestamp||body under key.
func VerifyKey(key ed25519.PublicKey, signatureHex, timestamp string, body []byte) error {
	if signatureHex == "" || timestamp == "" {
		return ErrMissingSignature
	}
	if len(key) != ed25519.PublicKeySize {
		return ErrInvalidSignature
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrMalformedSignature
	}
	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)
	if !ed25519.Verify(key, message, sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Verify reports whether signatureHex is a valid signature of timestamp||body
// under publicKeyHex. Decoding failures count as a rejection.
func Verify(publicKeyHex, signatureHex, timestamp string, body []byte) bool {
	if signatureHex == "" || timestamp == "" {
		return false
	}
	key, err := ParsePublicKey(publicKeyHex)
	if err != nil {
		return false
	}
	return VerifyKey(key, signatureHex, timestamp, body) == nil
}
