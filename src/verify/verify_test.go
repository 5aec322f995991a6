package verify

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return hex.EncodeToString(pub), priv
}

func sign(priv ed25519.PrivateKey, timestamp string, body []byte) string {
	return hex.EncodeToString(ed25519.Sign(priv, append([]byte(timestamp), body...)))
}

func TestVerify(t *testing.T) {
	pubHex, priv := newKeyPair(t)
	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	sig := sign(priv, timestamp, body)

	assert.True(t, Verify(pubHex, sig, timestamp, body))
}

func TestVerify_FlippedByte(t *testing.T) {
	pubHex, priv := newKeyPair(t)
	timestamp := "1700000000"
	body := []byte(`{"type":1}`)
	sig := sign(priv, timestamp, body)

	sigBytes, err := hex.DecodeString(sig)
	require.NoError(t, err)
	for i := range sigBytes {
		flipped := append([]byte(nil), sigBytes...)
		flipped[i] ^= 0x01
		assert.False(t, Verify(pubHex, hex.EncodeToString(flipped), timestamp, body), "signature byte %d", i)
	}
	for i := range timestamp {
		ts := []byte(timestamp)
		ts[i] ^= 0x01
		assert.False(t, Verify(pubHex, sig, string(ts), body), "timestamp byte %d", i)
	}
	for i := range body {
		b := append([]byte(nil), body...)
		b[i] ^= 0x01
		assert.False(t, Verify(pubHex, sig, timestamp, b), "body byte %d", i)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	_, priv := newKeyPair(t)
	otherHex, _ := newKeyPair(t)
	sig := sign(priv, "1", []byte("x"))

	assert.False(t, Verify(otherHex, sig, "1", []byte("x")))
}

func TestVerify_MalformedInputs(t *testing.T) {
	pubHex, priv := newKeyPair(t)
	sig := sign(priv, "1", []byte("x"))

	tests := []struct {
		name      string
		publicKey string
		signature string
	}{
		{name: "signature not hex", publicKey: pubHex, signature: "zz-not-hex"},
		{name: "signature too short", publicKey: pubHex, signature: sig[:10]},
		{name: "key not hex", publicKey: "not a key", signature: sig},
		{name: "key too short", publicKey: pubHex[:16], signature: sig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Verify(tt.publicKey, tt.signature, "1", []byte("x")))
			})
		})
	}
}

func TestVerifyKey_Missing(t *testing.T) {
	pubHex, _ := newKeyPair(t)
	key, err := ParsePublicKey(pubHex)
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyKey(key, "", "1", nil), ErrMissingSignature)
	assert.ErrorIs(t, VerifyKey(key, "abcd", "", nil), ErrMissingSignature)
	assert.False(t, Verify(pubHex, "", "1", nil))
	assert.False(t, Verify(pubHex, "abcd", "", nil))
}

func TestVerifyKey_Errors(t *testing.T) {
	pubHex, priv := newKeyPair(t)
	key, err := ParsePublicKey(pubHex)
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyKey(key, "xyz", "1", []byte("x")), ErrMalformedSignature)
	assert.ErrorIs(t, VerifyKey(key, sign(priv, "1", []byte("y")), "1", []byte("x")), ErrInvalidSignature)
	assert.NoError(t, VerifyKey(key, sign(priv, "1", []byte("x")), "1", []byte("x")))
}

func TestParsePublicKey(t *testing.T) {
	_, err := ParsePublicKey("abc")
	assert.Error(t, err)

	_, err = ParsePublicKey("abcd")
	assert.Error(t, err)

	pubHex, _ := newKeyPair(t)
	key, err := ParsePublicKey(pubHex)
	require.NoError(t, err)
	assert.Len(t, key, ed25519.PublicKeySize)
}
