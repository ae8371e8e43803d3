package encid

import (
	"crypto/hmac"
	"crypto/sha256"
	"log/slog"
)

// KeySize is the length of a derived key in bytes.
const KeySize = sha256.Size

const redacted = "[REDACTED]"

// Key is a 256-bit key derived from the operator secret.
// Its bytes are never exposed; every printable form is redacted.
type Key struct {
	b [KeySize]byte
}

// DeriveKey hashes the UTF-8 bytes of secret with SHA-256.
// The same secret always yields the same key.
func DeriveKey(secret string) (Key, error) {
	if secret == "" {
		return Key{}, ErrEmptySecret
	}
	return Key{b: sha256.Sum256([]byte(secret))}, nil
}

// Equal reports whether two keys were derived from the same secret.
func (k Key) Equal(other Key) bool {
	return hmac.Equal(k.b[:], other.b[:])
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String implements fmt.Stringer.
func (k Key) String() string { return redacted }

// GoString implements fmt.GoStringer so %#v does not print the key bytes.
func (k Key) GoString() string { return "encid.Key{" + redacted + "}" }

// LogValue implements slog.LogValuer.
func (k Key) LogValue() slog.Value { return slog.StringValue(redacted) }

// mac returns HMAC-SHA256 over data keyed with k.
func (k Key) mac(data []byte) []byte {
	h := hmac.New(sha256.New, k.b[:])
	h.Write(data)
	return h.Sum(nil)
}
