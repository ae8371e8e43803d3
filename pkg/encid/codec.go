package encid

import (
	"fmt"
	"strings"
)

// Codec encodes identifiers into tokens and back under a single secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	key    Key
	prefix string
}

// New derives the key from secret and returns a ready codec.
// An empty secret returns ErrEmptySecret.
func New(secret string, opts ...Option) (*Codec, error) {
	key, err := DeriveKey(secret)
	if err != nil {
		return nil, err
	}

	c := &Codec{key: key}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNew is like New but panics on error. Intended for process startup.
func MustNew(secret string, opts ...Option) *Codec {
	c, err := New(secret, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Prefix returns the configured token prefix, if any.
func (c *Codec) Prefix() string {
	return c.prefix
}

// Encode returns the token for id. It cannot fail for a constructed codec.
func (c *Codec) Encode(id int64) Token {
	ciphertext, err := EncryptBlocks(BuildPayload(id, c.key), c.key)
	if err != nil {
		// Only reachable if the payload layout or key size is broken.
		panic(fmt.Errorf("encid: encrypt payload: %w", err))
	}
	return Token{value: c.prefix + EncodeText(ciphertext)}
}

// Decode verifies t and returns the identifier it carries.
// Every error wraps ErrInvalidToken.
func (c *Codec) Decode(t Token) (int64, error) {
	if t.IsZero() {
		return 0, invalid(ErrEmptyToken)
	}
	return c.decode(t.value)
}

// DecodeString parses s as a Token and decodes it.
func (c *Codec) DecodeString(s string) (int64, error) {
	t, err := ParseToken(s)
	if err != nil {
		return 0, invalid(err)
	}
	return c.decode(t.value)
}

// TryDecode is DecodeString without an error: any failure returns (0, false).
func (c *Codec) TryDecode(s string) (int64, bool) {
	id, err := c.DecodeString(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c *Codec) decode(s string) (int64, error) {
	if c.prefix != "" {
		s = strings.TrimPrefix(s, c.prefix)
	}

	ciphertext, err := DecodeText(s)
	if err != nil {
		return 0, invalid(err)
	}

	// Length is checked before any key material touches the data.
	if len(ciphertext) != PayloadSize {
		return 0, invalid(fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, len(ciphertext)))
	}

	payload, err := DecryptBlocks(ciphertext, c.key)
	if err != nil {
		return 0, invalid(err)
	}

	id, err := ParsePayload(payload, c.key)
	if err != nil {
		return 0, invalid(err)
	}

	return id, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidToken, err)
}
