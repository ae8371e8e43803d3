package encid

import (
	"encoding"
	"strings"
)

var (
	_ encoding.TextMarshaler   = Token{}
	_ encoding.TextUnmarshaler = (*Token)(nil)
)

// Token is the external, URL-safe form of an encrypted identifier.
// The zero Token is empty and never decodes.
type Token struct {
	value string
}

// ParseToken validates s as token input.
// Empty and whitespace-only strings return ErrEmptyToken; the content itself
// is checked only when the token is decoded.
func ParseToken(s string) (Token, error) {
	if strings.TrimSpace(s) == "" {
		return Token{}, ErrEmptyToken
	}
	return Token{value: s}, nil
}

// String returns the token text.
func (t Token) String() string {
	return t.value
}

// IsZero reports whether t is the empty Token.
func (t Token) IsZero() bool {
	return t.value == ""
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(b []byte) error {
	parsed, err := ParseToken(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
