package encid

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// tokenEncoding is RFC 4648 base64url without padding. Strict decoding keeps
// the text form a bijection of the bytes.
var tokenEncoding = base64.RawURLEncoding.Strict()

// EncodeText returns the unpadded base64url form of b.
func EncodeText(b []byte) string {
	return tokenEncoding.EncodeToString(b)
}

// DecodeText reverses EncodeText. Canonical "=" padding is tolerated.
// Any character outside the base64url alphabet, including line breaks and
// the standard alphabet's '+' and '/', yields ErrMalformedToken.
func DecodeText(s string) ([]byte, error) {
	s = trimPadding(s)

	if i := strings.IndexFunc(s, func(r rune) bool { return !isURLAlphabet(r) }); i >= 0 {
		return nil, fmt.Errorf("%w: illegal character at offset %d", ErrMalformedToken, i)
	}

	b, err := tokenEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return b, nil
}

// trimPadding strips up to two trailing '=' from a padded-length string.
func trimPadding(s string) string {
	if len(s)%4 != 0 {
		return s
	}
	for range 2 {
		if strings.HasSuffix(s, "=") {
			s = s[:len(s)-1]
		}
	}
	return s
}

func isURLAlphabet(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}
