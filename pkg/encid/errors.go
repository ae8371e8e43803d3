package encid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the class of errors returned while constructing a codec.
	ErrConfiguration = errors.New("encid: invalid configuration")
	// ErrEmptySecret is returned when the secret is empty.
	ErrEmptySecret = fmt.Errorf("%w: secret is required", ErrConfiguration)

	// ErrInvalidToken is wrapped by every decode failure.
	ErrInvalidToken = errors.New("encid: invalid token")
	// ErrEmptyToken is returned for empty or whitespace-only token input.
	ErrEmptyToken = errors.New("encid: empty token")
	// ErrMalformedToken is returned when the text is not valid unpadded base64url.
	ErrMalformedToken = errors.New("encid: malformed token")
	// ErrInvalidCiphertextLength is returned when decoded data is not exactly 32 bytes.
	ErrInvalidCiphertextLength = errors.New("encid: invalid ciphertext length")
	// ErrInvalidPayloadLength is returned when a payload is not exactly 32 bytes.
	ErrInvalidPayloadLength = errors.New("encid: invalid payload length")
	// ErrSignatureMismatch is returned when the payload signature does not verify.
	ErrSignatureMismatch = errors.New("encid: signature mismatch")
)
