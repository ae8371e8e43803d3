package encid

import (
	"crypto/subtle"
	"encoding/binary"
)

const (
	// PayloadSize is the fixed plaintext length: id, nonce and signature.
	PayloadSize = idSize + nonceSize + signatureSize

	idSize        = 8
	nonceSize     = 8
	signatureSize = 16

	signedSize = idSize + nonceSize
)

// BuildPayload lays out id, its deterministic nonce and the signature over
// both into a new 32-byte slice.
func BuildPayload(id int64, key Key) []byte {
	p := make([]byte, PayloadSize)
	binary.LittleEndian.PutUint64(p[:idSize], uint64(id))

	nonce := key.mac(p[:idSize])
	copy(p[idSize:signedSize], nonce[:nonceSize])

	sig := key.mac(p[:signedSize])
	copy(p[signedSize:], sig[:signatureSize])

	return p
}

// ParsePayload verifies the signature of a 32-byte payload and returns the id.
// The nonce is covered by the signature and is not checked on its own.
func ParsePayload(payload []byte, key Key) (int64, error) {
	if len(payload) != PayloadSize {
		return 0, ErrInvalidPayloadLength
	}

	id := int64(binary.LittleEndian.Uint64(payload[:idSize]))

	expected := key.mac(payload[:signedSize])
	if subtle.ConstantTimeCompare(payload[signedSize:], expected[:signatureSize]) != 1 {
		return 0, ErrSignatureMismatch
	}

	return id, nil
}
