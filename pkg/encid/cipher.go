package encid

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptBlocks encrypts a 32-byte payload with AES-256, transforming each
// 16-byte block independently. There is no IV and no chaining, so equal
// input blocks produce equal output blocks.
func EncryptBlocks(payload []byte, key Key) ([]byte, error) {
	if len(payload) != PayloadSize {
		return nil, ErrInvalidPayloadLength
	}
	return transform(payload, key, cipher.Block.Encrypt)
}

// DecryptBlocks is the inverse of EncryptBlocks.
func DecryptBlocks(ciphertext []byte, key Key) ([]byte, error) {
	if len(ciphertext) != PayloadSize {
		return nil, ErrInvalidCiphertextLength
	}
	return transform(ciphertext, key, cipher.Block.Decrypt)
}

func transform(in []byte, key Key, fn func(b cipher.Block, dst, src []byte)) ([]byte, error) {
	block, err := aes.NewCipher(key.b[:])
	if err != nil {
		return nil, fmt.Errorf("create block cipher: %w", err)
	}

	out := make([]byte, len(in))
	for off := 0; off < len(in); off += aes.BlockSize {
		fn(block, out[off:off+aes.BlockSize], in[off:off+aes.BlockSize])
	}
	return out, nil
}
