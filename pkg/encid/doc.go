// Package encid reversibly maps 64-bit identifiers to opaque, URL-safe tokens.
//
// Internal sequential IDs can be handed to external callers without revealing
// their order or magnitude. Anyone holding the shared secret can recover the
// original ID; anyone else sees 43 characters of base64url.
//
// # Token Format
//
// A token is built from a fixed 32-byte payload:
//
//	[0,8)   id, little-endian int64
//	[8,16)  nonce, first 8 bytes of HMAC-SHA256(key, id bytes)
//	[16,32) signature, first 16 bytes of HMAC-SHA256(key, id || nonce)
//
// The payload is encrypted with AES-256 as two independent 16-byte blocks (no
// IV, no chaining, no padding) and encoded as unpadded base64url. The key is
// SHA-256 of the secret and serves as both the AES key and the HMAC key.
//
// The layout, key reuse and unchained block mode are fixed for compatibility
// with an existing peer implementation. Changing any of them is a breaking
// protocol change: tokens issued before the change will no longer decode.
//
// # Basic Usage
//
//	codec, err := encid.New(os.Getenv("ENCRYPTED_ID_SECRET"))
//	if err != nil {
//		log.Fatal(err) // empty secret
//	}
//
//	token := codec.Encode(12345)
//	fmt.Println(token) // 43 URL-safe characters
//
//	id, err := codec.DecodeString(token.String())
//	if err != nil {
//		// errors.Is(err, encid.ErrInvalidToken) holds for every decode failure
//	}
//
// Callers that prefer a boolean over an error can use TryDecode:
//
//	if id, ok := codec.TryDecode(s); ok {
//		// use id
//	}
//
// # Prefixes
//
// Some deployments prepend a fixed marker such as "obf_" to every token:
//
//	codec, err := encid.New(secret, encid.WithPrefix("obf_"))
//
// Decoding strips the configured prefix when it is present, so both prefixed
// and bare tokens are accepted.
//
// # Error Handling
//
// Every decode failure wraps ErrInvalidToken together with a specific cause:
//   - ErrEmptyToken: input is empty or whitespace
//   - ErrMalformedToken: characters outside the base64url alphabet, or a length
//     that does not decode to whole bytes
//   - ErrInvalidCiphertextLength: decoded data is not exactly 32 bytes
//   - ErrSignatureMismatch: tampered token, wrong secret, or a token from
//     another key generation
//
// External responses should not distinguish between these causes.
//
// # Concurrency
//
// A Codec is immutable after New returns and is safe for concurrent use by
// any number of goroutines.
package encid
