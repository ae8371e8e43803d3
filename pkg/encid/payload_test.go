package encid_test

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

func mustKey(t *testing.T, secret string) encid.Key {
	t.Helper()
	key, err := encid.DeriveKey(secret)
	require.NoError(t, err)
	return key
}

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "test-secret")

	t.Run("matches reference layout", func(t *testing.T) {
		t.Parallel()
		p := encid.BuildPayload(12345, key)
		assert.Equal(t, "393000000000000093d86a17cb82ba1f45897a820c95a32028d300e44b3a57e5", hex.EncodeToString(p))
	})

	t.Run("id is little-endian in the first eight bytes", func(t *testing.T) {
		t.Parallel()
		for _, id := range []int64{0, 1, -1, 12345, -9223372036854775808, 9223372036854775807} {
			p := encid.BuildPayload(id, key)
			require.Len(t, p, encid.PayloadSize)
			assert.Equal(t, id, int64(binary.LittleEndian.Uint64(p[:8])))
		}
	})

	t.Run("nonce is deterministic per id", func(t *testing.T) {
		t.Parallel()
		a := encid.BuildPayload(42, key)
		b := encid.BuildPayload(42, key)
		c := encid.BuildPayload(43, key)

		assert.Equal(t, a[8:16], b[8:16])
		assert.NotEqual(t, a[8:16], c[8:16])
	})
}

func TestParsePayload(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "test-secret")

	t.Run("accepts a freshly built payload", func(t *testing.T) {
		t.Parallel()
		id, err := encid.ParsePayload(encid.BuildPayload(-77, key), key)
		require.NoError(t, err)
		assert.Equal(t, int64(-77), id)
	})

	t.Run("rejects wrong lengths before verifying", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{0, 8, 16, 31, 33, 64} {
			_, err := encid.ParsePayload(make([]byte, n), key)
			assert.ErrorIs(t, err, encid.ErrInvalidPayloadLength, "length %d", n)
		}
	})

	t.Run("any modified byte fails the signature", func(t *testing.T) {
		t.Parallel()
		orig := encid.BuildPayload(12345, key)
		for i := range orig {
			p := append([]byte(nil), orig...)
			p[i] ^= 0x01
			_, err := encid.ParsePayload(p, key)
			assert.ErrorIs(t, err, encid.ErrSignatureMismatch, "byte %d", i)
		}
	})

	t.Run("payload from another key fails", func(t *testing.T) {
		t.Parallel()
		other := mustKey(t, "other-secret")
		_, err := encid.ParsePayload(encid.BuildPayload(12345, other), key)
		assert.ErrorIs(t, err, encid.ErrSignatureMismatch)
	})
}
