package sign

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elabs-dev/ethkit/pkg/keccak"
)

func TestNewSignature(t *testing.T) {
	compact := make([]byte, CompactLength)
	compact[0] = 0x01

	t.Run("Valid construction", func(t *testing.T) {
		sig, err := NewSignature(compact, 1)
		require.NoError(t, err)
		assert.Equal(t, compact, sig.CompactBytes())
		assert.Equal(t, byte(1), sig.RecoveryID())
	})

	t.Run("Rejections", func(t *testing.T) {
		_, err := NewSignature(compact[:32], 0)
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = NewSignature(compact, 4)
		assert.ErrorIs(t, err, ErrInvalidRecoveryID)
	})

	t.Run("Copies its input", func(t *testing.T) {
		buf := make([]byte, CompactLength)
		sig, err := NewSignature(buf, 0)
		require.NoError(t, err)

		buf[0] = 0xff
		assert.Equal(t, byte(0), sig.CompactBytes()[0])
	})
}

func TestSignatureWireForm(t *testing.T) {
	key := testKey(t)
	sig, err := SignDigest(keccak.Sum256([]byte("wire")), key)
	require.NoError(t, err)

	t.Run("Bytes layout", func(t *testing.T) {
		raw := sig.Bytes()
		require.Len(t, raw, WireLength)
		assert.Equal(t, sig.CompactBytes(), raw[:CompactLength])
		assert.Equal(t, sig.RecoveryID(), raw[CompactLength])
	})

	t.Run("Hex round trip", func(t *testing.T) {
		parsed, err := ParseHex(sig.String())
		require.NoError(t, err)
		assert.Equal(t, sig, parsed)
	})
}

func TestParseHex(t *testing.T) {
	key := testKey(t)
	sig, err := SignDigest(keccak.Sum256([]byte("parse")), key)
	require.NoError(t, err)

	t.Run("Normalizes legacy v", func(t *testing.T) {
		raw := sig.Bytes()
		raw[CompactLength] += 27

		parsed, err := ParseHex(hexutil.Encode(raw))
		require.NoError(t, err)
		assert.Equal(t, sig.RecoveryID(), parsed.RecoveryID())
	})

	t.Run("Rejections", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"Missing prefix", "deadbeef"},
			{"Odd length", "0xabc"},
			{"Too short", "0xdeadbeef"},
			{"Empty", ""},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := ParseHex(test.input)
				assert.Error(t, err)
			})
		}
	})
}

func TestSignatureJSON(t *testing.T) {
	key := testKey(t)
	sig, err := SignDigest(keccak.Sum256([]byte("json")), key)
	require.NoError(t, err)

	t.Run("Round trip", func(t *testing.T) {
		data, err := json.Marshal(sig)
		require.NoError(t, err)
		assert.Equal(t, `"`+sig.String()+`"`, string(data))

		var decoded Signature
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, sig, decoded)
	})

	t.Run("Unmarshaling errors", func(t *testing.T) {
		tests := []struct {
			name     string
			jsonData string
		}{
			{"Invalid JSON", `{invalid}`},
			{"Invalid hex", `"0xinvalidhex"`},
			{"Non-string", `123`},
			{"Wrong length", `"0x0102"`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				var decoded Signature
				assert.Error(t, json.Unmarshal([]byte(test.jsonData), &decoded))
			})
		}
	})
}
