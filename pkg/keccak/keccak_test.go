package keccak

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum256(t *testing.T) {
	t.Run("Known vectors", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected string
		}{
			{
				name:     "Empty input",
				input:    "",
				expected: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
			},
			{
				name:     "ASCII input",
				input:    "abc",
				expected: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
			},
			{
				name:     "Longer input",
				input:    "The quick brown fox jumps over the lazy dog",
				expected: "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15",
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				sum := Sum256([]byte(test.input))
				assert.Equal(t, test.expected, hex.EncodeToString(sum[:]))
			})
		}
	})

	t.Run("Matches go-ethereum", func(t *testing.T) {
		inputs := [][]byte{nil, {0x00}, []byte("ethkit"), make([]byte, 1000)}
		for _, input := range inputs {
			sum := Sum256(input)
			assert.Equal(t, crypto.Keccak256(input), sum[:])
		}
	})

	t.Run("Output size", func(t *testing.T) {
		sum := Sum256([]byte("x"))
		require.Len(t, sum, Size256)
	})
}

func TestSum512(t *testing.T) {
	t.Run("Empty input vector", func(t *testing.T) {
		sum := Sum512(nil)
		expected := "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304" +
			"c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"
		assert.Equal(t, expected, hex.EncodeToString(sum[:]))
	})

	t.Run("Output size", func(t *testing.T) {
		sum := Sum512([]byte("x"))
		require.Len(t, sum, Size512)
	})

	t.Run("Distinct from Sum256 prefix", func(t *testing.T) {
		short := Sum256([]byte("same input"))
		long := Sum512([]byte("same input"))
		assert.NotEqual(t, short[:], long[:Size256])
	})
}
