package keccak

import (
	"encoding/hex"
	"math/rand"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestSum256KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"fox", "The quick brown fox jumps over the lazy dog", "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum256([]byte(tt.input))
			require.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

// TestSum256AgainstLegacyKeccak checks the permutation, absorption and
// padding against x/crypto's legacy Keccak across the block boundaries
// (135/136/137 bytes and multiples).
func TestSum256AgainstLegacyKeccak(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for size := 0; size <= 300; size++ {
		input := make([]byte, size)
		rng.Read(input)

		ref := sha3.NewLegacyKeccak256()
		ref.Write(input)
		want := ref.Sum(nil)

		got := Sum256(input)
		require.Equal(t, want, got[:], "input size %d", size)
	}
}

func TestSum256MatchesGoEthereum(t *testing.T) {
	input := []byte("0x00000000000c2e074ec69a0dfb2997ba6c7d2e1e")
	got := Hash256(input)
	require.Equal(t, ethcrypto.Keccak256(input), got)
}

func TestHash256Length(t *testing.T) {
	require.Len(t, Hash256(nil), 32)
}
