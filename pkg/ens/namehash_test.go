package ens

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grendel/chainaddr/pkg/keccak"
)

func TestNamehashVectors(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"empty", "", "0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "eth", "93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "foo.eth", "de9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
		{"vitalik.eth", "vitalik.eth", "ee6c4522aab0003e8d14cd40a6af439055fd2577951148c14b6cea9a53475835"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Namehash(tt.domain)
			require.Equal(t, tt.want, hex.EncodeToString(node[:]))
		})
	}
}

// namehash("eth") must equal keccak256(zero_node ++ keccak256("eth")).
func TestNamehashConstruction(t *testing.T) {
	var zero [32]byte
	labelHash := keccak.Sum256([]byte("eth"))
	want := keccak.Sum256(append(zero[:], labelHash[:]...))
	require.Equal(t, want, Namehash("eth"))
}
