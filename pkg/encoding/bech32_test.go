package encoding

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
)

// mintSegwitAddress builds a checksummed witness-v0 address with the
// reference bech32 encoder, giving the validator realistic input.
func mintSegwitAddress(t *testing.T, hrp string, program []byte) string {
	t.Helper()
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode(hrp, append([]byte{0x00}, converted...))
	require.NoError(t, err)
	return addr
}

func TestCheckBech32Valid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		hrp     string
	}{
		{"bip173 p2wpkh", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", "bc"},
		{"uppercase", "BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4", "bc"},
		{"bip173 p2wsh", "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3", "bc"},
		{"bip173 testnet", "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", "tb"},
		{"minted litecoin", mintSegwitAddress(t, "ltc", make([]byte, 20)), "ltc"},
		{"minted testnet", mintSegwitAddress(t, "tb", make([]byte, 20)), "tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, CheckBech32(tt.address, tt.hrp))
		})
	}
}

func TestCheckBech32Invalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		hrp     string
		wantErr error
	}{
		{"wrong hrp", "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", "bc", ErrBech32Prefix},
		{"missing separator", "bcqw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4x", "bc", ErrBech32Prefix},
		{"too short", "bc1qw508d6qejxtdg4y5r3zar", "bc", ErrBech32Length},
		{"too long", "bc1" + strings.Repeat("q", 60), "bc", ErrBech32Length},
		{"charset b", "bc1bw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", "bc", ErrBech32Charset},
		{"charset i", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8fit4", "bc", ErrBech32Charset},
		{"charset o", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8fot4", "bc", ErrBech32Charset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, CheckBech32(tt.address, tt.hrp), tt.wantErr)
		})
	}
}

// The polymod checksum is intentionally not verified: a charset-valid data
// part with a damaged checksum still passes the prefix validator.
func TestCheckBech32DoesNotVerifyChecksum(t *testing.T) {
	damaged := "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3qq"
	require.NoError(t, CheckBech32(damaged, "bc"))
}
