package validate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/encoding"
)

func mintRippleAddress(version byte, accountID []byte) string {
	return encoding.CheckEncode(append([]byte{version}, accountID...), encoding.RippleAlphabet)
}

func TestValidateRipple(t *testing.T) {
	minted := mintRippleAddress(0x00, bytes.Repeat([]byte{0x13}, 20))

	tests := []struct {
		name  string
		addr  string
		valid bool
	}{
		// ACCOUNT_ZERO: 20 zero bytes under version 0x00.
		{"account zero", "rrrrrrrrrrrrrrrrrrrrrhoLvTp", true},
		{"genesis account", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", true},
		{"minted", minted, true},
		{"no r prefix", "pHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", false},
		{"too short", "rHb9CJAWyB4rj91VRWn96", false},
		{"base58 invalid char", "rHb9CJAWyB4rj91VRWn96DkukG4bwdty0h", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Address(tt.addr, chain.XRP)
			require.Equal(t, tt.valid, res.Valid, "%+v", res.Err)
		})
	}
}

// A leading 'r' is the zero digit of the Ripple alphabet, so the account
// type byte 0x00 is what puts the 'r' on the address. Encodings under any
// other type byte never lead with 'r' and must be rejected.
func TestValidateRippleWrongAddressType(t *testing.T) {
	accountID := bytes.Repeat([]byte{0x01}, 20)
	for _, version := range []byte{0x01, 0x02, 0x21, 0xff} {
		wrong := mintRippleAddress(version, accountID)
		require.NotEqual(t, byte('r'), wrong[0], "version 0x%02x", version)
		res := Address(wrong, chain.XRP)
		require.False(t, res.Valid)
		require.Equal(t, KindFormat, res.Err.Kind)
	}
}

// The version gate on the decoded payload backs up the prefix gate: a
// well-formed account encoding always decodes to type byte 0x00.
func TestValidateRippleDecodedVersionByte(t *testing.T) {
	addr := mintRippleAddress(0x00, bytes.Repeat([]byte{0xfe}, 20))
	payload, err := encoding.CheckDecode(addr, encoding.RippleAlphabet)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), payload[0])
	require.True(t, Address(addr, chain.XRP).Valid)
}

func TestValidateRippleCorruptChecksum(t *testing.T) {
	addr := mintRippleAddress(0x00, bytes.Repeat([]byte{0x13}, 20))
	last := addr[len(addr)-1]
	replacement := byte('p')
	if last == replacement {
		replacement = 's'
	}
	res := Address(addr[:len(addr)-1]+string(replacement), chain.XRP)
	require.False(t, res.Valid)
	require.Equal(t, KindChecksum, res.Err.Kind)
}
