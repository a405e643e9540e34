package encoding

import (
	"errors"
	"strings"
)

// Bech32 prefix validator errors.
var (
	ErrBech32Prefix  = errors.New("wrong bech32 prefix")
	ErrBech32Length  = errors.New("invalid bech32 length")
	ErrBech32Charset = errors.New("invalid bech32 character")
)

// bech32Charset is the 32-character data alphabet from BIP-173.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var bech32CharsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(bech32Charset); i++ {
		rev[bech32Charset[i]] = int8(i)
	}
	return rev
}()

// Segwit address lengths: 42 covers P2WPKH, 62 is the bech32 ceiling and
// covers P2WSH/P2TR outputs.
const (
	bech32MinLen = 42
	bech32MaxLen = 62
)

// CheckBech32 validates the human-readable part, charset and length of a
// segwit-style address. Input case is normalized first, so uppercase
// addresses (BIP-173 allows all-upper) pass.
//
// The BCH polymod checksum of BIP-173/BIP-350 is NOT verified here, so a
// string with a damaged data part can still pass. Callers must not treat
// acceptance as proof of a spendable address.
// TODO: implement BIP-173 bech32 / BIP-350 bech32m polymod verification
// with the constant selected by witness version.
func CheckBech32(address, hrp string) error {
	addr := strings.ToLower(address)
	if !strings.HasPrefix(addr, hrp+"1") {
		return ErrBech32Prefix
	}
	if len(addr) < bech32MinLen || len(addr) > bech32MaxLen {
		return ErrBech32Length
	}
	data := addr[len(hrp)+1:]
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c >= 128 || bech32CharsetRev[c] < 0 {
			return ErrBech32Charset
		}
	}
	return nil
}
