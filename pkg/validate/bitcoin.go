package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/encoding"
)

// validateBitcoinFamily handles Bitcoin, Bitcoin testnet and Litecoin:
// segwit addresses go through the bech32 prefix validator, everything else
// through Base58Check with the chain's version-byte table.
func validateBitcoinFamily(addr string, id chain.ID) Result {
	hrp := chain.HRP[id]
	if strings.HasPrefix(strings.ToLower(addr), hrp+"1") {
		return validateSegwit(addr, hrp, id)
	}
	return validateBase58Check(addr, id)
}

func validateSegwit(addr, hrp string, id chain.ID) Result {
	if err := encoding.CheckBech32(addr, hrp); err != nil {
		switch {
		case errors.Is(err, encoding.ErrBech32Prefix):
			return invalid(id, KindFormat, fmt.Sprintf("expected %s1 prefix", hrp))
		case errors.Is(err, encoding.ErrBech32Length):
			return invalid(id, KindFormat, "segwit address length out of range")
		default:
			return invalid(id, KindFormat, "invalid bech32 character")
		}
	}
	// Bech32 is case-insensitive, so lowercase is the canonical form.
	return valid(id, strings.ToLower(addr))
}

func validateBase58Check(addr string, id chain.ID) Result {
	payload, err := encoding.CheckDecode(addr, encoding.BitcoinAlphabet)
	if err != nil {
		switch {
		case errors.Is(err, encoding.ErrInvalidCharacter):
			return invalid(id, KindFormat, "invalid base58 character")
		case errors.Is(err, encoding.ErrTooShort):
			return invalid(id, KindFormat, "address too short to carry a checksum")
		default:
			return invalid(id, KindChecksum, "base58check checksum mismatch")
		}
	}
	if len(payload) != 21 {
		return invalid(id, KindFormat, fmt.Sprintf("expected a 21-byte payload, got %d", len(payload)))
	}

	accepted := chain.VersionBytes[id]
	version := payload[0]
	for _, v := range accepted {
		if version == v {
			return valid(id, addr)
		}
	}
	return invalidErr(id, &ValidationError{
		Kind:             KindVersion,
		Message:          fmt.Sprintf("version byte 0x%02x not valid on %s", version, id),
		ExpectedVersions: accepted,
		ActualVersion:    version,
	})
}
