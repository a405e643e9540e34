package validate

import (
	"strings"

	"github.com/grendel/chainaddr/pkg/chain"
)

// Address validates a candidate address against one chain's rules. It is
// pure and synchronous; domain names are the resolver's concern and fail
// here like any other malformed address.
func Address(candidate string, id chain.ID) Result {
	addr := strings.TrimSpace(candidate)
	if addr == "" {
		return invalid(id, KindFormat, "empty address")
	}

	switch id {
	case chain.Bitcoin, chain.BitcoinTestnet, chain.Litecoin:
		return validateBitcoinFamily(addr, id)
	case chain.Ethereum, chain.EthereumSepolia:
		return validateEthereum(addr, id)
	case chain.Solana:
		return validateSolana(addr, id)
	case chain.XRP:
		return validateRipple(addr, id)
	default:
		return invalid(id, KindUnsupportedChain, "unknown chain "+string(id))
	}
}

// IsValidFormat is the boolean convenience form of Address.
func IsValidFormat(candidate string, id chain.ID) bool {
	return Address(candidate, id).Valid
}
