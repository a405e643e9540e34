package validate

import (
	"fmt"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/encoding"
)

// validateSolana checks a Solana address: base58 (Bitcoin alphabet),
// 32-44 characters, and a decoded payload of exactly 32 bytes (an ed25519
// public key). Solana addresses carry no checksum.
func validateSolana(addr string, id chain.ID) Result {
	if len(addr) < 32 || len(addr) > 44 {
		return invalid(id, KindFormat, fmt.Sprintf("expected 32-44 characters, got %d", len(addr)))
	}
	decoded, err := encoding.Decode(addr, encoding.BitcoinAlphabet)
	if err != nil {
		return invalid(id, KindFormat, "invalid base58 character")
	}
	if len(decoded) != 32 {
		return invalid(id, KindFormat, fmt.Sprintf("decoded to %d bytes, want 32", len(decoded)))
	}
	return valid(id, addr)
}
