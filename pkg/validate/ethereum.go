package validate

import (
	"fmt"
	"strings"

	"github.com/grendel/chainaddr/pkg/chain"
)

// validateEthereum checks an Ethereum-family address: 0x prefix, 40 hex
// characters, and the EIP-55 checksum when the input is mixed-case.
// Single-case inputs carry no checksum information and are accepted on
// format alone. Sepolia uses the same address format as mainnet.
func validateEthereum(addr string, id chain.ID) Result {
	if len(addr) < 2 || addr[0] != '0' || (addr[1] != 'x' && addr[1] != 'X') {
		return invalid(id, KindFormat, "missing 0x prefix")
	}
	if len(addr) != 42 {
		return invalid(id, KindFormat, fmt.Sprintf("expected 42 characters, got %d", len(addr)))
	}
	body := addr[2:]
	if !isHexBody(body) {
		return invalid(id, KindFormat, "address body is not hexadecimal")
	}

	checksummed := ToChecksumAddress(addr)
	if isMixedCase(body) && "0x"+body != checksummed {
		return invalidErr(id, &ValidationError{
			Kind:       KindChecksum,
			Message:    "mixed-case address fails the EIP-55 checksum",
			Suggestion: checksummed,
		})
	}

	res := valid(id, "0x"+strings.ToLower(body))
	res.ChecksumAddress = checksummed
	return res
}
