package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/encoding"
)

// rippleAccountVersion is the classic-address type byte for XRP accounts.
const rippleAccountVersion byte = 0x00

// validateRipple checks an XRP classic address: 'r' prefix, 25-35
// characters, Base58Check in the Ripple alphabet, and an account-type
// version byte of 0x00 over a 20-byte account ID.
func validateRipple(addr string, id chain.ID) Result {
	if !strings.HasPrefix(addr, "r") {
		return invalid(id, KindFormat, "expected r prefix")
	}
	if len(addr) < 25 || len(addr) > 35 {
		return invalid(id, KindFormat, fmt.Sprintf("expected 25-35 characters, got %d", len(addr)))
	}
	payload, err := encoding.CheckDecode(addr, encoding.RippleAlphabet)
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
	if payload[0] != rippleAccountVersion {
		return invalidErr(id, &ValidationError{
			Kind:             KindVersion,
			Message:          "wrong address type",
			ExpectedVersions: []byte{rippleAccountVersion},
			ActualVersion:    payload[0],
		})
	}
	return valid(id, addr)
}
