package validate

import (
	"strings"

	"github.com/grendel/chainaddr/pkg/keccak"
)

// ToChecksumAddress returns the EIP-55 mixed-case form of a hex address.
// The input must be "0x"/"0X" plus 40 hex characters; case is ignored.
//
// The rule: keccak256 the lowercased 40-character body as UTF-8 text, then
// uppercase each hex letter whose same-position digest nibble is >= 8.
func ToChecksumAddress(address string) string {
	body := strings.ToLower(trimHexPrefix(address))
	digest := keccak.Sum256([]byte(body))

	out := make([]byte, 42)
	out[0], out[1] = '0', 'x'
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 'a' && c <= 'f' {
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			} else {
				nibble &= 0x0f
			}
			if nibble >= 8 {
				c -= 'a' - 'A'
			}
		}
		out[2+i] = c
	}
	return string(out)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHexBody(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// isMixedCase reports whether s contains both upper- and lowercase letters.
// Digits carry no case information.
func isMixedCase(s string) bool {
	var hasUpper, hasLower bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		}
	}
	return hasUpper && hasLower
}
