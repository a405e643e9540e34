// Package encoding implements the address-level string codecs: a Base58 /
// Base58Check codec parameterized by alphabet, and a bech32 prefix validator.
package encoding

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"strings"
)

// Base58 codec errors.
var (
	// ErrInvalidCharacter means the input contains a byte outside the
	// selected alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")

	// ErrChecksum means the Base58Check 4-byte suffix does not match the
	// double-SHA256 of the payload.
	ErrChecksum = errors.New("base58check checksum mismatch")

	// ErrTooShort means the decoded data is shorter than the 4-byte
	// checksum. This is a format failure, not a checksum failure.
	ErrTooShort = errors.New("base58check data too short")
)

// Alphabet is a 58-character Base58 alphabet with an O(1) reverse lookup
// table. The alphabet choice affects decoded byte values; the leading-zero
// rule is the same for all alphabets.
type Alphabet struct {
	chars string
	rev   [128]int8
}

// NewAlphabet builds an Alphabet from a 58-character string.
func NewAlphabet(chars string) *Alphabet {
	if len(chars) != 58 {
		panic("base58 alphabet must have 58 characters")
	}
	a := &Alphabet{chars: chars}
	for i := range a.rev {
		a.rev[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		a.rev[chars[i]] = int8(i)
	}
	return a
}

// Zero returns the alphabet character encoding the value zero.
func (a *Alphabet) Zero() byte { return a.chars[0] }

func (a *Alphabet) index(c byte) int8 {
	if c >= 128 {
		return -1
	}
	return a.rev[c]
}

// BitcoinAlphabet is the Base58 alphabet used by Bitcoin, Litecoin and
// Solana.
var BitcoinAlphabet = NewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

// RippleAlphabet is the XRP Ledger Base58 dialect: the same 58 characters
// in a different order, so every decoded byte value differs from Bitcoin's.
var RippleAlphabet = NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// Decode decodes a Base58 string into bytes using the given alphabet.
// An empty input decodes to an empty slice. Each leading zero-character
// of the alphabet maps to one leading zero byte.
func Decode(input string, alphabet *Alphabet) ([]byte, error) {
	// Multiply-by-58-and-add over a little-endian accumulator. Quadratic in
	// the input length, which is fine for address-sized strings.
	acc := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		v := alphabet.index(input[i])
		if v < 0 {
			return nil, ErrInvalidCharacter
		}
		carry := int(v)
		for j := 0; j < len(acc); j++ {
			carry += int(acc[j]) * 58
			acc[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == alphabet.Zero() {
		zeros++
	}

	out := make([]byte, zeros+len(acc))
	for i, b := range acc {
		out[len(out)-1-i] = b
	}
	return out, nil
}

// Encode encodes bytes into a Base58 string using the given alphabet.
func Encode(input []byte, alphabet *Alphabet) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	// Little-endian base-58 digits.
	digits := make([]byte, 0, len(input)*138/100+1)
	for _, b := range input[zeros:] {
		carry := int(b)
		for j := 0; j < len(digits); j++ {
			carry += int(digits[j]) << 8
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteByte(alphabet.Zero())
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(alphabet.chars[digits[i]])
	}
	return sb.String()
}

// DoubleSHA256 computes SHA256(SHA256(data)), the Base58Check digest.
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// CheckDecode decodes a Base58Check string and verifies its 4-byte
// checksum. It returns the payload including the leading version byte(s),
// without the checksum.
func CheckDecode(input string, alphabet *Alphabet) ([]byte, error) {
	decoded, err := Decode(input, alphabet)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		return nil, ErrTooShort
	}
	payload, suffix := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	if !bytes.Equal(DoubleSHA256(payload)[:4], suffix) {
		return nil, ErrChecksum
	}
	return payload, nil
}

// CheckEncode appends the Base58Check checksum to payload and encodes the
// result. The payload must already carry its version byte(s).
func CheckEncode(payload []byte, alphabet *Alphabet) string {
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, payload...)
	buf = append(buf, DoubleSHA256(payload)[:4]...)
	return Encode(buf, alphabet)
}
