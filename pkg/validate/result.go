// Package validate implements per-chain address validation behind a single
// dispatch entry point. All functions are pure: no I/O, no shared state,
// safe for concurrent use.
package validate

import (
	"fmt"

	"github.com/grendel/chainaddr/pkg/chain"
)

// ErrorKind is the closed set of validation failure categories. Tests and
// callers branch on the kind, never on message text.
type ErrorKind int

const (
	// KindFormat covers bad prefixes, bad lengths and invalid character sets.
	KindFormat ErrorKind = iota
	// KindChecksum covers Base58Check digest and EIP-55 mismatches.
	KindChecksum
	// KindVersion means a well-formed encoding carrying the wrong
	// network/version byte.
	KindVersion
	// KindNotFound means a domain resolved to nothing or to a zero address.
	KindNotFound
	// KindNetwork covers HTTP/RPC failures, timeouts and malformed responses.
	KindNetwork
	// KindUnsupportedChain means the chain/domain-type combination is not
	// supported.
	KindUnsupportedChain
)

func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindChecksum:
		return "checksum"
	case KindVersion:
		return "version"
	case KindNotFound:
		return "not found"
	case KindNetwork:
		return "network"
	case KindUnsupportedChain:
		return "unsupported chain"
	default:
		return "unknown"
	}
}

// ValidationError is a structured validation failure.
type ValidationError struct {
	Kind    ErrorKind
	Message string

	// Suggestion carries the correctly checksummed address when an EIP-55
	// mismatch is user-correctable.
	Suggestion string

	// ExpectedVersions and ActualVersion are populated for KindVersion.
	ExpectedVersions []byte
	ActualVersion    byte
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Result is the outcome of validating one candidate address.
type Result struct {
	Valid bool
	Chain chain.ID

	// NormalizedAddress is the canonical trimmed form: lowercased for
	// case-insensitive encodings (hex, bech32), verbatim for Base58 chains
	// where letter case is significant.
	NormalizedAddress string

	// ChecksumAddress is the EIP-55 mixed-case form, populated only for
	// Ethereum-family chains.
	ChecksumAddress string

	// DisplayName is the originating domain name when the address came out
	// of a resolution, empty otherwise.
	DisplayName string

	// Err is nil if and only if Valid is true.
	Err *ValidationError
}

func valid(id chain.ID, normalized string) Result {
	return Result{Valid: true, Chain: id, NormalizedAddress: normalized}
}

func invalid(id chain.ID, kind ErrorKind, msg string) Result {
	return Result{Chain: id, Err: &ValidationError{Kind: kind, Message: msg}}
}

func invalidErr(id chain.ID, verr *ValidationError) Result {
	return Result{Chain: id, Err: verr}
}
