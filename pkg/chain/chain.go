package chain

// chain.go - Supported chain identifiers and the per-chain constant tables
// (version bytes, bech32 HRPs, resolution tickers) that drive validation.

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a supported chain/network combination.
type ID string

// Supported chains. Testnets are separate IDs because they use distinct
// version-byte tables and HRPs.
const (
	Bitcoin         ID = "bitcoin"
	BitcoinTestnet  ID = "bitcoin-testnet"
	Litecoin        ID = "litecoin"
	Ethereum        ID = "ethereum"
	EthereumSepolia ID = "ethereum-sepolia"
	Solana          ID = "solana"
	XRP             ID = "xrp"
)

// All lists every supported chain ID.
var All = []ID{Bitcoin, BitcoinTestnet, Litecoin, Ethereum, EthereumSepolia, Solana, XRP}

// ErrUnknownChain is returned by Parse for identifiers outside the closed set.
var ErrUnknownChain = errors.New("unknown chain")

// Parse maps a free-form chain identifier onto the closed ID set.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChain, s)
}

// IsEVM reports whether the chain uses Ethereum-style hex addresses.
func (id ID) IsEVM() bool {
	return id == Ethereum || id == EthereumSepolia
}

// VersionBytes maps Base58Check chains to their acceptable leading version
// bytes. Bitcoin mainnet: P2PKH 0x00, P2SH 0x05. Testnet: 0x6f, 0xc4.
// Litecoin: P2PKH 0x30, P2SH 0x32 plus the legacy 0x05 P2SH prefix.
var VersionBytes = map[ID][]byte{
	Bitcoin:        {0x00, 0x05},
	BitcoinTestnet: {0x6f, 0xc4},
	Litecoin:       {0x30, 0x32, 0x05},
}

// HRP maps segwit-capable chains to the human-readable part of their
// bech32 addresses.
var HRP = map[ID]string{
	Bitcoin:        "bc",
	BitcoinTestnet: "tb",
	Litecoin:       "ltc",
}

// Ticker maps mainnet chains to the currency ticker used by the Unstoppable
// Domains records schema (crypto.<TICKER>.address). Testnets have no entry:
// domain records point at mainnet addresses only.
var Ticker = map[ID]string{
	Bitcoin:  "BTC",
	Ethereum: "ETH",
	Litecoin: "LTC",
	Solana:   "SOL",
	XRP:      "XRP",
}
