package ens

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RegistryAddress is the ENS registry, deployed at the same address on
// Ethereum mainnet and Sepolia.
var RegistryAddress = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

// 4-byte function selectors used against the registry and resolver.
var (
	selectorResolver = [4]byte{0x01, 0x78, 0xb8, 0xbf} // resolver(bytes32)
	selectorAddr     = [4]byte{0x3b, 0x3b, 0x57, 0xde} // addr(bytes32)
)

// Resolution failures that are about the name, not the transport.
var (
	ErrNoResolver = errors.New("ens: no resolver set for name")
	ErrNoAddress  = errors.New("ens: no address record for name")
)

// Client resolves ENS names against one JSON-RPC endpoint. A Client is
// stateless; each call dials, queries and closes.
type Client struct {
	url string
}

// NewClient returns a Client talking to the given JSON-RPC URL.
func NewClient(url string) *Client {
	return &Client{url: url}
}

// ResolveName maps an ENS name to the address stored in its resolver's
// addr record. A zero resolver or zero address yields ErrNoResolver /
// ErrNoAddress; transport and RPC failures are returned wrapped.
func (c *Client) ResolveName(ctx context.Context, name string) (common.Address, error) {
	node := Namehash(name)

	client, err := rpc.DialContext(ctx, c.url)
	if err != nil {
		return common.Address{}, fmt.Errorf("ens: dialing %s: %w", c.url, err)
	}
	defer client.Close()

	resolverWord, err := c.call(ctx, client, RegistryAddress, selectorResolver, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("ens: querying registry: %w", err)
	}
	resolverAddr := common.BytesToAddress(resolverWord)
	if resolverAddr == (common.Address{}) {
		return common.Address{}, ErrNoResolver
	}

	addrWord, err := c.call(ctx, client, resolverAddr, selectorAddr, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("ens: querying resolver: %w", err)
	}
	resolved := common.BytesToAddress(addrWord)
	if resolved == (common.Address{}) {
		return common.Address{}, ErrNoAddress
	}
	return resolved, nil
}

// call performs one eth_call with calldata of selector ++ node.
func (c *Client) call(ctx context.Context, client *rpc.Client, to common.Address, selector [4]byte, node [32]byte) ([]byte, error) {
	data := make([]byte, 0, 36)
	data = append(data, selector[:]...)
	data = append(data, node[:]...)

	var result hexutil.Bytes
	err := client.CallContext(ctx, &result, "eth_call", map[string]interface{}{
		"to":   to,
		"data": hexutil.Bytes(data),
	}, "latest")
	if err != nil {
		return nil, err
	}
	if len(result) < 32 {
		return nil, fmt.Errorf("short eth_call return: %d bytes", len(result))
	}
	return result, nil
}
