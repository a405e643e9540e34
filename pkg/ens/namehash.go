// Package ens computes ENS namehashes and resolves names through the ENS
// registry and resolver contracts over JSON-RPC.
package ens

import (
	"strings"

	"github.com/grendel/chainaddr/pkg/keccak"
)

// Namehash computes the EIP-137 node for a dotted domain name. Labels are
// hashed right to left over a running 32-byte node:
//
//	node = keccak256(node ++ keccak256(label))
//
// The empty name is the all-zero node.
func Namehash(name string) [32]byte {
	var node [32]byte
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := keccak.Sum256([]byte(labels[i]))
		node = keccak.Sum256(append(node[:], labelHash[:]...))
	}
	return node
}
