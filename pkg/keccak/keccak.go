// Package keccak implements Keccak-256 as used by Ethereum: the Keccak-f[1600]
// permutation in a sponge with rate 1088 and the original Keccak padding rule
// (multi-rate pad 0x01...0x80). This is NOT SHA3-256 — NIST's domain
// separation byte is 0x06, and the two hashes disagree on every input.
package keccak

import "encoding/binary"

// rate is the block size in bytes for Keccak-256 (1088-bit rate,
// 512-bit capacity).
const rate = 136

// roundConstants are the 24 iota-step constants of Keccak-f[1600].
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotOffsets holds the rho-step rotation amount for each lane visited in
// pi-step order, and piLane the destination lane index for each step.
// Lanes are stored flat: index = x + 5*y.
var rotOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl(v uint64, n uint) uint64 {
	return v<<n | v>>(64-n)
}

// permute applies the 24-round Keccak-f[1600] permutation in place.
func permute(a *[25]uint64) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ rotl(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho + pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piLane[i]
			bc[0] = a[j]
			a[j] = rotl(t, rotOffsets[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}

// absorbBlock XORs one rate-sized block into the first 17 lanes as
// little-endian 64-bit words.
func absorbBlock(a *[25]uint64, block []byte) {
	for i := 0; i < rate/8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

// Sum256 returns the Keccak-256 digest of data. The state is local to the
// call; Sum256 is pure and safe for concurrent use.
func Sum256(data []byte) [32]byte {
	var a [25]uint64

	for len(data) >= rate {
		absorbBlock(&a, data[:rate])
		permute(&a)
		data = data[rate:]
	}

	// Final block: original Keccak multi-rate padding. A 0x01 byte follows
	// the message, the last byte of the block is ORed with 0x80. When the
	// remainder is rate-1 bytes both land on the same byte (0x81).
	var block [rate]byte
	copy(block[:], data)
	block[len(data)] = 0x01
	block[rate-1] |= 0x80
	absorbBlock(&a, block[:])
	permute(&a)

	// Squeeze: the digest fits in a single block, so it is just the first
	// four lanes, little-endian.
	var digest [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(digest[i*8:], a[i])
	}
	return digest
}

// Hash256 is Sum256 returning a slice, convenient for hash chaining.
func Hash256(data []byte) []byte {
	d := Sum256(data)
	return d[:]
}
