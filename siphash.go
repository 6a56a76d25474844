// Package siphash implements the SipHash family of keyed 64-bit hash
// functions with configurable compression and finalization rounds,
// defaulting to SipHash-2-4.
//
// SipHash computes a 64-bit authenticator from a variable-length input and a
// 128-bit secret key. It was designed as a defense for hash tables against
// hash-flooding attacks: fast enough for short inputs while remaining a
// cryptographically keyed pseudorandom function. Without a secret key it is
// not collision resistant, so it is no substitute for a general purpose
// cryptographic hash.
//
// Three entry points cover the usual usage shapes and always agree
// bit-for-bit:
//
//   - Sum64 and Sum64Rounds hash a complete buffer with no retained state.
//   - Container precomputes the key schedule once and may be shared by any
//     number of concurrent Hash calls.
//   - Digest implements hash.Hash64 for input that arrives incrementally.
package siphash

import (
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	// KeySize is the size of a SipHash key in bytes.
	KeySize = 16

	// Size is the size of a SipHash sum in bytes.
	Size = 8

	// BlockSize is the block size of SipHash in bytes.
	BlockSize = 8

	// DefaultC is the compression round count of SipHash-2-4, the variant
	// recommended by the designers.
	DefaultC = 2

	// DefaultD is the finalization round count of SipHash-2-4.
	DefaultD = 4
)

// Initial lane values, from "somepseudorandomlygeneratedbytes".
const (
	iv0 = 0x736f6d6570736575
	iv1 = 0x646f72616e646f6d
	iv2 = 0x6c7967656e657261
	iv3 = 0x7465646279746573
)

// KeySizeError is returned when a key is not exactly KeySize bytes.
type KeySizeError uint

func (k KeySizeError) Error() string {
	return "siphash: invalid key size " + strconv.Itoa(int(k))
}

// RoundCountError is returned when a compression or finalization round count
// is not a positive integer.
type RoundCountError struct {
	C, D int
}

func (r RoundCountError) Error() string {
	return "siphash: round counts must be positive, have c=" +
		strconv.Itoa(r.C) + " d=" + strconv.Itoa(r.D)
}

func checkKey(key []byte) error {
	if len(key) != KeySize {
		return KeySizeError(len(key))
	}
	return nil
}

func checkRounds(c, d int) error {
	if c < 1 || d < 1 {
		return RoundCountError{C: c, D: d}
	}
	return nil
}

// keyLanes splits a validated 16-byte key into its two little-endian halves.
func keyLanes(key []byte) (k0, k1 uint64) {
	return binary.LittleEndian.Uint64(key[0:8]), binary.LittleEndian.Uint64(key[8:16])
}

// seedLanes derives the four initial working lanes from the key halves.
func seedLanes(k0, k1 uint64) (v0, v1, v2, v3 uint64) {
	return iv0 ^ k0, iv1 ^ k1, iv2 ^ k0, iv3 ^ k1
}

// round is a single SipRound over the working lanes.
func round(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v2 += v3
	v1 = bits.RotateLeft64(v1, 13)
	v3 = bits.RotateLeft64(v3, 16)
	v1 ^= v0
	v3 ^= v2
	v0 = bits.RotateLeft64(v0, 32)

	v2 += v1
	v0 += v3
	v1 = bits.RotateLeft64(v1, 17)
	v3 = bits.RotateLeft64(v3, 21)
	v1 ^= v2
	v3 ^= v0
	v2 = bits.RotateLeft64(v2, 32)

	return v0, v1, v2, v3
}

func rounds(v0, v1, v2, v3 uint64, n int) (uint64, uint64, uint64, uint64) {
	for ; n > 0; n-- {
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
	}
	return v0, v1, v2, v3
}

// absorb folds one message lane into the state with c compression rounds.
func absorb(v0, v1, v2, v3, m uint64, c int) (uint64, uint64, uint64, uint64) {
	v3 ^= m
	v0, v1, v2, v3 = rounds(v0, v1, v2, v3, c)
	v0 ^= m
	return v0, v1, v2, v3
}

// tailLane packs the 0..7 trailing input bytes little-endian and puts the
// total input length modulo 256 in the most significant byte.
func tailLane(tail []byte, total int) uint64 {
	m := uint64(total) << 56
	for i, b := range tail {
		m |= uint64(b) << (8 * uint(i))
	}
	return m
}

// finalize absorbs the padded tail lane, flips the finalization domain bits
// and folds the lanes into the sum.
func finalize(v0, v1, v2, v3, tail uint64, c, d int) uint64 {
	v0, v1, v2, v3 = absorb(v0, v1, v2, v3, tail, c)
	v2 ^= 0xff
	v0, v1, v2, v3 = rounds(v0, v1, v2, v3, d)
	return v0 ^ v1 ^ v2 ^ v3
}

// hashBytes runs the full compression and finalization pipeline over data,
// starting from already seeded lanes.
func hashBytes(v0, v1, v2, v3 uint64, data []byte, c, d int) uint64 {
	p := data
	for len(p) >= BlockSize {
		v0, v1, v2, v3 = absorb(v0, v1, v2, v3, binary.LittleEndian.Uint64(p), c)
		p = p[BlockSize:]
	}
	return finalize(v0, v1, v2, v3, tailLane(p, len(data)), c, d)
}

// Sum64 returns the SipHash-2-4 of data under a 16-byte key.
func Sum64(key, data []byte) (uint64, error) {
	return Sum64Rounds(key, data, DefaultC, DefaultD)
}

// Sum64Rounds returns the SipHash-c-d of data under a 16-byte key, with c
// compression rounds per block and d finalization rounds. Hardened variants
// such as SipHash-4-8 trade speed for margin; both counts must be positive.
func Sum64Rounds(key, data []byte, c, d int) (uint64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	if err := checkRounds(c, d); err != nil {
		return 0, err
	}
	k0, k1 := keyLanes(key)
	v0, v1, v2, v3 := seedLanes(k0, k1)
	return hashBytes(v0, v1, v2, v3, data, c, d), nil
}
