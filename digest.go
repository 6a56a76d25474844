package siphash

import (
	"encoding/binary"
	"hash"
	"io"
)

// A Digest is a streaming SipHash computation. It absorbs input as it
// arrives, so the total length need not be known up front, and produces the
// same sum as the one-shot functions for the same key, rounds and input.
//
// Digest implements hash.Hash64 and io.ByteWriter. Like most hash.Hash
// implementations it is not safe for concurrent use; hash many inputs under
// one key from multiple goroutines with a Container instead.
type Digest struct {
	c, d           int
	v0, v1, v2, v3 uint64
	k0, k1         uint64

	m  uint64 // pending lane, low nx bytes filled
	nx int
	ln byte   // total bytes written mod 256, the padding tag
}

var (
	_ hash.Hash64   = (*Digest)(nil)
	_ io.ByteWriter = (*Digest)(nil)
)

// New returns a Digest computing SipHash-2-4 under key.
func New(key []byte) (*Digest, error) {
	return NewRounds(key, DefaultC, DefaultD)
}

// NewRounds returns a Digest computing SipHash-c-d under key.
func NewRounds(key []byte, c, d int) (*Digest, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if err := checkRounds(c, d); err != nil {
		return nil, err
	}
	h := &Digest{c: c, d: d}
	h.k0, h.k1 = keyLanes(key)
	h.Reset()
	return h, nil
}

// Reset discards all written input, keeping the key and round counts.
func (h *Digest) Reset() {
	h.v0, h.v1, h.v2, h.v3 = seedLanes(h.k0, h.k1)
	h.m, h.nx, h.ln = 0, 0, 0
}

// Size returns the number of bytes Sum appends.
func (h *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (h *Digest) BlockSize() int { return BlockSize }

// putByte feeds one byte into the pending lane, absorbing the lane once it
// holds a full block.
func (h *Digest) putByte(b byte) {
	h.m |= uint64(b) << (8 * uint(h.nx))
	h.nx++
	if h.nx == BlockSize {
		h.v0, h.v1, h.v2, h.v3 = absorb(h.v0, h.v1, h.v2, h.v3, h.m, h.c)
		h.m, h.nx = 0, 0
	}
}

// WriteByte absorbs a single byte. It never returns an error.
func (h *Digest) WriteByte(b byte) error {
	h.ln++
	h.putByte(b)
	return nil
}

// Write absorbs p. It never returns an error.
func (h *Digest) Write(p []byte) (int, error) {
	n := len(p)
	h.ln += byte(n)

	// Top up a partially filled pending lane before taking the block path.
	for h.nx > 0 && len(p) > 0 {
		h.putByte(p[0])
		p = p[1:]
	}

	for len(p) >= BlockSize {
		h.v0, h.v1, h.v2, h.v3 = absorb(h.v0, h.v1, h.v2, h.v3, binary.LittleEndian.Uint64(p), h.c)
		p = p[BlockSize:]
	}

	for _, b := range p {
		h.putByte(b)
	}
	return n, nil
}

// Sum64 returns the hash of everything written so far. It does not change
// the underlying state, so input may keep being written afterwards.
func (h *Digest) Sum64() uint64 {
	return finalize(h.v0, h.v1, h.v2, h.v3, h.m|uint64(h.ln)<<56, h.c, h.d)
}

// Sum appends the current hash, little-endian, to b and returns the
// resulting slice.
func (h *Digest) Sum(b []byte) []byte {
	var sum [Size]byte
	binary.LittleEndian.PutUint64(sum[:], h.Sum64())
	return append(b, sum[:]...)
}
