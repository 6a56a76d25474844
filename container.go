package siphash

// A Container carries the seeded working lanes for one key so that the key
// schedule is paid once, not per hash. This is the cheapest way to hash many
// inputs under the same key, the typical hash-table arrangement.
//
// Hash never modifies the stored lanes, so a single Container is safe for
// concurrent use by multiple goroutines.
type Container struct {
	c, d           int
	v0, v1, v2, v3 uint64
}

// NewContainer returns a Container computing SipHash-2-4 under key.
func NewContainer(key []byte) (*Container, error) {
	return NewContainerRounds(key, DefaultC, DefaultD)
}

// NewContainerRounds returns a Container computing SipHash-c-d under key.
func NewContainerRounds(key []byte, c, d int) (*Container, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if err := checkRounds(c, d); err != nil {
		return nil, err
	}
	h := &Container{c: c, d: d}
	k0, k1 := keyLanes(key)
	h.v0, h.v1, h.v2, h.v3 = seedLanes(k0, k1)
	return h, nil
}

// Hash returns the SipHash of data under the container's key. The result is
// identical to Sum64Rounds with the same key and round counts.
func (h *Container) Hash(data []byte) uint64 {
	return hashBytes(h.v0, h.v1, h.v2, h.v3, data, h.c, h.d)
}
