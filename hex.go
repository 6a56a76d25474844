package siphash

import "fmt"

// HexString formats sum as exactly 16 lowercase hex digits, zero padded on
// the left. Fixed-width output keeps sums column-aligned and lets them be
// compared as strings.
func HexString(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// HexStringUpper is HexString with uppercase digits.
func HexStringUpper(sum uint64) string {
	return fmt.Sprintf("%016X", sum)
}
