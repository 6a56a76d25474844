package siphash

import "testing"

func TestHexString(t *testing.T) {
	cases := []struct {
		sum  uint64
		want string
	}{
		{0xca0017304f874620, "ca0017304f874620"},
		{0x011473413414323e, "011473413414323e"},
		{0x09b57037cd3f8f0c, "09b57037cd3f8f0c"},
		{0, "0000000000000000"},
		{1, "0000000000000001"},
	}
	for _, c := range cases {
		if got := HexString(c.sum); got != c.want {
			t.Fatalf("HexString(%#x) = %q, want %q", c.sum, got, c.want)
		}
	}
}

func TestHexStringUpper(t *testing.T) {
	cases := []struct {
		sum  uint64
		want string
	}{
		{0xca0017304f874620, "CA0017304F874620"},
		{0x09b57037cd3f8f0c, "09B57037CD3F8F0C"},
		{0, "0000000000000000"},
	}
	for _, c := range cases {
		if got := HexStringUpper(c.sum); got != c.want {
			t.Fatalf("HexStringUpper(%#x) = %q, want %q", c.sum, got, c.want)
		}
	}
}
