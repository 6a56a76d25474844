package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whitfin/siphash"
)

func TestResolveKeyHex(t *testing.T) {
	key, err := resolveKey("000102030405060708090a0b0c0d0e0f", "", "")
	require.NoError(t, err)
	require.Len(t, key, siphash.KeySize)
	for i, b := range key {
		require.Equal(t, byte(i), b)
	}

	// Uppercase hex is accepted too.
	upper, err := resolveKey("000102030405060708090A0B0C0D0E0F", "", "")
	require.NoError(t, err)
	require.Equal(t, key, upper)
}

func TestResolveKeyHexErrors(t *testing.T) {
	_, err := resolveKey("not hex at all", "", "")
	require.Error(t, err)

	_, err = resolveKey("00010203", "", "")
	require.Error(t, err, "short keys must be rejected")

	_, err = resolveKey("000102030405060708090a0b0c0d0e0f10", "", "")
	require.Error(t, err, "long keys must be rejected")
}

func TestResolveKeyPassphrase(t *testing.T) {
	key1, err := resolveKey("", "correct horse", "battery staple")
	require.NoError(t, err)
	require.Len(t, key1, siphash.KeySize)

	// Derivation is deterministic for the same passphrase and salt.
	key2, err := resolveKey("", "correct horse", "battery staple")
	require.NoError(t, err)
	require.Equal(t, key1, key2)

	// A different salt yields a different key.
	key3, err := resolveKey("", "correct horse", "other salt")
	require.NoError(t, err)
	require.NotEqual(t, key1, key3)
}

func TestResolveKeyFlagCombinations(t *testing.T) {
	_, err := resolveKey("", "", "")
	require.Error(t, err, "some key material is required")

	_, err = resolveKey("", "passphrase", "")
	require.Error(t, err, "passphrase mode requires a salt")

	_, err = resolveKey("000102030405060708090a0b0c0d0e0f", "passphrase", "salt")
	require.Error(t, err, "key and passphrase together are ambiguous")
}

func TestSumInput(t *testing.T) {
	data := []byte("hello world, this is a longer input spanning several blocks")
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, data, 0644))

	key, err := resolveKey("000102030405060708090a0b0c0d0e0f", "", "")
	require.NoError(t, err)

	got, err := sumInput(path, key, siphash.DefaultC, siphash.DefaultD)
	require.NoError(t, err)

	want, err := siphash.Sum64(key, data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSumInputErrors(t *testing.T) {
	key, err := resolveKey("000102030405060708090a0b0c0d0e0f", "", "")
	require.NoError(t, err)

	_, err = sumInput(filepath.Join(t.TempDir(), "missing"), key, 2, 4)
	require.Error(t, err)

	_, err = sumInput("-", key[:5], 2, 4)
	require.Error(t, err, "bad keys must surface before any reads")

	_, err = sumInput("-", key, 0, 4)
	require.Error(t, err, "bad round counts must surface before any reads")
}
