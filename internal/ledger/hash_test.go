// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t,
			"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
			Keccak256().Hex(),
		)
	})

	t.Run("parts_are_concatenated", func(t *testing.T) {
		require.Equal(t, Keccak256([]byte("ab"), []byte("c")), Keccak256([]byte("abc")))
		require.NotEqual(t, Keccak256([]byte("abc")), Keccak256([]byte("abd")))
	})
}

func TestUint256(t *testing.T) {
	raw := Uint256(0x0102)
	require.Len(t, raw, 32)
	require.Equal(t, byte(0x01), raw[30])
	require.Equal(t, byte(0x02), raw[31])
	for _, b := range raw[:30] {
		require.Zero(t, b)
	}
}

func TestHash_Mod(t *testing.T) {
	h := BytesToHash([]byte{0x01, 0x00})
	require.Equal(t, uint64(256%10), h.Mod(10))
	require.Equal(t, uint64(0), h.Mod(256))
}

func TestAddress(t *testing.T) {
	const hexAddr = "0x627306090abab3a6e1400e9345bc60c78a8bef57"

	t.Run("parse_roundtrip", func(t *testing.T) {
		a, err := ParseAddress(hexAddr)
		require.NoError(t, err)
		require.Equal(t, hexAddr, a.Hex())
		require.False(t, a.IsZero())
	})

	t.Run("without_prefix", func(t *testing.T) {
		a, err := ParseAddress(hexAddr[2:])
		require.NoError(t, err)
		require.Equal(t, hexAddr, a.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseAddress("0x1234")
		require.Error(t, err)
		_, err = ParseAddress("0xzz7306090abab3a6e1400e9345bc60c78a8bef57")
		require.Error(t, err)
	})

	t.Run("text", func(t *testing.T) {
		a, err := ParseAddress(hexAddr)
		require.NoError(t, err)
		text, err := a.MarshalText()
		require.NoError(t, err)
		var b Address
		require.NoError(t, b.UnmarshalText(text))
		require.Equal(t, a, b)
	})

	t.Run("module_addresses_differ", func(t *testing.T) {
		require.NotEqual(t, ModuleAddress("a"), ModuleAddress("b"))
		require.Equal(t, ModuleAddress("a"), ModuleAddress("a"))
	})
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("")
	require.NoError(t, err)
	require.True(t, IsZero(v))

	v, err = ParseAmount("1000000000000000000")
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(Ether(1)))

	_, err = ParseAmount("-1")
	require.Error(t, err)

	_, err = ParseAmount("1.5")
	require.Error(t, err)
}
