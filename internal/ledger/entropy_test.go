// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashChain(t *testing.T) {
	t.Run("window_is_distinct", func(t *testing.T) {
		c := NewHashChain([]byte("genesis"))
		seen := make(map[Hash]bool)
		for depth := uint64(0); depth < SeedWindow; depth++ {
			seed := c.Seed(depth)
			require.False(t, seen[seed], "depth %d repeats", depth)
			seen[seed] = true
		}
	})

	t.Run("advance_shifts_window", func(t *testing.T) {
		c := NewHashChain([]byte("genesis"))
		top := c.Seed(0)
		require.Equal(t, uint64(1), c.Advance([]byte("caller")))
		require.Equal(t, uint64(1), c.Height())
		require.Equal(t, top, c.Seed(1))
		require.NotEqual(t, top, c.Seed(0))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, b := NewHashChain([]byte("x")), NewHashChain([]byte("x"))
		a.Advance([]byte("1"))
		b.Advance([]byte("1"))
		require.Equal(t, a.Seed(0), b.Seed(0))

		a.Advance([]byte("2"))
		b.Advance([]byte("3"))
		require.NotEqual(t, a.Seed(0), b.Seed(0))
	})

	t.Run("depth_wraps", func(t *testing.T) {
		c := NewHashChain([]byte("genesis"))
		require.Equal(t, c.Seed(3), c.Seed(3+SeedWindow))
	})
}
