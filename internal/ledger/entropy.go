// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"sync"
)

// SeedWindow is how many past block seeds the host keeps addressable.
const SeedWindow = 256

// Entropy is the host's pseudo-random seed source.
type Entropy interface {
	// Seed returns the seed of the block depth blocks below the current one.
	Seed(depth uint64) Hash
}

// Chain is the host's block sequence: one block per applied call.
type Chain interface {
	Entropy
	// Advance opens the next block, mixing extra into its seed, and returns its height.
	Advance(extra ...[]byte) uint64
	Height() uint64
}

// HashChain derives every block seed from the previous one. The window is
// pre-filled from the genesis seed so every depth below SeedWindow is distinct.
type HashChain struct {
	mu     sync.Mutex
	height uint64
	window [SeedWindow]Hash
}

func NewHashChain(genesis []byte) *HashChain {
	c := &HashChain{}
	seed := Keccak256(genesis)
	// Pre-history occupies the slots "below" height 0.
	for i := SeedWindow - 1; i >= 0; i-- {
		c.window[i] = seed
		seed = Keccak256(seed.Bytes())
	}
	c.window[0] = seed
	return c
}

func (c *HashChain) Advance(extra ...[]byte) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.window[c.height%SeedWindow]
	c.height++
	parts := append([][]byte{prev.Bytes(), Uint256(c.height)}, extra...)
	c.window[c.height%SeedWindow] = Keccak256(parts...)
	return c.height
}

func (c *HashChain) Seed(depth uint64) Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	depth %= SeedWindow
	return c.window[(c.height+SeedWindow-depth)%SeedWindow]
}

func (c *HashChain) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.height
}
