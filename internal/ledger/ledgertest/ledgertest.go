// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

// Package ledgertest provides executors and doubles for module tests.
package ledgertest

import (
	"context"
	"sync"
	"testing"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/observability"
)

// Publisher records published events.
type Publisher struct {
	mu     sync.Mutex
	events []ledger.Event
}

func (p *Publisher) Publish(_ context.Context, _ ledger.Block, events []ledger.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *Publisher) Events() []ledger.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ledger.Event(nil), p.events...)
}

// Named returns the recorded events called name.
func (p *Publisher) Named(name string) []ledger.Event {
	var out []ledger.Event
	for _, ev := range p.Events() {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

// Settler records transfers, or fails with Err when set.
type Settler struct {
	mu        sync.Mutex
	transfers []ledger.Transfer
	Err       error
}

func (s *Settler) Settle(_ context.Context, _ ledger.Block, transfers []ledger.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.transfers = append(s.transfers, transfers...)
	return nil
}

func (s *Settler) Transfers() []ledger.Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ledger.Transfer(nil), s.transfers...)
}

// Chain is a block sequence with scripted seeds. Without a script every
// (height, depth) pair gets its own hash.
type Chain struct {
	mu     sync.Mutex
	height uint64
	Seeds  []ledger.Hash
}

func (c *Chain) Advance(...[]byte) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height++
	return c.height
}

func (c *Chain) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *Chain) Seed(depth uint64) ledger.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Seeds) > 0 {
		return c.Seeds[depth%uint64(len(c.Seeds))]
	}
	return ledger.Keccak256(ledger.Uint256(c.height), ledger.Uint256(depth))
}

type Env struct {
	Executor  *ledger.Executor
	Publisher *Publisher
	Settler   *Settler
}

func Observability() *observability.Observability {
	cfg := configuration.Default()
	cfg.Log.Level = "error"
	return observability.Make(cfg.Log)
}

// New builds an executor over fresh in-memory state and a hash chain seeded by the test name.
func New(t testing.TB) *Env {
	return NewWithChain(t, ledger.NewHashChain([]byte(t.Name())))
}

func NewWithChain(t testing.TB, chain ledger.Chain) *Env {
	env := &Env{
		Publisher: &Publisher{},
		Settler:   &Settler{},
	}
	env.Executor = ledger.NewExecutor(Observability(), ledger.NewMemoryState(), chain, env.Publisher, env.Settler)
	return env
}

// Addr makes a readable test address ending in n.
func Addr(n byte) ledger.Address {
	return ledger.BytesToAddress([]byte{0xaa, n})
}
