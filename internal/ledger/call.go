// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"math/big"
	"time"
)

type Block struct {
	Height uint64
	Time   time.Time
}

// Event is a notification for off-ledger consumers. It is published only after
// the call that emitted it commits.
type Event struct {
	Name    string
	Emitter Address
	Payload interface{}
}

// Transfer moves value out of a module to an external account after commit.
type Transfer struct {
	From   Address  `json:"from"`
	To     Address  `json:"to"`
	Amount *big.Int `json:"amount"`
}

type effects struct {
	events    []Event
	transfers []Transfer
}

// Call is one state transition in flight. Nested module calls made with
// Forward share its transaction and effects.
type Call struct {
	ctx     context.Context
	caller  Address
	value   *big.Int
	block   Block
	txn     Txn
	entropy Entropy
	fx      *effects
}

func (c *Call) Context() context.Context {
	return c.ctx
}

func (c *Call) Caller() Address {
	return c.caller
}

// Value is the amount attached to the call; never nil.
func (c *Call) Value() *big.Int {
	return copyAmount(c.value)
}

func (c *Call) Block() Block {
	return c.block
}

func (c *Call) Entropy() Entropy {
	return c.entropy
}

// Store opens the namespace of the module at addr.
func (c *Call) Store(addr Address) *Store {
	return &Store{txn: c.txn, ns: addr.Bytes()}
}

func (c *Call) Emit(emitter Address, name string, payload interface{}) {
	c.fx.events = append(c.fx.events, Event{Name: name, Emitter: emitter, Payload: payload})
}

// Transfer schedules an outbound transfer. It leaves the ledger only after the
// transaction commits, so state must already reflect the debit.
func (c *Call) Transfer(from, to Address, amount *big.Int) {
	c.fx.transfers = append(c.fx.transfers, Transfer{From: from, To: to, Amount: copyAmount(amount)})
}

// Forward makes a nested call into another module on behalf of self.
func (c *Call) Forward(self Address, value *big.Int) *Call {
	return &Call{
		ctx:     c.ctx,
		caller:  self,
		value:   copyAmount(value),
		block:   c.block,
		txn:     c.txn,
		entropy: c.entropy,
		fx:      c.fx,
	}
}
