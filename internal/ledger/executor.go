// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/observability"
)

// Publisher receives the events of committed calls, in commit order.
type Publisher interface {
	Publish(ctx context.Context, block Block, events []Event) error
}

// Settler performs outbound transfers of committed calls.
type Settler interface {
	Settle(ctx context.Context, block Block, transfers []Transfer) error
}

// Receipt describes what a committed call produced.
type Receipt struct {
	Block     Block
	Events    []Event
	Transfers []Transfer
}

type executorMetrics struct {
	committed prometheus.Counter
	rejected  prometheus.Counter
	failed    prometheus.Counter
	transfers prometheus.Counter
	height    prometheus.Gauge
}

// Executor applies calls one at a time, each inside its own state transaction.
type Executor struct {
	mu        sync.Mutex
	state     State
	chain     Chain
	publisher Publisher
	settler   Settler
	now       func() time.Time
	log       *logrus.Logger
	metrics   executorMetrics
}

func NewExecutor(obs *observability.Observability, state State, chain Chain, publisher Publisher, settler Settler) *Executor {
	return &Executor{
		state:     state,
		chain:     chain,
		publisher: publisher,
		settler:   settler,
		now:       time.Now,
		log:       obs.Log(),
		metrics: executorMetrics{
			committed: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_calls_committed_total",
				Help: "Number of calls applied to the ledger state.",
			}),
			rejected: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_calls_rejected_total",
				Help: "Number of calls rejected by a precondition.",
			}),
			failed: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_calls_failed_total",
				Help: "Number of calls aborted by an infrastructure error.",
			}),
			transfers: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_transfers_total",
				Help: "Number of outbound transfers handed to settlement.",
			}),
			height: obs.Gauge(prometheus.GaugeOpts{
				Name: "flightsurety_block_height",
				Help: "Height of the last applied block.",
			}),
		},
	}
}

// SetClock replaces the block time source.
func (e *Executor) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Execute applies fn as a call from caller carrying value. Either everything fn
// wrote is committed, or nothing is. Events and transfers leave the executor
// only after commit.
func (e *Executor) Execute(
	ctx context.Context,
	name string,
	caller Address,
	value *big.Int,
	fn func(*Call) error,
) (*Receipt, error) {
	if value != nil && value.Sign() < 0 {
		return nil, ErrNegativeValue
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.log.WithFields(logrus.Fields{
		"call":   name,
		"caller": caller.Hex(),
	})

	block := Block{
		Height: e.chain.Advance(caller.Bytes()),
		Time:   e.now(),
	}
	e.metrics.height.Set(float64(block.Height))

	fx := &effects{}
	err := e.state.Update(func(txn Txn) error {
		return fn(&Call{
			ctx:     ctx,
			caller:  caller,
			value:   copyAmount(value),
			block:   block,
			txn:     txn,
			entropy: e.chain,
			fx:      fx,
		})
	})
	if err != nil {
		if r, ok := AsRejection(err); ok {
			e.metrics.rejected.Inc()
			log.WithField("code", r.Code).Debugf("call rejected: %s", r.Message)
			return nil, err
		}
		e.metrics.failed.Inc()
		log.Error(errors.Wrap(err, "call failed"))
		return nil, errors.Wrapf(err, "failed to apply %s", name)
	}
	e.metrics.committed.Inc()
	log.WithField("height", block.Height).Debug("call committed")

	receipt := &Receipt{
		Block:     block,
		Events:    fx.events,
		Transfers: fx.transfers,
	}

	if e.publisher != nil && len(receipt.Events) > 0 {
		if err := e.publisher.Publish(ctx, block, receipt.Events); err != nil {
			log.Error(errors.Wrap(err, "failed to publish events"))
		}
	}
	if len(receipt.Transfers) > 0 {
		e.metrics.transfers.Add(float64(len(receipt.Transfers)))
		if e.settler == nil {
			return receipt, errors.New("no settler configured for outbound transfers")
		}
		if err := e.settler.Settle(ctx, block, receipt.Transfers); err != nil {
			return receipt, errors.Wrap(err, "call committed but transfers were not settled")
		}
	}
	return receipt, nil
}

// View runs fn against committed state. Writes are rejected.
func (e *Executor) View(ctx context.Context, caller Address, fn func(*Call) error) error {
	return e.state.View(func(r Reader) error {
		return fn(&Call{
			ctx:     ctx,
			caller:  caller,
			value:   new(big.Int),
			block:   Block{Height: e.chain.Height(), Time: time.Now()},
			txn:     readOnlyTxn{r},
			entropy: e.chain,
			fx:      &effects{},
		})
	})
}
