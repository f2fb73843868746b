// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package settlement

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/ledger/ledgertest"
)

var (
	pool      = ledger.ModuleAddress("escrow")
	passenger = ledgertest.Addr(0x20)
)

type order struct {
	height   uint64
	transfer ledger.Transfer
}

type recordingSink struct {
	mu     sync.Mutex
	orders []order
	fails  []error
}

func (s *recordingSink) Send(_ context.Context, height uint64, t ledger.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.fails) > 0 {
		err := s.fails[0]
		s.fails = s.fails[1:]
		return err
	}
	s.orders = append(s.orders, order{height: height, transfer: t})
	return nil
}

func (s *recordingSink) failWith(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails = append(s.fails, errs...)
}

func (s *recordingSink) received() []order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order(nil), s.orders...)
}

type fixture struct {
	bus        *ledger.Bus
	sink       *recordingSink
	dispatcher *Dispatcher
	exec       *ledger.Executor
}

func newFixture(t *testing.T) *fixture {
	obs := ledgertest.Observability()
	bus := ledger.NewBus(obs.Log(), 0)
	sink := &recordingSink{}
	d := NewDispatcher(configuration.Settlement{
		Attempts:        3,
		AttemptInterval: time.Millisecond,
	}, obs, bus, sink)
	require.NoError(t, d.Start(context.Background()))

	exec := ledger.NewExecutor(obs, ledger.NewMemoryState(), ledger.NewHashChain([]byte(t.Name())), nil, bus)
	return &fixture{bus: bus, sink: sink, dispatcher: d, exec: exec}
}

func (f *fixture) stop() {
	f.dispatcher.Stop()
	_ = f.bus.Close()
}

func (f *fixture) pay(amounts ...int64) (*ledger.Receipt, error) {
	return f.exec.Execute(context.Background(), "pay", passenger, nil, func(call *ledger.Call) error {
		for _, a := range amounts {
			call.Transfer(pool, passenger, ledger.Wei(a))
		}
		return nil
	})
}

func TestDispatcher(t *testing.T) {
	t.Run("pays_committed_transfers", func(t *testing.T) {
		f := newFixture(t)
		defer f.stop()

		receipt, err := f.pay(7, 8)
		require.NoError(t, err)

		orders := f.sink.received()
		require.Len(t, orders, 2)
		for i, want := range []int64{7, 8} {
			require.Equal(t, receipt.Block.Height, orders[i].height)
			require.Equal(t, passenger, orders[i].transfer.To)
			require.Equal(t, pool, orders[i].transfer.From)
			require.Equal(t, 0, ledger.Wei(want).Cmp(orders[i].transfer.Amount))
		}
		require.Equal(t, 2.0, testutil.ToFloat64(f.dispatcher.metrics.dispatched))
	})

	t.Run("connection_error_retried", func(t *testing.T) {
		f := newFixture(t)
		defer f.stop()

		f.sink.failWith(errors.New("connection refused"), errors.New("connection refused"))
		_, err := f.pay(1)
		require.NoError(t, err)
		require.Len(t, f.sink.received(), 1)
		require.Zero(t, testutil.ToFloat64(f.dispatcher.metrics.failed))
	})

	t.Run("rejected_order_counted", func(t *testing.T) {
		f := newFixture(t)
		defer f.stop()

		f.sink.failWith(errors.New("recipient blocked"))
		_, err := f.pay(1)
		require.NoError(t, err)
		require.Empty(t, f.sink.received())
		require.Equal(t, 1.0, testutil.ToFloat64(f.dispatcher.metrics.failed))
	})

	t.Run("stopped_dispatcher_fails_settlement", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.Stop()
		defer f.bus.Close()

		deadline := time.Now().Add(time.Second)
		for f.bus.Subscribers(ledger.SettlementsTopic) != 0 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		receipt, err := f.pay(5)
		require.Error(t, err)
		require.Equal(t, ledger.ErrNoSettlementConsumer, errors.Cause(err))
		require.Len(t, receipt.Transfers, 1)
	})
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	err := NewLogSink(log).Send(context.Background(), 12, ledger.Transfer{
		From:   pool,
		To:     passenger,
		Amount: ledger.Wei(42),
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"amount":"42"`)
	require.Contains(t, buf.String(), passenger.Hex())
	require.Contains(t, buf.String(), `"height":12`)
}
