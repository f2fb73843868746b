// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/observability"
)

type recordingPublisher struct {
	blocks []Block
	events []Event
}

func (p *recordingPublisher) Publish(_ context.Context, block Block, events []Event) error {
	p.blocks = append(p.blocks, block)
	p.events = append(p.events, events...)
	return nil
}

type recordingSettler struct {
	transfers []Transfer
	err       error
}

func (s *recordingSettler) Settle(_ context.Context, _ Block, transfers []Transfer) error {
	if s.err != nil {
		return s.err
	}
	s.transfers = append(s.transfers, transfers...)
	return nil
}

func newTestExecutor(t *testing.T) (*Executor, *recordingPublisher, *recordingSettler) {
	cfg := configuration.Default()
	cfg.Log.Level = "error"
	pub := &recordingPublisher{}
	settler := &recordingSettler{}
	exec := NewExecutor(observability.Make(cfg.Log), NewMemoryState(), NewHashChain([]byte("test")), pub, settler)
	exec.SetClock(func() time.Time { return time.Unix(1577836800, 0) })
	return exec, pub, settler
}

func TestExecutor_Execute(t *testing.T) {
	ctx := context.Background()
	module := ModuleAddress("executor-test")
	caller := BytesToAddress([]byte{0x01})
	key := Key(0x01)

	t.Run("commit", func(t *testing.T) {
		exec, pub, settler := newTestExecutor(t)

		receipt, err := exec.Execute(ctx, "commit", caller, Wei(7), func(call *Call) error {
			require.Equal(t, caller, call.Caller())
			require.Equal(t, 0, call.Value().Cmp(Wei(7)))
			call.Emit(module, "Committed", nil)
			call.Transfer(module, caller, Wei(3))
			return call.Store(module).SetFlag(key, true)
		})
		require.NoError(t, err)
		require.Equal(t, uint64(1), receipt.Block.Height)
		require.Equal(t, int64(1577836800), receipt.Block.Time.Unix())
		require.Len(t, receipt.Events, 1)
		require.Equal(t, pub.events, receipt.Events)
		require.Len(t, settler.transfers, 1)
		require.Equal(t, 0, settler.transfers[0].Amount.Cmp(Wei(3)))

		require.NoError(t, exec.View(ctx, caller, func(call *Call) error {
			on, err := call.Store(module).Flag(key)
			require.NoError(t, err)
			require.True(t, on)
			return nil
		}))
	})

	t.Run("rejection_rolls_back", func(t *testing.T) {
		exec, pub, settler := newTestExecutor(t)
		rejection := Reject("test", "rejected")

		receipt, err := exec.Execute(ctx, "reject", caller, nil, func(call *Call) error {
			call.Emit(module, "Dropped", nil)
			call.Transfer(module, caller, Wei(1))
			require.NoError(t, call.Store(module).SetFlag(key, true))
			return errors.Wrap(rejection, "context")
		})
		require.Nil(t, receipt)
		r, ok := AsRejection(err)
		require.True(t, ok)
		require.Equal(t, "test", r.Code)
		require.Empty(t, pub.events)
		require.Empty(t, settler.transfers)

		require.NoError(t, exec.View(ctx, caller, func(call *Call) error {
			on, err := call.Store(module).Flag(key)
			require.NoError(t, err)
			require.False(t, on)
			return nil
		}))
	})

	t.Run("failure_is_not_rejection", func(t *testing.T) {
		exec, _, _ := newTestExecutor(t)
		failure := errors.New("disk is on fire")

		_, err := exec.Execute(ctx, "fail", caller, nil, func(call *Call) error {
			return failure
		})
		require.Error(t, err)
		require.Equal(t, failure, errors.Cause(err))
		_, ok := AsRejection(err)
		require.False(t, ok)
	})

	t.Run("negative_value", func(t *testing.T) {
		exec, _, _ := newTestExecutor(t)
		_, err := exec.Execute(ctx, "negative", caller, big.NewInt(-1), func(call *Call) error {
			t.Fatal("must not run")
			return nil
		})
		require.Equal(t, ErrNegativeValue, err)
	})

	t.Run("settlement_failure_keeps_commit", func(t *testing.T) {
		exec, _, settler := newTestExecutor(t)
		settler.err = errors.New("sink is down")

		receipt, err := exec.Execute(ctx, "settle", caller, nil, func(call *Call) error {
			call.Transfer(module, caller, Wei(1))
			return call.Store(module).SetFlag(key, true)
		})
		require.Error(t, err)
		require.NotNil(t, receipt)
		require.Len(t, receipt.Transfers, 1)

		require.NoError(t, exec.View(ctx, caller, func(call *Call) error {
			on, err := call.Store(module).Flag(key)
			require.NoError(t, err)
			require.True(t, on)
			return nil
		}))
	})

	t.Run("heights_increase", func(t *testing.T) {
		exec, _, _ := newTestExecutor(t)
		for i := uint64(1); i <= 3; i++ {
			receipt, err := exec.Execute(ctx, "noop", caller, nil, func(call *Call) error { return nil })
			require.NoError(t, err)
			require.Equal(t, i, receipt.Block.Height)
		}
	})
}

func TestExecutor_View(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	module := ModuleAddress("executor-test")

	err := exec.View(context.Background(), Address{}, func(call *Call) error {
		require.True(t, IsZero(call.Value()))
		return call.Store(module).SetFlag(Key(0x01), true)
	})
	require.Equal(t, ErrReadOnly, errors.Cause(err))
}

func TestCall_Forward(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	module := ModuleAddress("forward-test")
	caller := BytesToAddress([]byte{0x02})

	receipt, err := exec.Execute(context.Background(), "forward", caller, Ether(1), func(call *Call) error {
		inner := call.Forward(module, call.Value())
		require.Equal(t, module, inner.Caller())
		require.Equal(t, 0, inner.Value().Cmp(Ether(1)))
		inner.Emit(module, "Inner", nil)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, "Inner", receipt.Events[0].Name)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	exec, _, _ := newTestExecutor(t)
	module := ModuleAddress("admin-test")
	admin := NewAdmin(module)
	owner := BytesToAddress([]byte{0x0a})
	stranger := BytesToAddress([]byte{0x0b})

	_, err := exec.Execute(ctx, "pause", owner, nil, func(call *Call) error {
		return admin.SetOperatingStatus(call, false)
	})
	require.Equal(t, ErrNotOwner, err)

	_, err = exec.Execute(ctx, "deploy", owner, nil, admin.Init)
	require.NoError(t, err)
	_, err = exec.Execute(ctx, "deploy", stranger, nil, admin.Init)
	require.Equal(t, ErrAlreadyDeployed, err)

	_, err = exec.Execute(ctx, "pause", stranger, nil, func(call *Call) error {
		return admin.SetOperatingStatus(call, false)
	})
	require.Equal(t, ErrNotOwner, err)

	receipt, err := exec.Execute(ctx, "pause", owner, nil, func(call *Call) error {
		return admin.SetOperatingStatus(call, false)
	})
	require.NoError(t, err)
	require.Equal(t, EventOperatingStatusChanged, receipt.Events[0].Name)

	_, err = exec.Execute(ctx, "guarded", stranger, nil, func(call *Call) error {
		return Require(call, admin.Operational)
	})
	require.Equal(t, ErrNotOperational, err)

	_, err = exec.Execute(ctx, "resume", owner, Wei(1), func(call *Call) error {
		return admin.SetOperatingStatus(call, true)
	})
	require.Equal(t, ErrUnexpectedValue, err)

	_, err = exec.Execute(ctx, "resume", owner, nil, func(call *Call) error {
		return admin.SetOperatingStatus(call, true)
	})
	require.NoError(t, err)
	require.NoError(t, exec.View(ctx, stranger, func(call *Call) error {
		ok, err := admin.IsOperational(call)
		require.NoError(t, err)
		require.True(t, ok)
		return nil
	}))
}
