// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	bus := NewBus(log, 16)
	defer bus.Close()

	events, err := bus.Subscribe(ctx, EventsTopic)
	require.NoError(t, err)
	settlements, err := bus.Subscribe(ctx, SettlementsTopic)
	require.NoError(t, err)

	module := ModuleAddress("bus-test")
	passenger := BytesToAddress([]byte{0x03})
	block := Block{Height: 9, Time: time.Unix(100, 0)}

	t.Run("events", func(t *testing.T) {
		published := make(chan error, 1)
		go func() {
			published <- bus.Publish(ctx, block, []Event{
				{Name: "First", Emitter: module, Payload: map[string]int{"n": 1}},
				{Name: "Second", Emitter: module, Payload: map[string]int{"n": 2}},
			})
		}()

		for i, name := range []string{"First", "Second"} {
			msg := <-events
			require.Equal(t, name, msg.Metadata.Get(MetaEvent))
			require.Equal(t, module.Hex(), msg.Metadata.Get(MetaEmitter))
			height, err := MessageHeight(msg)
			require.NoError(t, err)
			require.Equal(t, uint64(9), height)

			var payload map[string]int
			require.NoError(t, json.Unmarshal(msg.Payload, &payload))
			require.Equal(t, i+1, payload["n"])
			msg.Ack()
		}
		require.NoError(t, <-published)
	})

	t.Run("settlements", func(t *testing.T) {
		settled := make(chan error, 1)
		go func() {
			settled <- bus.Settle(ctx, block, []Transfer{
				{From: module, To: passenger, Amount: Ether(2)},
			})
		}()

		msg := <-settlements
		transfer, err := DecodeTransfer(msg)
		require.NoError(t, err)
		require.Equal(t, module, transfer.From)
		require.Equal(t, passenger, transfer.To)
		require.Equal(t, 0, transfer.Amount.Cmp(Ether(2)))
		msg.Ack()
		require.NoError(t, <-settled)
	})

	t.Run("settle_without_consumer", func(t *testing.T) {
		lonely := NewBus(log, 16)
		defer lonely.Close()
		err := lonely.Settle(ctx, block, []Transfer{{From: module, To: passenger, Amount: Ether(1)}})
		require.Equal(t, ErrNoSettlementConsumer, err)

		subCtx, unsubscribe := context.WithCancel(ctx)
		_, err = lonely.Subscribe(subCtx, SettlementsTopic)
		require.NoError(t, err)
		require.Equal(t, 1, lonely.Subscribers(SettlementsTopic))
		unsubscribe()
		deadline := time.Now().Add(time.Second)
		for lonely.Subscribers(SettlementsTopic) != 0 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		require.Zero(t, lonely.Subscribers(SettlementsTopic))
	})
}
