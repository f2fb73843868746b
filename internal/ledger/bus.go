// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/observability"
)

const (
	EventsTopic      = "flightsurety.events"
	SettlementsTopic = "flightsurety.settlements"

	MetaEvent   = "event"
	MetaEmitter = "emitter"
	MetaHeight  = "height"
	MetaIndex   = "index"
	MetaTime    = "time"
)

// ErrNoSettlementConsumer is returned by Settle while nothing pays transfers out.
var ErrNoSettlementConsumer = errors.New("no subscriber on the settlement topic")

// Bus carries committed events and settlement orders to in-process subscribers.
// Publishing returns once every subscriber acked, so subscribers see messages
// in commit order and must never call back into the executor.
type Bus struct {
	pubsub *gochannel.GoChannel
	log    *logrus.Logger

	mu          sync.Mutex
	subscribers map[string]int
}

func NewBus(log *logrus.Logger, buffer int64) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            buffer,
			BlockPublishUntilSubscriberAck: true,
		}, observability.WatermillLogger(log)),
		log:         log,
		subscribers: make(map[string]int),
	}
}

func (b *Bus) Publish(ctx context.Context, block Block, events []Event) error {
	msgs := make([]*message.Message, 0, len(events))
	for i, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s event", ev.Name)
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set(MetaEvent, ev.Name)
		msg.Metadata.Set(MetaEmitter, ev.Emitter.Hex())
		msg.Metadata.Set(MetaHeight, strconv.FormatUint(block.Height, 10))
		msg.Metadata.Set(MetaIndex, strconv.Itoa(i))
		msg.Metadata.Set(MetaTime, strconv.FormatInt(block.Time.Unix(), 10))
		msg.SetContext(ctx)
		msgs = append(msgs, msg)
	}
	return errors.Wrap(b.pubsub.Publish(EventsTopic, msgs...), "failed to publish events")
}

// Settle hands transfers to whatever pays out on the settlement topic. It fails
// when no one is subscribed, gochannel would drop the orders silently.
func (b *Bus) Settle(ctx context.Context, block Block, transfers []Transfer) error {
	if b.Subscribers(SettlementsTopic) == 0 {
		return ErrNoSettlementConsumer
	}
	msgs := make([]*message.Message, 0, len(transfers))
	for i, t := range transfers {
		payload, err := json.Marshal(t)
		if err != nil {
			return errors.Wrap(err, "failed to encode transfer")
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set(MetaHeight, strconv.FormatUint(block.Height, 10))
		msg.Metadata.Set(MetaIndex, strconv.Itoa(i))
		msg.SetContext(ctx)
		msgs = append(msgs, msg)
	}
	return errors.Wrap(b.pubsub.Publish(SettlementsTopic, msgs...), "failed to publish transfers")
}

// Subscribe delivers topic until ctx is done.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	out, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.subscribers[topic]++
	b.mu.Unlock()
	go func() {
		<-ctx.Done()
		b.mu.Lock()
		b.subscribers[topic]--
		b.mu.Unlock()
	}()
	return out, nil
}

// Subscribers returns the number of live subscriptions to topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subscribers[topic]
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// DecodeTransfer reads a settlement message back into a Transfer.
func DecodeTransfer(msg *message.Message) (Transfer, error) {
	var t Transfer
	err := json.Unmarshal(msg.Payload, &t)
	return t, errors.Wrap(err, "failed to decode transfer")
}

// MessageHeight returns the block height stamped on a bus message.
func MessageHeight(msg *message.Message) (uint64, error) {
	h, err := strconv.ParseUint(msg.Metadata.Get(MetaHeight), 10, 64)
	return h, errors.Wrap(err, "invalid height metadata")
}
