// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package settlement

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/pkg/cycle"
	"github.com/insolar/flightsurety/observability"
)

// Subscriber is the part of the bus the dispatcher reads from.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Sink pays a committed transfer out of the node.
type Sink interface {
	Send(ctx context.Context, height uint64, t ledger.Transfer) error
}

// LogSink writes payout orders to the log, where the signing gateway in front
// of the node picks them up.
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Send(_ context.Context, height uint64, t ledger.Transfer) error {
	s.log.WithFields(logrus.Fields{
		"from":   t.From.Hex(),
		"to":     t.To.Hex(),
		"amount": t.Amount.String(),
		"height": height,
	}).Info("payout order")
	return nil
}

type dispatcherMetrics struct {
	dispatched prometheus.Counter
	failed     prometheus.Counter
}

// Dispatcher hands every settlement order on the bus to a Sink. Orders are
// acked after the sink accepted them or gave up; a lost order is logged and
// counted.
type Dispatcher struct {
	bus     Subscriber
	sink    Sink
	cfg     configuration.Settlement
	log     *logrus.Logger
	metrics dispatcherMetrics

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(cfg configuration.Settlement, obs *observability.Observability, bus Subscriber, sink Sink) *Dispatcher {
	return &Dispatcher{
		bus:  bus,
		sink: sink,
		cfg:  cfg,
		log:  obs.Log(),
		metrics: dispatcherMetrics{
			dispatched: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_settled_transfers_total",
				Help: "Number of transfers handed to the payout sink.",
			}),
			failed: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_settlement_failed_total",
				Help: "Number of transfers the payout sink did not accept.",
			}),
		},
	}
}

func (d *Dispatcher) Start(ctx context.Context) error {
	ctx, d.cancel = context.WithCancel(ctx)
	orders, err := d.bus.Subscribe(ctx, ledger.SettlementsTopic)
	if err != nil {
		d.cancel()
		return errors.Wrap(err, "failed to subscribe to settlements")
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for msg := range orders {
			d.dispatch(ctx, msg)
			msg.Ack()
		}
	}()
	return nil
}

// Stop cancels the subscription and waits for the order in flight.
func (d *Dispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context, msg *message.Message) {
	log := d.log.WithField("height", msg.Metadata.Get(ledger.MetaHeight))
	height, err := ledger.MessageHeight(msg)
	if err != nil {
		d.metrics.failed.Inc()
		log.Error(err)
		return
	}
	t, err := ledger.DecodeTransfer(msg)
	if err != nil {
		d.metrics.failed.Inc()
		log.Error(err)
		return
	}
	err = cycle.UntilConnectionError(ctx, func() error {
		return d.sink.Send(ctx, height, t)
	}, d.cfg.AttemptInterval, d.cfg.Attempts, log)
	if err != nil {
		d.metrics.failed.Inc()
		log.WithField("to", t.To.Hex()).Error(errors.Wrap(err, "failed to pay out transfer"))
		return
	}
	d.metrics.dispatched.Inc()
}
