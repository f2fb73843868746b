// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package projection

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/models"
	"github.com/insolar/flightsurety/internal/pkg/cycle"
	"github.com/insolar/flightsurety/observability"
)

// Subscriber is the part of the bus the projector reads from.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

type projectorMetrics struct {
	projected prometheus.Counter
	skipped   prometheus.Counter
	failed    prometheus.Counter
}

// Projector copies committed events into Storage. Every message is acked,
// a failed write is logged and counted, never redelivered.
type Projector struct {
	bus     Subscriber
	storage Storage
	cfg     configuration.DB
	log     *logrus.Logger
	metrics projectorMetrics

	handlers map[string]handler

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type handler func(meta eventMeta, payload []byte) error

type eventMeta struct {
	height int64
	time   int64
}

func NewProjector(cfg configuration.DB, obs *observability.Observability, bus Subscriber, storage Storage) *Projector {
	p := &Projector{
		bus:     bus,
		storage: storage,
		cfg:     cfg,
		log:     obs.Log(),
		metrics: projectorMetrics{
			projected: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_projection_events_total",
				Help: "Number of events written to the projection.",
			}),
			skipped: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_projection_skipped_total",
				Help: "Number of events the projection does not store.",
			}),
			failed: obs.Counter(prometheus.CounterOpts{
				Name: "flightsurety_projection_failed_total",
				Help: "Number of events that could not be written to the projection.",
			}),
		},
	}
	p.handlers = map[string]handler{
		coordinator.EventAirlineRegistered: p.airlineRegistered,
		coordinator.EventAirlineVoted:      p.airlineVoted,
		coordinator.EventFlightRegistered:  p.flightRegistered,
		coordinator.EventOracleRegistered:  p.oracleRegistered,
		coordinator.EventOracleRequest:     p.oracleRequest,
		coordinator.EventOracleReport:      p.oracleReport,
		coordinator.EventFlightStatusInfo:  p.flightStatusInfo,
		escrow.EventAirlineFunded:          p.airlineFunded,
		escrow.EventInsurancePurchased:     p.insurancePurchased,
		escrow.EventInsureeCredited:        p.insureeCredited,
		escrow.EventInsuranceTerminated:    p.insuranceTerminated,
		escrow.EventCreditWithdrawn:        p.creditWithdrawn,
	}
	return p
}

func (p *Projector) Start(ctx context.Context) error {
	ctx, p.cancel = context.WithCancel(ctx)

	events, err := p.bus.Subscribe(ctx, ledger.EventsTopic)
	if err != nil {
		p.cancel()
		return errors.Wrap(err, "failed to subscribe to events")
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for msg := range events {
			p.project(ctx, msg)
			msg.Ack()
		}
	}()
	return nil
}

// Stop cancels the subscriptions and waits for in-flight messages.
func (p *Projector) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
}

func (p *Projector) project(ctx context.Context, msg *message.Message) {
	name := msg.Metadata.Get(ledger.MetaEvent)
	log := p.log.WithFields(logrus.Fields{
		"event":  name,
		"height": msg.Metadata.Get(ledger.MetaHeight),
	})

	h, ok := p.handlers[name]
	if !ok {
		p.metrics.skipped.Inc()
		log.Debug("event is not projected")
		return
	}
	meta, err := readMeta(msg)
	if err != nil {
		p.metrics.failed.Inc()
		log.Error(err)
		return
	}

	err = cycle.UntilConnectionError(ctx, func() error {
		return h(meta, msg.Payload)
	}, p.cfg.AttemptInterval, p.cfg.Attempts, log)
	if err != nil {
		p.metrics.failed.Inc()
		log.Error(errors.Wrap(err, "failed to project event"))
		return
	}
	p.metrics.projected.Inc()
	log.Debug("event projected")
}

func readMeta(msg *message.Message) (eventMeta, error) {
	height, err := ledger.MessageHeight(msg)
	if err != nil {
		return eventMeta{}, err
	}
	ts, err := strconv.ParseInt(msg.Metadata.Get(ledger.MetaTime), 10, 64)
	if err != nil {
		return eventMeta{}, errors.Wrap(err, "invalid time metadata")
	}
	return eventMeta{height: int64(height), time: ts}, nil
}

func decode(payload []byte, v interface{}) error {
	return errors.Wrapf(json.Unmarshal(payload, v), "failed to decode %T", v)
}

func (p *Projector) airlineRegistered(meta eventMeta, payload []byte) error {
	var ev coordinator.AirlineRegistered
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.SaveAirline(&models.Airline{
		Address:          ev.Airline.Hex(),
		Status:           coordinator.Registered.String(),
		Votes:            int64(ev.Votes),
		Sponsor:          ev.Sponsor.Hex(),
		RegisteredHeight: meta.height,
		UpdatedHeight:    meta.height,
	})
}

func (p *Projector) airlineVoted(meta eventMeta, payload []byte) error {
	var ev coordinator.AirlineVoted
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.SaveAirline(&models.Airline{
		Address:       ev.Airline.Hex(),
		Status:        coordinator.InRegistration.String(),
		Votes:         int64(ev.Votes),
		UpdatedHeight: meta.height,
	})
}

func (p *Projector) airlineFunded(meta eventMeta, payload []byte) error {
	var ev escrow.AirlineFunded
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.FundAirline(ev.Airline.Hex(), amount(ev.Amount), meta.height)
}

func (p *Projector) flightRegistered(meta eventMeta, payload []byte) error {
	var ev coordinator.FlightRegistered
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.SaveFlight(&models.Flight{
		FlightKey:     ev.Key.Hex(),
		Airline:       ev.Airline.Hex(),
		Flight:        ev.Flight,
		Departure:     int64(ev.Timestamp),
		Registered:    true,
		UpdatedHeight: meta.height,
	})
}

func (p *Projector) oracleRegistered(meta eventMeta, payload []byte) error {
	var ev coordinator.OracleRegistered
	if err := decode(payload, &ev); err != nil {
		return err
	}
	indexes := make([]int64, len(ev.Indexes))
	for i, idx := range ev.Indexes {
		indexes[i] = int64(idx)
	}
	return p.storage.SaveOracle(&models.Oracle{
		Address:          ev.Oracle.Hex(),
		Indexes:          indexes,
		RegisteredHeight: meta.height,
	})
}

func (p *Projector) oracleRequest(meta eventMeta, payload []byte) error {
	var ev coordinator.OracleRequest
	if err := decode(payload, &ev); err != nil {
		return err
	}
	key := coordinator.RequestKey(ev.Index, ev.Airline, ev.Flight, ev.Timestamp)
	return p.storage.OpenRequest(&models.OracleRequest{
		RequestKey:   key.Hex(),
		Index:        int64(ev.Index),
		Airline:      ev.Airline.Hex(),
		Flight:       ev.Flight,
		Departure:    int64(ev.Timestamp),
		Requester:    ev.Requester.Hex(),
		Open:         true,
		OpenedHeight: meta.height,
	})
}

func (p *Projector) oracleReport(meta eventMeta, payload []byte) error {
	var ev coordinator.OracleReport
	if err := decode(payload, &ev); err != nil {
		return err
	}
	key := coordinator.RequestKey(ev.Index, ev.Airline, ev.Flight, ev.Timestamp)
	return p.storage.InsertReport(&models.OracleReport{
		RequestKey: key.Hex(),
		Oracle:     ev.Oracle.Hex(),
		Status:     int64(ev.Status),
		Height:     meta.height,
	})
}

// flightStatusInfo closes the request and stamps the decided status on the flight.
func (p *Projector) flightStatusInfo(meta eventMeta, payload []byte) error {
	var ev coordinator.FlightStatusInfo
	if err := decode(payload, &ev); err != nil {
		return err
	}
	key := coordinator.RequestKey(ev.Index, ev.Airline, ev.Flight, ev.Timestamp)
	if err := p.storage.CloseRequest(key.Hex(), int64(ev.Status), meta.height); err != nil {
		return err
	}
	return p.storage.SetFlightStatus(&models.Flight{
		FlightKey:       escrow.FlightKey(ev.Airline, ev.Flight, ev.Timestamp).Hex(),
		Airline:         ev.Airline.Hex(),
		Flight:          ev.Flight,
		Departure:       int64(ev.Timestamp),
		Status:          int64(ev.Status),
		StatusUpdatedAt: meta.time,
		UpdatedHeight:   meta.height,
	})
}

func (p *Projector) insurancePurchased(meta eventMeta, payload []byte) error {
	var ev escrow.InsurancePurchased
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.InsertInsurance(&models.Insurance{
		FlightKey:       ev.Key.Hex(),
		Passenger:       ev.Passenger.Hex(),
		Airline:         ev.Airline.Hex(),
		Flight:          ev.Flight,
		Departure:       int64(ev.Timestamp),
		Premium:         amount(ev.Premium),
		State:           models.InsuranceActive,
		PurchasedHeight: meta.height,
	})
}

func (p *Projector) insureeCredited(meta eventMeta, payload []byte) error {
	var ev escrow.InsureeCredited
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.CreditInsurance(ev.Key.Hex(), ev.Passenger.Hex(), amount(ev.Payout), meta.height)
}

func (p *Projector) insuranceTerminated(meta eventMeta, payload []byte) error {
	var ev escrow.InsuranceTerminated
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.TerminateInsurances(ev.Key.Hex(), meta.height)
}

func (p *Projector) creditWithdrawn(meta eventMeta, payload []byte) error {
	var ev escrow.CreditWithdrawn
	if err := decode(payload, &ev); err != nil {
		return err
	}
	return p.storage.InsertWithdrawal(&models.Withdrawal{
		Passenger: ev.Passenger.Hex(),
		Amount:    amount(ev.Amount),
		Height:    meta.height,
		Timestamp: meta.time,
	})
}

func amount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
