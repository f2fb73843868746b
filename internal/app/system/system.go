// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package system

import (
	"context"
	"math/big"

	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
)

const (
	ModuleAll         = ""
	ModuleCoordinator = "coordinator"
	ModuleEscrow      = "escrow"
)

var ErrUnknownModule = ledger.Reject("unknown-module", "module must be coordinator or escrow")

// System binds both modules to one executor and exposes their entry points.
type System struct {
	exec   *ledger.Executor
	escrow *escrow.Escrow
	coord  *coordinator.Coordinator
}

// New wires the escrow and the coordinator over exec.
func New(exec *ledger.Executor) *System {
	e := escrow.New()
	return &System{exec: exec, escrow: e, coord: coordinator.New(e)}
}

func (s *System) Escrow() *escrow.Escrow {
	return s.escrow
}

func (s *System) Coordinator() *coordinator.Coordinator {
	return s.coord
}

// Deploy installs both modules owned by admin and authorizes the coordinator on the escrow.
func (s *System) Deploy(ctx context.Context, admin, firstAirline ledger.Address) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "deploy", admin, nil, func(call *ledger.Call) error {
		if err := s.escrow.Deploy(call); err != nil {
			return err
		}
		if err := s.coord.Deploy(call, firstAirline); err != nil {
			return err
		}
		return s.escrow.AuthorizeCaller(call, s.coord.Address())
	})
}

func (s *System) Deployed(ctx context.Context) (bool, error) {
	var deployed bool
	err := s.exec.View(ctx, ledger.Address{}, func(call *ledger.Call) error {
		owner, err := s.coord.Owner(call)
		deployed = !owner.IsZero()
		return err
	})
	return deployed, err
}

func (s *System) SetOperatingStatus(ctx context.Context, caller ledger.Address, module string, operational bool) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "setOperatingStatus", caller, nil, func(call *ledger.Call) error {
		switch module {
		case ModuleCoordinator:
			return s.coord.SetOperatingStatus(call, operational)
		case ModuleEscrow:
			return s.escrow.SetOperatingStatus(call, operational)
		case ModuleAll:
			if err := s.coord.SetOperatingStatus(call, operational); err != nil {
				return err
			}
			return s.escrow.SetOperatingStatus(call, operational)
		}
		return ErrUnknownModule
	})
}

func (s *System) AuthorizeCaller(ctx context.Context, caller, target ledger.Address) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "authorizeCaller", caller, nil, func(call *ledger.Call) error {
		return s.escrow.AuthorizeCaller(call, target)
	})
}

func (s *System) DeauthorizeCaller(ctx context.Context, caller, target ledger.Address) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "deauthorizeCaller", caller, nil, func(call *ledger.Call) error {
		return s.escrow.DeauthorizeCaller(call, target)
	})
}

type Registration struct {
	Promoted bool   `json:"promoted"`
	Votes    uint32 `json:"votes"`
}

func (s *System) RegisterAirline(ctx context.Context, caller, candidate ledger.Address) (Registration, *ledger.Receipt, error) {
	var reg Registration
	receipt, err := s.exec.Execute(ctx, "registerAirline", caller, nil, func(call *ledger.Call) error {
		var err error
		reg.Promoted, reg.Votes, err = s.coord.RegisterAirline(call, candidate)
		return err
	})
	return reg, receipt, err
}

func (s *System) Fund(ctx context.Context, caller ledger.Address, value *big.Int) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "fund", caller, value, s.coord.Fund)
}

func (s *System) RegisterFlight(ctx context.Context, caller ledger.Address, flight string, timestamp uint64) (ledger.Hash, *ledger.Receipt, error) {
	var key ledger.Hash
	receipt, err := s.exec.Execute(ctx, "registerFlight", caller, nil, func(call *ledger.Call) error {
		var err error
		key, err = s.coord.RegisterFlight(call, flight, timestamp)
		return err
	})
	return key, receipt, err
}

func (s *System) Buy(
	ctx context.Context,
	caller ledger.Address,
	value *big.Int,
	airline ledger.Address,
	flight string,
	timestamp uint64,
) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "buy", caller, value, func(call *ledger.Call) error {
		return s.coord.Buy(call, airline, flight, timestamp)
	})
}

func (s *System) Pay(ctx context.Context, caller ledger.Address) (*ledger.Receipt, error) {
	return s.exec.Execute(ctx, "pay", caller, nil, s.coord.Pay)
}

func (s *System) RegisterOracle(ctx context.Context, caller ledger.Address, value *big.Int) ([3]uint8, *ledger.Receipt, error) {
	var indexes [3]uint8
	receipt, err := s.exec.Execute(ctx, "registerOracle", caller, value, func(call *ledger.Call) error {
		var err error
		indexes, err = s.coord.RegisterOracle(call)
		return err
	})
	return indexes, receipt, err
}

func (s *System) FetchFlightStatus(
	ctx context.Context,
	caller ledger.Address,
	airline ledger.Address,
	flight string,
	timestamp uint64,
) (uint8, *ledger.Receipt, error) {
	var index uint8
	receipt, err := s.exec.Execute(ctx, "fetchFlightStatus", caller, nil, func(call *ledger.Call) error {
		var err error
		index, err = s.coord.FetchFlightStatus(call, airline, flight, timestamp)
		return err
	})
	return index, receipt, err
}

func (s *System) SubmitOracleResponse(
	ctx context.Context,
	caller ledger.Address,
	index uint8,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	status coordinator.FlightStatus,
) (bool, *ledger.Receipt, error) {
	var decided bool
	receipt, err := s.exec.Execute(ctx, "submitOracleResponse", caller, nil, func(call *ledger.Call) error {
		var err error
		decided, err = s.coord.SubmitOracleResponse(call, index, airline, flight, timestamp, status)
		return err
	})
	return decided, receipt, err
}
