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

type Status struct {
	CoordinatorOperational bool     `json:"coordinator_operational"`
	EscrowOperational      bool     `json:"escrow_operational"`
	RegisteredAirlines     uint64   `json:"registered_airlines"`
	Balance                *big.Int `json:"balance"`
	Height                 uint64   `json:"height"`
}

func (s *System) Status(ctx context.Context) (Status, error) {
	var st Status
	err := s.view(ctx, ledger.Address{}, func(call *ledger.Call) error {
		var err error
		st.Height = call.Block().Height
		if st.CoordinatorOperational, err = s.coord.IsOperational(call); err != nil {
			return err
		}
		if st.EscrowOperational, err = s.escrow.IsOperational(call); err != nil {
			return err
		}
		if st.RegisteredAirlines, err = s.coord.RegisteredAirlineCount(call); err != nil {
			return err
		}
		st.Balance, err = s.escrow.Balance(call)
		return err
	})
	return st, err
}

func (s *System) GetAirline(ctx context.Context, addr ledger.Address) (coordinator.Airline, error) {
	var a coordinator.Airline
	err := s.view(ctx, addr, func(call *ledger.Call) error {
		var err error
		a, err = s.coord.GetAirline(call, addr)
		return err
	})
	return a, err
}

func (s *System) IsAirlineFunded(ctx context.Context, addr ledger.Address) (bool, error) {
	var funded bool
	err := s.view(ctx, addr, func(call *ledger.Call) error {
		var err error
		funded, err = s.escrow.IsAirlineFunded(call, addr)
		return err
	})
	return funded, err
}

func (s *System) GetFlight(ctx context.Context, airline ledger.Address, flight string, timestamp uint64) (coordinator.Flight, bool, error) {
	var (
		f     coordinator.Flight
		found bool
	)
	err := s.view(ctx, airline, func(call *ledger.Call) error {
		var err error
		f, found, err = s.coord.GetFlight(call, airline, flight, timestamp)
		return err
	})
	return f, found, err
}

func (s *System) GetInsurance(
	ctx context.Context,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	passenger ledger.Address,
) (*big.Int, error) {
	var premium *big.Int
	err := s.view(ctx, passenger, func(call *ledger.Call) error {
		var err error
		premium, err = s.escrow.GetInsurance(call, airline, flight, timestamp, passenger)
		return err
	})
	return premium, err
}

func (s *System) GetInsuranceData(ctx context.Context, key ledger.Hash) (escrow.Insurance, bool, error) {
	var (
		data  escrow.Insurance
		found bool
	)
	err := s.view(ctx, ledger.Address{}, func(call *ledger.Call) error {
		var err error
		data, found, err = s.escrow.GetInsuranceData(call, key)
		return err
	})
	return data, found, err
}

func (s *System) GetActiveInsuranceKeys(ctx context.Context, passenger ledger.Address) ([]ledger.Hash, error) {
	var keys []ledger.Hash
	err := s.view(ctx, passenger, func(call *ledger.Call) error {
		var err error
		keys, err = s.escrow.GetActiveInsuranceKeys(call, passenger)
		return err
	})
	return keys, err
}

func (s *System) GetCredit(ctx context.Context, passenger ledger.Address) (*big.Int, error) {
	var credit *big.Int
	err := s.view(ctx, passenger, func(call *ledger.Call) error {
		var err error
		credit, err = s.escrow.GetCredit(call, passenger)
		return err
	})
	return credit, err
}

func (s *System) GetMyIndexes(ctx context.Context, caller ledger.Address) ([3]uint8, error) {
	var indexes [3]uint8
	err := s.view(ctx, caller, func(call *ledger.Call) error {
		var err error
		indexes, err = s.coord.GetMyIndexes(call)
		return err
	})
	return indexes, err
}

func (s *System) GetRequest(
	ctx context.Context,
	index uint8,
	airline ledger.Address,
	flight string,
	timestamp uint64,
) (coordinator.Request, bool, error) {
	var (
		req   coordinator.Request
		found bool
	)
	err := s.view(ctx, ledger.Address{}, func(call *ledger.Call) error {
		var err error
		req, found, err = s.coord.GetRequest(call, index, airline, flight, timestamp)
		return err
	})
	return req, found, err
}

func (s *System) view(ctx context.Context, caller ledger.Address, fn func(*ledger.Call) error) error {
	return s.exec.View(ctx, caller, fn)
}
