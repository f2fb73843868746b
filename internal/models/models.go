// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package models

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	InsuranceActive     = "active"
	InsuranceCredited   = "credited"
	InsuranceTerminated = "terminated"
)

type Airline struct {
	tableName struct{} `sql:"airlines"` //nolint: unused,structcheck

	Address          string `sql:"address,pk"`
	Status           string `sql:"status,notnull"`
	Votes            int64  `sql:"votes,notnull"`
	Sponsor          string `sql:"sponsor"`
	FundedAmount     string `sql:"funded_amount"`
	RegisteredHeight int64  `sql:"registered_height"`
	UpdatedHeight    int64  `sql:"updated_height,notnull"`
}

type Flight struct {
	tableName struct{} `sql:"flights"` //nolint: unused,structcheck

	FlightKey       string `sql:"flight_key,pk"`
	Airline         string `sql:"airline,notnull"`
	Flight          string `sql:"flight,notnull"`
	Departure       int64  `sql:"departure,notnull"`
	Registered      bool   `sql:"registered,notnull"`
	Status          int64  `sql:"status,notnull"`
	StatusUpdatedAt int64  `sql:"status_updated_at"`
	UpdatedHeight   int64  `sql:"updated_height,notnull"`
}

type Insurance struct {
	tableName struct{} `sql:"insurances"` //nolint: unused,structcheck

	FlightKey       string `sql:"flight_key,pk"`
	Passenger       string `sql:"passenger,pk"`
	Airline         string `sql:"airline,notnull"`
	Flight          string `sql:"flight,notnull"`
	Departure       int64  `sql:"departure,notnull"`
	Premium         string `sql:"premium,notnull"`
	Payout          string `sql:"payout"`
	State           string `sql:"state,notnull"`
	PurchasedHeight int64  `sql:"purchased_height,notnull"`
	SettledHeight   int64  `sql:"settled_height"`
}

// PremiumAmount parses the stored premium.
func (i *Insurance) PremiumAmount() (*big.Int, error) {
	return parseAmount(i.Premium)
}

// PayoutAmount parses the stored payout, zero while the insurance is active.
func (i *Insurance) PayoutAmount() (*big.Int, error) {
	return parseAmount(i.Payout)
}

type Oracle struct {
	tableName struct{} `sql:"oracles"` //nolint: unused,structcheck

	Address          string  `sql:"address,pk"`
	Indexes          []int64 `sql:"indexes,array"`
	RegisteredHeight int64   `sql:"registered_height,notnull"`
}

type OracleRequest struct {
	tableName struct{} `sql:"oracle_requests"` //nolint: unused,structcheck

	RequestKey   string `sql:"request_key,pk"`
	Index        int64  `sql:"idx,notnull"`
	Airline      string `sql:"airline,notnull"`
	Flight       string `sql:"flight,notnull"`
	Departure    int64  `sql:"departure,notnull"`
	Requester    string `sql:"requester,notnull"`
	Open         bool   `sql:"open,notnull"`
	Status       int64  `sql:"status"`
	OpenedHeight int64  `sql:"opened_height,notnull"`
	ClosedHeight int64  `sql:"closed_height"`
}

type OracleReport struct {
	tableName struct{} `sql:"oracle_reports"` //nolint: unused,structcheck

	RequestKey string `sql:"request_key,pk"`
	Oracle     string `sql:"oracle,pk"`
	Status     int64  `sql:"status,pk"`
	Height     int64  `sql:"height,notnull"`
}

type Withdrawal struct {
	tableName struct{} `sql:"withdrawals"` //nolint: unused,structcheck

	ID        int64  `sql:"id,pk"`
	Passenger string `sql:"passenger,notnull"`
	Amount    string `sql:"amount,notnull"`
	Height    int64  `sql:"height,notnull"`
	Timestamp int64  `sql:"timestamp,notnull"`
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	return v, nil
}
