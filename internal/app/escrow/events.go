// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package escrow

import (
	"math/big"

	"github.com/insolar/flightsurety/internal/ledger"
)

const (
	EventCallerAuthorized    = "CallerAuthorized"
	EventCallerDeauthorized  = "CallerDeauthorized"
	EventAirlineFunded       = "AirlineFunded"
	EventInsurancePurchased  = "InsurancePurchased"
	EventInsureeCredited     = "InsureeCredited"
	EventInsuranceTerminated = "InsuranceTerminated"
	EventCreditWithdrawn     = "CreditWithdrawn"
)

type CallerAuthorized struct {
	Caller ledger.Address `json:"caller"`
}

type AirlineFunded struct {
	Airline ledger.Address `json:"airline"`
	Amount  *big.Int       `json:"amount"`
}

type InsurancePurchased struct {
	Key       ledger.Hash    `json:"key"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
	Passenger ledger.Address `json:"passenger"`
	Premium   *big.Int       `json:"premium"`
}

type InsureeCredited struct {
	Key       ledger.Hash    `json:"key"`
	Passenger ledger.Address `json:"passenger"`
	Premium   *big.Int       `json:"premium"`
	Payout    *big.Int       `json:"payout"`
}

type InsuranceTerminated struct {
	Key        ledger.Hash      `json:"key"`
	Passengers []ledger.Address `json:"passengers"`
}

type CreditWithdrawn struct {
	Passenger ledger.Address `json:"passenger"`
	Amount    *big.Int       `json:"amount"`
}
