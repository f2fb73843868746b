// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"github.com/insolar/flightsurety/internal/ledger"
)

const (
	EventAirlineRegistered = "AirlineRegistered"
	EventAirlineVoted      = "AirlineVoted"
	EventFlightRegistered  = "FlightRegistered"
	EventOracleRegistered  = "OracleRegistered"
	EventOracleRequest     = "OracleRequest"
	EventOracleReport      = "OracleReport"
	EventFlightStatusInfo  = "FlightStatusInfo"
)

type AirlineRegistered struct {
	Airline ledger.Address `json:"airline"`
	Sponsor ledger.Address `json:"sponsor"`
	Votes   uint32         `json:"votes"`
}

type AirlineVoted struct {
	Airline ledger.Address `json:"airline"`
	Voter   ledger.Address `json:"voter"`
	Votes   uint32         `json:"votes"`
	// Registered airlines when the vote was cast.
	Registered uint64 `json:"registered"`
}

type FlightRegistered struct {
	Key       ledger.Hash    `json:"key"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
}

type OracleRegistered struct {
	Oracle  ledger.Address `json:"oracle"`
	Indexes [3]uint8       `json:"indexes"`
}

type OracleRequest struct {
	Index     uint8          `json:"index"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
	Requester ledger.Address `json:"requester"`
}

type OracleReport struct {
	Oracle    ledger.Address `json:"oracle"`
	Index     uint8          `json:"index"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
	Status    FlightStatus   `json:"status"`
}

type FlightStatusInfo struct {
	Index     uint8          `json:"index"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
	Status    FlightStatus   `json:"status"`
}
