// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
)

const Name = "flightsurety.coordinator"

const (
	// Airlines admitted without voting.
	RegistrationThreshold = 4
	// Matching reports that decide a flight status.
	MinResponses = 3
	IndexRange   = 10
	// The draw nonce wraps to zero once it exceeds this.
	NonceLimit = 250

	PayoutNumerator   = 3
	PayoutDenominator = 2
)

var RegistrationFee = ledger.Ether(1)

var (
	ErrInvalidCallerRole = ledger.Reject("invalid-caller-role", "caller's airline status does not allow this call")
	ErrAlreadyRegistered = ledger.Reject("already-registered", "already registered")
	ErrZeroPremium       = ledger.Reject("zero-premium", "premium must be greater than zero")
	ErrWrongFee          = ledger.Reject("wrong-registration-fee", "oracle registration fee is exactly 1 ether")
	ErrNotOracle         = ledger.Reject("not-oracle", "caller is not a registered oracle")
	ErrIndexMismatch     = ledger.Reject("index-mismatch", "index does not match oracle request")
	ErrUnknownRequest    = ledger.Reject("unknown-request", "no status request was opened for this flight and index")
	ErrInvalidStatus     = ledger.Reject("invalid-status", "unknown flight status code")
	ErrRequestClosed     = ledger.Reject("request-closed", "status of this flight was already decided under this index")
)

const (
	airlineTable byte = iota + 1
	voteTable
	countTable
	flightTable
	oracleTable
	requestTable
	reporterTable
	nonceTable
)

var (
	countKey = ledger.Key(countTable)
	nonceKey = ledger.Key(nonceTable)
)

// Coordinator admits airlines, registers flights and oracles and turns oracle
// consensus into escrow settlements. It is the escrow's only authorized caller.
type Coordinator struct {
	address ledger.Address
	admin   ledger.Admin
	escrow  *escrow.Escrow
}

// New returns a coordinator that settles insurance through e.
func New(e *escrow.Escrow) *Coordinator {
	addr := ledger.ModuleAddress(Name)
	return &Coordinator{address: addr, admin: ledger.NewAdmin(addr), escrow: e}
}

// Address is the account the coordinator calls the escrow as.
func (c *Coordinator) Address() ledger.Address {
	return c.address
}

// Deploy makes the caller the owner and admits firstAirline without a vote.
func (c *Coordinator) Deploy(call *ledger.Call, firstAirline ledger.Address) error {
	if err := ledger.Require(call, ledger.NoValue); err != nil {
		return err
	}
	if err := c.admin.Init(call); err != nil {
		return err
	}
	st := c.store(call)
	if err := st.Save(ledger.Key(airlineTable, firstAirline.Bytes()), airlineRecord{Status: uint8(Registered)}); err != nil {
		return err
	}
	if err := st.SetUint(countKey, 1); err != nil {
		return err
	}
	call.Emit(c.address, EventAirlineRegistered, AirlineRegistered{Airline: firstAirline, Sponsor: call.Caller()})
	return nil
}

// SetOperatingStatus pauses or resumes the coordinator. Owner only.
func (c *Coordinator) SetOperatingStatus(call *ledger.Call, operational bool) error {
	return c.admin.SetOperatingStatus(call, operational)
}

// IsOperational reports the operating status.
func (c *Coordinator) IsOperational(call *ledger.Call) (bool, error) {
	return c.admin.IsOperational(call)
}

// Owner returns the deployer.
func (c *Coordinator) Owner(call *ledger.Call) (ledger.Address, error) {
	return c.admin.Owner(call)
}

// Buy insures the caller for the flight with the attached value.
func (c *Coordinator) Buy(call *ledger.Call, airline ledger.Address, flight string, timestamp uint64) error {
	if err := ledger.Require(call, c.admin.Operational); err != nil {
		return err
	}
	premium := call.Value()
	if ledger.IsZero(premium) {
		return ErrZeroPremium
	}
	if premium.Cmp(escrow.PremiumCap) > 0 {
		return escrow.ErrPremiumCap
	}
	return c.escrow.Buy(call.Forward(c.address, premium), airline, flight, timestamp, call.Caller())
}

// Pay withdraws the caller's credit.
func (c *Coordinator) Pay(call *ledger.Call) error {
	if err := ledger.Require(call, ledger.NoValue, c.admin.Operational); err != nil {
		return err
	}
	return c.escrow.Pay(call.Forward(c.address, nil), call.Caller())
}

func (c *Coordinator) store(call *ledger.Call) *ledger.Store {
	return call.Store(c.address)
}
