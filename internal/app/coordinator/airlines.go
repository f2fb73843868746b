// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"time"

	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
)

type airlineRecord struct {
	Status uint8
	Votes  uint32
}

type Airline struct {
	Address ledger.Address `json:"address"`
	Status  AirlineStatus  `json:"status"`
	Votes   uint32         `json:"votes"`
}

type flightRecord struct {
	Airline    []byte
	Flight     string
	Timestamp  uint64
	Registered bool
	StatusCode uint8
	UpdatedAt  int64
}

type Flight struct {
	Key        ledger.Hash    `json:"key"`
	Airline    ledger.Address `json:"airline"`
	Flight     string         `json:"flight"`
	Timestamp  uint64         `json:"timestamp"`
	Registered bool           `json:"registered"`
	Status     FlightStatus   `json:"status"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// RegisterAirline admits candidate directly while fewer than
// RegistrationThreshold airlines are registered. Past that it records the
// caller's vote and admits candidate once votes*2 >= registered airlines.
func (c *Coordinator) RegisterAirline(call *ledger.Call, candidate ledger.Address) (bool, uint32, error) {
	if err := ledger.Require(call, ledger.NoValue, c.admin.Operational, c.funded); err != nil {
		return false, 0, err
	}
	st := c.store(call)
	rec, err := c.airline(st, candidate)
	if err != nil {
		return false, 0, err
	}
	if AirlineStatus(rec.Status) >= Registered {
		return false, 0, ErrAlreadyRegistered
	}
	count, err := st.Uint(countKey)
	if err != nil {
		return false, 0, err
	}

	if count < RegistrationThreshold {
		if err := c.admit(call, st, candidate, rec); err != nil {
			return false, 0, err
		}
		return true, 0, nil
	}

	voteKey := ledger.Key(voteTable, candidate.Bytes(), call.Caller().Bytes())
	voted, err := st.Flag(voteKey)
	if err != nil {
		return false, 0, err
	}
	if voted {
		return false, rec.Votes, nil
	}
	if err := st.SetFlag(voteKey, true); err != nil {
		return false, 0, err
	}
	rec.Votes++
	rec.Status = uint8(InRegistration)
	call.Emit(c.address, EventAirlineVoted, AirlineVoted{
		Airline:    candidate,
		Voter:      call.Caller(),
		Votes:      rec.Votes,
		Registered: count,
	})

	if uint64(rec.Votes)*2 < count {
		return false, rec.Votes, st.Save(ledger.Key(airlineTable, candidate.Bytes()), rec)
	}
	if err := st.DeletePrefix(ledger.Key(voteTable, candidate.Bytes())); err != nil {
		return false, 0, err
	}
	if err := c.admit(call, st, candidate, rec); err != nil {
		return false, 0, err
	}
	return true, rec.Votes, nil
}

func (c *Coordinator) admit(call *ledger.Call, st *ledger.Store, candidate ledger.Address, rec airlineRecord) error {
	rec.Status = uint8(Registered)
	if err := st.Save(ledger.Key(airlineTable, candidate.Bytes()), rec); err != nil {
		return err
	}
	count, err := st.Uint(countKey)
	if err != nil {
		return err
	}
	if err := st.SetUint(countKey, count+1); err != nil {
		return err
	}
	call.Emit(c.address, EventAirlineRegistered, AirlineRegistered{
		Airline: candidate,
		Sponsor: call.Caller(),
		Votes:   rec.Votes,
	})
	return nil
}

// Fund takes the caller's one-time deposit and lets it take part in admission.
func (c *Coordinator) Fund(call *ledger.Call) error {
	if err := ledger.Require(call, c.admin.Operational); err != nil {
		return err
	}
	st := c.store(call)
	rec, err := c.airline(st, call.Caller())
	if err != nil {
		return err
	}
	switch AirlineStatus(rec.Status) {
	case Funded:
		return escrow.ErrDuplicateFunding
	case Registered:
	default:
		return ErrInvalidCallerRole
	}
	value := call.Value()
	if value.Cmp(escrow.FundingAmount) != 0 {
		return escrow.ErrWrongFunding
	}
	rec.Status = uint8(Funded)
	if err := st.Save(ledger.Key(airlineTable, call.Caller().Bytes()), rec); err != nil {
		return err
	}
	return c.escrow.Fund(call.Forward(c.address, value), call.Caller())
}

// RegisterFlight records a flight of the calling funded airline and returns its key.
func (c *Coordinator) RegisterFlight(call *ledger.Call, flight string, timestamp uint64) (ledger.Hash, error) {
	if err := ledger.Require(call, ledger.NoValue, c.admin.Operational, c.funded); err != nil {
		return ledger.Hash{}, err
	}
	airline := call.Caller()
	key := escrow.FlightKey(airline, flight, timestamp)
	st := c.store(call)
	rec, _, err := c.flight(st, key)
	if err != nil {
		return ledger.Hash{}, err
	}
	if rec.Registered {
		return ledger.Hash{}, ErrAlreadyRegistered
	}
	rec.Airline = airline.Bytes()
	rec.Flight = flight
	rec.Timestamp = timestamp
	rec.Registered = true
	rec.UpdatedAt = call.Block().Time.Unix()
	if err := st.Save(ledger.Key(flightTable, key.Bytes()), rec); err != nil {
		return ledger.Hash{}, err
	}
	call.Emit(c.address, EventFlightRegistered, FlightRegistered{
		Key:       key,
		Airline:   airline,
		Flight:    flight,
		Timestamp: timestamp,
	})
	return key, nil
}

// GetAirline returns the admission state of addr. Unknown addresses come back Unregistered.
func (c *Coordinator) GetAirline(call *ledger.Call, addr ledger.Address) (Airline, error) {
	rec, err := c.airline(c.store(call), addr)
	if err != nil {
		return Airline{}, err
	}
	return Airline{Address: addr, Status: AirlineStatus(rec.Status), Votes: rec.Votes}, nil
}

// IsAirlineRegistered is true for registered and funded airlines.
func (c *Coordinator) IsAirlineRegistered(call *ledger.Call, addr ledger.Address) (bool, error) {
	a, err := c.GetAirline(call, addr)
	return a.Status >= Registered, err
}

// IsAirlineFunded reports whether addr completed admission.
func (c *Coordinator) IsAirlineFunded(call *ledger.Call, addr ledger.Address) (bool, error) {
	a, err := c.GetAirline(call, addr)
	return a.Status == Funded, err
}

// RegisteredAirlineCount counts admitted airlines, funded or not.
func (c *Coordinator) RegisteredAirlineCount(call *ledger.Call) (uint64, error) {
	return c.store(call).Uint(countKey)
}

// GetFlight returns the registration and last decided status of a flight.
func (c *Coordinator) GetFlight(call *ledger.Call, airline ledger.Address, flight string, timestamp uint64) (Flight, bool, error) {
	key := escrow.FlightKey(airline, flight, timestamp)
	rec, found, err := c.flight(c.store(call), key)
	if err != nil || !found {
		return Flight{}, found, err
	}
	return Flight{
		Key:        key,
		Airline:    ledger.BytesToAddress(rec.Airline),
		Flight:     rec.Flight,
		Timestamp:  rec.Timestamp,
		Registered: rec.Registered,
		Status:     FlightStatus(rec.StatusCode),
		UpdatedAt:  time.Unix(rec.UpdatedAt, 0).UTC(),
	}, true, nil
}

func (c *Coordinator) airline(st *ledger.Store, addr ledger.Address) (airlineRecord, error) {
	var rec airlineRecord
	_, err := st.Load(ledger.Key(airlineTable, addr.Bytes()), &rec)
	return rec, err
}

func (c *Coordinator) flight(st *ledger.Store, key ledger.Hash) (flightRecord, bool, error) {
	var rec flightRecord
	found, err := st.Load(ledger.Key(flightTable, key.Bytes()), &rec)
	return rec, found, err
}

// funded admits funded airlines only.
func (c *Coordinator) funded(call *ledger.Call) error {
	ok, err := c.IsAirlineFunded(call, call.Caller())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCallerRole
	}
	return nil
}
