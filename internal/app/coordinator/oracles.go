// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"github.com/pkg/errors"

	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
)

// Draws allowed per index before giving up, enough to walk the whole nonce range.
const maxDraws = 4 * (NonceLimit + 1)

type oracleRecord struct {
	Registered bool
	Indexes    []byte
}

type requestRecord struct {
	Requester []byte
	Open      bool
	Airline   []byte
	Flight    string
	Timestamp uint64
	Index     uint8
}

// Request is an aggregation of oracle reports for one status request.
type Request struct {
	Key       ledger.Hash                       `json:"key"`
	Index     uint8                             `json:"index"`
	Requester ledger.Address                    `json:"requester"`
	Open      bool                              `json:"open"`
	Airline   ledger.Address                    `json:"airline"`
	Flight    string                            `json:"flight"`
	Timestamp uint64                            `json:"timestamp"`
	Reports   map[FlightStatus][]ledger.Address `json:"reports"`
}

// RequestKey identifies a status request by packed index, airline, designator and departure.
func RequestKey(index uint8, airline ledger.Address, flight string, timestamp uint64) ledger.Hash {
	return ledger.Keccak256([]byte{index}, airline.Bytes(), []byte(flight), ledger.Uint256(timestamp))
}

// RegisterOracle assigns the caller three distinct indexes. Registering again re-rolls them.
func (c *Coordinator) RegisterOracle(call *ledger.Call) ([3]uint8, error) {
	var indexes [3]uint8
	if err := ledger.Require(call, c.admin.Operational); err != nil {
		return indexes, err
	}
	fee := call.Value()
	if fee.Cmp(RegistrationFee) != 0 {
		return indexes, ErrWrongFee
	}

	st := c.store(call)
	oracle := call.Caller()
	for i := range indexes {
		idx, err := c.drawDistinct(call, st, oracle, indexes[:i])
		if err != nil {
			return indexes, err
		}
		indexes[i] = idx
	}
	err := st.Save(ledger.Key(oracleTable, oracle.Bytes()), oracleRecord{
		Registered: true,
		Indexes:    indexes[:],
	})
	if err != nil {
		return indexes, err
	}
	if err := c.escrow.Deposit(call.Forward(c.address, fee)); err != nil {
		return indexes, err
	}
	call.Emit(c.address, EventOracleRegistered, OracleRegistered{Oracle: oracle, Indexes: indexes})
	return indexes, nil
}

// GetMyIndexes returns the indexes drawn for the calling oracle.
func (c *Coordinator) GetMyIndexes(call *ledger.Call) ([3]uint8, error) {
	var indexes [3]uint8
	rec, err := c.oracle(c.store(call), call.Caller())
	if err != nil {
		return indexes, err
	}
	if !rec.Registered {
		return indexes, ErrNotOracle
	}
	copy(indexes[:], rec.Indexes)
	return indexes, nil
}

// FetchFlightStatus opens a status request under a random index and broadcasts it.
// An open request under the same index is kept with its reports. A decided one
// is final and rejects the call.
func (c *Coordinator) FetchFlightStatus(call *ledger.Call, airline ledger.Address, flight string, timestamp uint64) (uint8, error) {
	if err := ledger.Require(call, ledger.NoValue, c.admin.Operational); err != nil {
		return 0, err
	}
	st := c.store(call)
	index, err := c.drawIndex(call, st, call.Caller())
	if err != nil {
		return 0, err
	}
	key := RequestKey(index, airline, flight, timestamp)
	rec, found, err := c.request(st, key)
	if err != nil {
		return 0, err
	}
	if found && !rec.Open {
		return 0, ErrRequestClosed
	}
	if !found {
		rec = requestRecord{
			Open:      true,
			Airline:   airline.Bytes(),
			Flight:    flight,
			Timestamp: timestamp,
			Index:     index,
		}
	}
	rec.Requester = call.Caller().Bytes()
	if err := st.Save(ledger.Key(requestTable, key.Bytes()), rec); err != nil {
		return 0, err
	}
	call.Emit(c.address, EventOracleRequest, OracleRequest{
		Index:     index,
		Airline:   airline,
		Flight:    flight,
		Timestamp: timestamp,
		Requester: call.Caller(),
	})
	return index, nil
}

// SubmitOracleResponse records the caller's report. The report that brings a
// status to MinResponses closes the request and settles the flight; it
// returns true. Reports to a closed request are kept but change nothing.
func (c *Coordinator) SubmitOracleResponse(
	call *ledger.Call,
	index uint8,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	status FlightStatus,
) (bool, error) {
	if err := ledger.Require(call, ledger.NoValue, c.admin.Operational); err != nil {
		return false, err
	}
	if !status.Valid() {
		return false, ErrInvalidStatus
	}
	st := c.store(call)
	oracle := call.Caller()
	orec, err := c.oracle(st, oracle)
	if err != nil {
		return false, err
	}
	if !orec.Registered {
		return false, ErrNotOracle
	}
	if !containsIndex(orec.Indexes, index) {
		return false, ErrIndexMismatch
	}
	key := RequestKey(index, airline, flight, timestamp)
	req, found, err := c.request(st, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrUnknownRequest
	}

	statusPrefix := ledger.Key(reporterTable, key.Bytes(), []byte{uint8(status)})
	if err := st.SetFlag(append(statusPrefix, oracle.Bytes()...), true); err != nil {
		return false, err
	}
	call.Emit(c.address, EventOracleReport, OracleReport{
		Oracle:    oracle,
		Index:     index,
		Airline:   airline,
		Flight:    flight,
		Timestamp: timestamp,
		Status:    status,
	})
	if !req.Open {
		return false, nil
	}

	reporters, err := st.Suffixes(statusPrefix)
	if err != nil {
		return false, err
	}
	if len(reporters) < MinResponses {
		return false, nil
	}

	req.Open = false
	if err := st.Save(ledger.Key(requestTable, key.Bytes()), req); err != nil {
		return false, err
	}
	call.Emit(c.address, EventFlightStatusInfo, FlightStatusInfo{
		Index:     index,
		Airline:   airline,
		Flight:    flight,
		Timestamp: timestamp,
		Status:    status,
	})
	return true, c.processFlightStatus(call, st, airline, flight, timestamp, status)
}

func (c *Coordinator) processFlightStatus(
	call *ledger.Call,
	st *ledger.Store,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	status FlightStatus,
) error {
	key := escrow.FlightKey(airline, flight, timestamp)
	rec, found, err := c.flight(st, key)
	if err != nil {
		return err
	}
	if !found {
		rec = flightRecord{Airline: airline.Bytes(), Flight: flight, Timestamp: timestamp}
	}
	rec.StatusCode = uint8(status)
	rec.UpdatedAt = call.Block().Time.Unix()
	if err := st.Save(ledger.Key(flightTable, key.Bytes()), rec); err != nil {
		return err
	}

	inner := call.Forward(c.address, nil)
	switch status {
	case StatusUnknown:
		return nil
	case StatusLateAirline:
		return c.escrow.CreditInsurees(inner, airline, flight, timestamp, PayoutNumerator, PayoutDenominator)
	default:
		return c.escrow.TerminateInsurance(inner, airline, flight, timestamp)
	}
}

// GetRequest returns the request and the reports collected under it.
func (c *Coordinator) GetRequest(call *ledger.Call, index uint8, airline ledger.Address, flight string, timestamp uint64) (Request, bool, error) {
	st := c.store(call)
	key := RequestKey(index, airline, flight, timestamp)
	rec, found, err := c.request(st, key)
	if err != nil || !found {
		return Request{}, found, err
	}
	suffixes, err := st.Suffixes(ledger.Key(reporterTable, key.Bytes()))
	if err != nil {
		return Request{}, false, err
	}
	reports := make(map[FlightStatus][]ledger.Address)
	for _, suffix := range suffixes {
		status := FlightStatus(suffix[0])
		reports[status] = append(reports[status], ledger.BytesToAddress(suffix[1:]))
	}
	return Request{
		Key:       key,
		Index:     rec.Index,
		Requester: ledger.BytesToAddress(rec.Requester),
		Open:      rec.Open,
		Airline:   ledger.BytesToAddress(rec.Airline),
		Flight:    rec.Flight,
		Timestamp: rec.Timestamp,
		Reports:   reports,
	}, true, nil
}

// drawIndex derives an index from the seed nonce blocks deep, the current
// height and the account.
func (c *Coordinator) drawIndex(call *ledger.Call, st *ledger.Store, account ledger.Address) (uint8, error) {
	nonce, err := st.Uint(nonceKey)
	if err != nil {
		return 0, err
	}
	seed := call.Entropy().Seed(nonce)
	height := ledger.Uint256(call.Block().Height)
	index := ledger.Keccak256(seed.Bytes(), height, account.Bytes()).Mod(IndexRange)

	nonce++
	if nonce > NonceLimit {
		nonce = 0
	}
	if err := st.SetUint(nonceKey, nonce); err != nil {
		return 0, err
	}
	return uint8(index), nil
}

func (c *Coordinator) drawDistinct(call *ledger.Call, st *ledger.Store, account ledger.Address, taken []uint8) (uint8, error) {
	for i := 0; i < maxDraws; i++ {
		idx, err := c.drawIndex(call, st, account)
		if err != nil {
			return 0, err
		}
		if !containsIndex(taken, idx) {
			return idx, nil
		}
	}
	return 0, errors.Errorf("no distinct oracle index after %d draws", maxDraws)
}

func (c *Coordinator) oracle(st *ledger.Store, addr ledger.Address) (oracleRecord, error) {
	var rec oracleRecord
	_, err := st.Load(ledger.Key(oracleTable, addr.Bytes()), &rec)
	return rec, err
}

func (c *Coordinator) request(st *ledger.Store, key ledger.Hash) (requestRecord, bool, error) {
	var rec requestRecord
	found, err := st.Load(ledger.Key(requestTable, key.Bytes()), &rec)
	return rec, found, err
}

func containsIndex(indexes []uint8, index uint8) bool {
	for _, i := range indexes {
		if i == index {
			return true
		}
	}
	return false
}
