// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package escrow

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/insolar/flightsurety/internal/ledger"
)

const Name = "flightsurety.escrow"

var (
	FundingAmount = ledger.Ether(10)
	PremiumCap    = ledger.Ether(1)
)

var (
	ErrUnauthorizedCaller = ledger.Reject("unauthorized-caller", "caller is not authorized")
	ErrDuplicateFunding   = ledger.Reject("duplicate-funding", "airline is already funded")
	ErrWrongFunding       = ledger.Reject("wrong-funding-amount", "airline funding must be exactly 10 ether")
	ErrPremiumCap         = ledger.Reject("premium-cap-exceeded", "premium must not exceed 1 ether")
	ErrDoubleInsurance    = ledger.Reject("double-insurance-purchase", "passenger is already insured for this flight")
	ErrInvalidRatio       = ledger.Reject("invalid-ratio", "payout denominator must not be zero")
)

const (
	authorizedTable byte = iota + 1
	fundedTable
	insuranceTable
	premiumTable
	creditTable
	allKeysTable
	insureesTable
	allInsureesTable
	balanceTable
	passengerKeysTable
)

var balanceKey = ledger.Key(balanceTable)

type insuranceRecord struct {
	Airline   []byte
	Flight    string
	Timestamp uint64
}

// Insurance is the flight metadata premiums are attached to.
type Insurance struct {
	Key       ledger.Hash    `json:"key"`
	Airline   ledger.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp uint64         `json:"timestamp"`
}

// FlightKey identifies a flight by packed airline, designator and departure time.
func FlightKey(airline ledger.Address, flight string, timestamp uint64) ledger.Hash {
	return ledger.Keccak256(airline.Bytes(), []byte(flight), ledger.Uint256(timestamp))
}

// Escrow holds airline funds and passenger premiums and credits. Every
// mutation comes from an authorized caller.
type Escrow struct {
	address ledger.Address
	admin   ledger.Admin
}

// New returns the escrow bound to its module address. Deploy must run before use.
func New() *Escrow {
	addr := ledger.ModuleAddress(Name)
	return &Escrow{address: addr, admin: ledger.NewAdmin(addr)}
}

// Address is the account events and transfers of the escrow are attributed to.
func (e *Escrow) Address() ledger.Address {
	return e.address
}

// Deploy makes the caller the owner and marks the escrow operational.
func (e *Escrow) Deploy(call *ledger.Call) error {
	if err := ledger.Require(call, ledger.NoValue); err != nil {
		return err
	}
	return e.admin.Init(call)
}

// SetOperatingStatus pauses or resumes every guarded operation. Owner only.
func (e *Escrow) SetOperatingStatus(call *ledger.Call, operational bool) error {
	return e.admin.SetOperatingStatus(call, operational)
}

// AuthorizeCaller lets caller invoke the escrow on behalf of others. Owner only.
func (e *Escrow) AuthorizeCaller(call *ledger.Call, caller ledger.Address) error {
	if err := ledger.Require(call, ledger.NoValue, e.admin.OnlyOwner); err != nil {
		return err
	}
	if err := e.store(call).SetFlag(ledger.Key(authorizedTable, caller.Bytes()), true); err != nil {
		return err
	}
	call.Emit(e.address, EventCallerAuthorized, CallerAuthorized{Caller: caller})
	return nil
}

// DeauthorizeCaller revokes AuthorizeCaller. Owner only.
func (e *Escrow) DeauthorizeCaller(call *ledger.Call, caller ledger.Address) error {
	if err := ledger.Require(call, ledger.NoValue, e.admin.OnlyOwner); err != nil {
		return err
	}
	if err := e.store(call).SetFlag(ledger.Key(authorizedTable, caller.Bytes()), false); err != nil {
		return err
	}
	call.Emit(e.address, EventCallerDeauthorized, CallerAuthorized{Caller: caller})
	return nil
}

// Fund takes the one-time airline deposit.
func (e *Escrow) Fund(call *ledger.Call, airline ledger.Address) error {
	if err := ledger.Require(call, e.admin.Operational, e.authorized); err != nil {
		return err
	}
	value := call.Value()
	if value.Cmp(FundingAmount) != 0 {
		return ErrWrongFunding
	}
	st := e.store(call)
	key := ledger.Key(fundedTable, airline.Bytes())
	funded, err := st.Flag(key)
	if err != nil {
		return err
	}
	if funded {
		return ErrDuplicateFunding
	}
	if err := st.SetFlag(key, true); err != nil {
		return err
	}
	if err := e.addBalance(st, value); err != nil {
		return err
	}
	call.Emit(e.address, EventAirlineFunded, AirlineFunded{Airline: airline, Amount: value})
	return nil
}

// Buy records the attached value as passenger's premium for the flight.
func (e *Escrow) Buy(call *ledger.Call, airline ledger.Address, flight string, timestamp uint64, passenger ledger.Address) error {
	if err := ledger.Require(call, e.admin.Operational, e.authorized); err != nil {
		return err
	}
	premium := call.Value()
	if premium.Cmp(PremiumCap) > 0 {
		return ErrPremiumCap
	}

	st := e.store(call)
	key := FlightKey(airline, flight, timestamp)
	premiumKey := ledger.Key(premiumTable, key.Bytes(), passenger.Bytes())
	current, err := st.Amount(premiumKey)
	if err != nil {
		return err
	}
	if !ledger.IsZero(current) {
		return ErrDoubleInsurance
	}

	insuranceKey := ledger.Key(insuranceTable, key.Bytes())
	known, err := st.Has(insuranceKey)
	if err != nil {
		return err
	}
	if !known {
		err := st.Save(insuranceKey, insuranceRecord{
			Airline:   airline.Bytes(),
			Flight:    flight,
			Timestamp: timestamp,
		})
		if err != nil {
			return err
		}
	}

	indexes := [][]byte{
		ledger.Key(allKeysTable, key.Bytes()),
		ledger.Key(insureesTable, key.Bytes(), passenger.Bytes()),
		ledger.Key(allInsureesTable, passenger.Bytes()),
		ledger.Key(passengerKeysTable, passenger.Bytes(), key.Bytes()),
	}
	for _, idx := range indexes {
		if err := st.SetFlag(idx, true); err != nil {
			return err
		}
	}
	if err := st.SetAmount(premiumKey, premium); err != nil {
		return err
	}
	if err := e.addBalance(st, premium); err != nil {
		return err
	}

	call.Emit(e.address, EventInsurancePurchased, InsurancePurchased{
		Key:       key,
		Airline:   airline,
		Flight:    flight,
		Timestamp: timestamp,
		Passenger: passenger,
		Premium:   premium,
	})
	return nil
}

// Deposit adds the attached value to the pool.
func (e *Escrow) Deposit(call *ledger.Call) error {
	if err := ledger.Require(call, e.admin.Operational, e.authorized); err != nil {
		return err
	}
	return e.addBalance(e.store(call), call.Value())
}

// CreditInsurees turns every live premium of the flight into a credit of
// premium*numerator/denominator, truncated.
func (e *Escrow) CreditInsurees(
	call *ledger.Call,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	numerator, denominator uint64,
) error {
	if err := ledger.Require(call, ledger.NoValue, e.admin.Operational, e.authorized); err != nil {
		return err
	}
	if denominator == 0 {
		return ErrInvalidRatio
	}

	st := e.store(call)
	key := FlightKey(airline, flight, timestamp)
	premiums, err := e.livePremiums(st, key)
	if err != nil {
		return err
	}

	num := new(big.Int).SetUint64(numerator)
	den := new(big.Int).SetUint64(denominator)
	for _, p := range premiums {
		payout := new(big.Int).Mul(p.premium, num)
		payout.Quo(payout, den)

		if err := st.SetAmount(ledger.Key(premiumTable, key.Bytes(), p.passenger.Bytes()), nil); err != nil {
			return err
		}
		creditKey := ledger.Key(creditTable, p.passenger.Bytes())
		credit, err := st.Amount(creditKey)
		if err != nil {
			return err
		}
		if err := st.SetAmount(creditKey, credit.Add(credit, payout)); err != nil {
			return err
		}
		call.Emit(e.address, EventInsureeCredited, InsureeCredited{
			Key:       key,
			Passenger: p.passenger,
			Premium:   p.premium,
			Payout:    payout,
		})
	}
	return nil
}

// TerminateInsurance zeroes every premium of the flight. Premiums stay in the pool.
func (e *Escrow) TerminateInsurance(call *ledger.Call, airline ledger.Address, flight string, timestamp uint64) error {
	if err := ledger.Require(call, ledger.NoValue, e.admin.Operational, e.authorized); err != nil {
		return err
	}

	st := e.store(call)
	key := FlightKey(airline, flight, timestamp)
	premiums, err := e.livePremiums(st, key)
	if err != nil {
		return err
	}
	passengers := make([]ledger.Address, 0, len(premiums))
	for _, p := range premiums {
		if err := st.SetAmount(ledger.Key(premiumTable, key.Bytes(), p.passenger.Bytes()), nil); err != nil {
			return err
		}
		passengers = append(passengers, p.passenger)
	}
	call.Emit(e.address, EventInsuranceTerminated, InsuranceTerminated{Key: key, Passengers: passengers})
	return nil
}

// Pay zeroes the passenger's credit and schedules its transfer.
func (e *Escrow) Pay(call *ledger.Call, passenger ledger.Address) error {
	if err := ledger.Require(call, ledger.NoValue, e.admin.Operational, e.authorized); err != nil {
		return err
	}

	st := e.store(call)
	creditKey := ledger.Key(creditTable, passenger.Bytes())
	credit, err := st.Amount(creditKey)
	if err != nil {
		return err
	}
	if ledger.IsZero(credit) {
		return nil
	}
	balance, err := st.Amount(balanceKey)
	if err != nil {
		return err
	}
	if balance.Cmp(credit) < 0 {
		return ledger.ErrInsufficientPool
	}

	if err := st.SetAmount(creditKey, nil); err != nil {
		return err
	}
	if err := st.SetAmount(balanceKey, balance.Sub(balance, credit)); err != nil {
		return err
	}
	call.Transfer(e.address, passenger, credit)
	call.Emit(e.address, EventCreditWithdrawn, CreditWithdrawn{Passenger: passenger, Amount: credit})
	return nil
}

// GetCredit returns what Pay would withdraw for passenger.
func (e *Escrow) GetCredit(call *ledger.Call, passenger ledger.Address) (*big.Int, error) {
	return e.store(call).Amount(ledger.Key(creditTable, passenger.Bytes()))
}

// GetInsurance returns the live premium of passenger on the flight, zero once settled.
func (e *Escrow) GetInsurance(
	call *ledger.Call,
	airline ledger.Address,
	flight string,
	timestamp uint64,
	passenger ledger.Address,
) (*big.Int, error) {
	key := FlightKey(airline, flight, timestamp)
	return e.store(call).Amount(ledger.Key(premiumTable, key.Bytes(), passenger.Bytes()))
}

// GetActiveInsuranceKeys lists flight keys holding a nonzero premium of passenger.
func (e *Escrow) GetActiveInsuranceKeys(call *ledger.Call, passenger ledger.Address) ([]ledger.Hash, error) {
	st := e.store(call)
	suffixes, err := st.Suffixes(ledger.Key(passengerKeysTable, passenger.Bytes()))
	if err != nil {
		return nil, err
	}
	keys := make([]ledger.Hash, 0, len(suffixes))
	for _, suffix := range suffixes {
		key := ledger.BytesToHash(suffix)
		premium, err := st.Amount(ledger.Key(premiumTable, key.Bytes(), passenger.Bytes()))
		if err != nil {
			return nil, err
		}
		if !ledger.IsZero(premium) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// GetInsuranceData resolves a flight key to the flight it was derived from.
func (e *Escrow) GetInsuranceData(call *ledger.Call, key ledger.Hash) (Insurance, bool, error) {
	var rec insuranceRecord
	found, err := e.store(call).Load(ledger.Key(insuranceTable, key.Bytes()), &rec)
	if err != nil || !found {
		return Insurance{}, false, err
	}
	return Insurance{
		Key:       key,
		Airline:   ledger.BytesToAddress(rec.Airline),
		Flight:    rec.Flight,
		Timestamp: rec.Timestamp,
	}, true, nil
}

// InsuranceKeys lists every flight key ever insured.
func (e *Escrow) InsuranceKeys(call *ledger.Call) ([]ledger.Hash, error) {
	suffixes, err := e.store(call).Suffixes(ledger.Key(allKeysTable))
	if err != nil {
		return nil, err
	}
	keys := make([]ledger.Hash, 0, len(suffixes))
	for _, suffix := range suffixes {
		keys = append(keys, ledger.BytesToHash(suffix))
	}
	return keys, nil
}

// Insurees lists every passenger that ever bought insurance.
func (e *Escrow) Insurees(call *ledger.Call) ([]ledger.Address, error) {
	suffixes, err := e.store(call).Suffixes(ledger.Key(allInsureesTable))
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Address, 0, len(suffixes))
	for _, suffix := range suffixes {
		out = append(out, ledger.BytesToAddress(suffix))
	}
	return out, nil
}

// IsAirlineFunded reports whether airline paid the deposit.
func (e *Escrow) IsAirlineFunded(call *ledger.Call, airline ledger.Address) (bool, error) {
	return e.store(call).Flag(ledger.Key(fundedTable, airline.Bytes()))
}

// IsAuthorized reports whether caller may invoke guarded operations.
func (e *Escrow) IsAuthorized(call *ledger.Call, caller ledger.Address) (bool, error) {
	return e.store(call).Flag(ledger.Key(authorizedTable, caller.Bytes()))
}

// IsOperational reports the operating status.
func (e *Escrow) IsOperational(call *ledger.Call) (bool, error) {
	return e.admin.IsOperational(call)
}

// Owner returns the deployer.
func (e *Escrow) Owner(call *ledger.Call) (ledger.Address, error) {
	return e.admin.Owner(call)
}

// Balance is the pool: funds, premiums and fees minus withdrawn credit.
func (e *Escrow) Balance(call *ledger.Call) (*big.Int, error) {
	return e.store(call).Amount(balanceKey)
}

func (e *Escrow) store(call *ledger.Call) *ledger.Store {
	return call.Store(e.address)
}

func (e *Escrow) authorized(call *ledger.Call) error {
	ok, err := e.IsAuthorized(call, call.Caller())
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorizedCaller
	}
	return nil
}

func (e *Escrow) addBalance(st *ledger.Store, value *big.Int) error {
	if ledger.IsZero(value) {
		return nil
	}
	balance, err := st.Amount(balanceKey)
	if err != nil {
		return err
	}
	return errors.Wrap(st.SetAmount(balanceKey, balance.Add(balance, value)), "failed to update pool")
}

type livePremium struct {
	passenger ledger.Address
	premium   *big.Int
}

// livePremiums reads every nonzero premium of a flight before anything is mutated.
func (e *Escrow) livePremiums(st *ledger.Store, key ledger.Hash) ([]livePremium, error) {
	suffixes, err := st.Suffixes(ledger.Key(insureesTable, key.Bytes()))
	if err != nil {
		return nil, err
	}
	var out []livePremium
	for _, suffix := range suffixes {
		passenger := ledger.BytesToAddress(suffix)
		premium, err := st.Amount(ledger.Key(premiumTable, key.Bytes(), passenger.Bytes()))
		if err != nil {
			return nil, err
		}
		if ledger.IsZero(premium) {
			continue
		}
		out = append(out, livePremium{passenger: passenger, premium: premium})
	}
	return out, nil
}
