// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package escrow

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/ledger/ledgertest"
)

var (
	owner     = ledgertest.Addr(1)
	operator  = ledgertest.Addr(2)
	airline   = ledgertest.Addr(3)
	passenger = ledgertest.Addr(4)
	other     = ledgertest.Addr(5)
)

const (
	flight    = "ND1309"
	departure = uint64(1577836800)
)

type fixture struct {
	t      *testing.T
	env    *ledgertest.Env
	escrow *Escrow
}

func setup(t *testing.T) *fixture {
	f := &fixture{t: t, env: ledgertest.New(t), escrow: New()}
	_, err := f.exec(owner, nil, f.escrow.Deploy)
	require.NoError(t, err)
	_, err = f.exec(owner, nil, func(call *ledger.Call) error {
		return f.escrow.AuthorizeCaller(call, operator)
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) exec(caller ledger.Address, value *big.Int, fn func(*ledger.Call) error) (*ledger.Receipt, error) {
	return f.env.Executor.Execute(context.Background(), f.t.Name(), caller, value, fn)
}

func (f *fixture) view(fn func(*ledger.Call) error) {
	require.NoError(f.t, f.env.Executor.View(context.Background(), other, fn))
}

func (f *fixture) buy(who ledger.Address, premium *big.Int) error {
	_, err := f.exec(operator, premium, func(call *ledger.Call) error {
		return f.escrow.Buy(call, airline, flight, departure, who)
	})
	return err
}

func (f *fixture) credit(who ledger.Address) *big.Int {
	var out *big.Int
	f.view(func(call *ledger.Call) error {
		var err error
		out, err = f.escrow.GetCredit(call, who)
		return err
	})
	return out
}

func (f *fixture) premium(who ledger.Address) *big.Int {
	var out *big.Int
	f.view(func(call *ledger.Call) error {
		var err error
		out, err = f.escrow.GetInsurance(call, airline, flight, departure, who)
		return err
	})
	return out
}

func (f *fixture) balance() *big.Int {
	var out *big.Int
	f.view(func(call *ledger.Call) error {
		var err error
		out, err = f.escrow.Balance(call)
		return err
	})
	return out
}

func requireAmount(t *testing.T, want, got *big.Int) {
	t.Helper()
	require.Equal(t, 0, want.Cmp(got), "want %s, got %s", want, got)
}

func TestEscrow_Authorization(t *testing.T) {
	f := setup(t)

	t.Run("unauthorized", func(t *testing.T) {
		_, err := f.exec(other, FundingAmount, func(call *ledger.Call) error {
			return f.escrow.Fund(call, airline)
		})
		require.Equal(t, ErrUnauthorizedCaller, err)
	})

	t.Run("only_owner_authorizes", func(t *testing.T) {
		_, err := f.exec(other, nil, func(call *ledger.Call) error {
			return f.escrow.AuthorizeCaller(call, other)
		})
		require.Equal(t, ledger.ErrNotOwner, err)
	})

	t.Run("deauthorize", func(t *testing.T) {
		receipt, err := f.exec(owner, nil, func(call *ledger.Call) error {
			return f.escrow.DeauthorizeCaller(call, operator)
		})
		require.NoError(t, err)
		require.Equal(t, EventCallerDeauthorized, receipt.Events[0].Name)

		err = f.buy(passenger, ledger.Ether(1))
		require.Equal(t, ErrUnauthorizedCaller, err)
	})
}

func TestEscrow_Fund(t *testing.T) {
	f := setup(t)

	_, err := f.exec(operator, ledger.Ether(9), func(call *ledger.Call) error {
		return f.escrow.Fund(call, airline)
	})
	require.Equal(t, ErrWrongFunding, err)

	receipt, err := f.exec(operator, FundingAmount, func(call *ledger.Call) error {
		return f.escrow.Fund(call, airline)
	})
	require.NoError(t, err)
	require.Equal(t, EventAirlineFunded, receipt.Events[0].Name)
	requireAmount(t, FundingAmount, f.balance())

	_, err = f.exec(operator, FundingAmount, func(call *ledger.Call) error {
		return f.escrow.Fund(call, airline)
	})
	require.Equal(t, ErrDuplicateFunding, err)
	requireAmount(t, FundingAmount, f.balance())

	f.view(func(call *ledger.Call) error {
		funded, err := f.escrow.IsAirlineFunded(call, airline)
		require.NoError(t, err)
		require.True(t, funded)
		return nil
	})
}

func TestEscrow_Buy(t *testing.T) {
	t.Run("cap", func(t *testing.T) {
		f := setup(t)
		err := f.buy(passenger, new(big.Int).Add(PremiumCap, ledger.Wei(1)))
		require.Equal(t, ErrPremiumCap, err)
		require.NoError(t, f.buy(passenger, PremiumCap))
	})

	t.Run("double_purchase", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(100)))
		require.Equal(t, ErrDoubleInsurance, f.buy(passenger, ledger.Wei(100)))
		requireAmount(t, ledger.Wei(100), f.premium(passenger))
		requireAmount(t, ledger.Wei(100), f.balance())
	})

	t.Run("records_metadata", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(100)))

		key := FlightKey(airline, flight, departure)
		f.view(func(call *ledger.Call) error {
			data, found, err := f.escrow.GetInsuranceData(call, key)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, Insurance{Key: key, Airline: airline, Flight: flight, Timestamp: departure}, data)

			keys, err := f.escrow.GetActiveInsuranceKeys(call, passenger)
			require.NoError(t, err)
			require.Equal(t, []ledger.Hash{key}, keys)
			return nil
		})
	})

	t.Run("indexes_stay_duplicate_free", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(100)))
		_, err := f.exec(operator, nil, func(call *ledger.Call) error {
			return f.escrow.TerminateInsurance(call, airline, flight, departure)
		})
		require.NoError(t, err)
		require.NoError(t, f.buy(passenger, ledger.Wei(50)))
		require.NoError(t, f.buy(other, ledger.Wei(50)))

		f.view(func(call *ledger.Call) error {
			keys, err := f.escrow.InsuranceKeys(call)
			require.NoError(t, err)
			require.Len(t, keys, 1)

			insurees, err := f.escrow.Insurees(call)
			require.NoError(t, err)
			require.ElementsMatch(t, []ledger.Address{passenger, other}, insurees)
			return nil
		})
	})
}

func TestEscrow_CreditInsurees(t *testing.T) {
	credit := func(f *fixture, num, den uint64) (*ledger.Receipt, error) {
		return f.exec(operator, nil, func(call *ledger.Call) error {
			return f.escrow.CreditInsurees(call, airline, flight, departure, num, den)
		})
	}

	t.Run("three_halves", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Ether(1)))
		require.NoError(t, f.buy(other, ledger.Wei(1)))

		receipt, err := credit(f, 3, 2)
		require.NoError(t, err)
		require.Len(t, receipt.Events, 2)

		requireAmount(t, new(big.Int).Div(ledger.Ether(3), big.NewInt(2)), f.credit(passenger))
		requireAmount(t, ledger.Wei(1), f.credit(other))
		requireAmount(t, new(big.Int), f.premium(passenger))
	})

	t.Run("repeated_is_noop", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(10)))
		_, err := credit(f, 3, 2)
		require.NoError(t, err)
		receipt, err := credit(f, 3, 2)
		require.NoError(t, err)
		require.Empty(t, receipt.Events)
		requireAmount(t, ledger.Wei(15), f.credit(passenger))
	})

	t.Run("no_insurees", func(t *testing.T) {
		f := setup(t)
		receipt, err := credit(f, 3, 2)
		require.NoError(t, err)
		require.Empty(t, receipt.Events)
	})

	t.Run("zero_denominator", func(t *testing.T) {
		f := setup(t)
		_, err := credit(f, 3, 0)
		require.Equal(t, ErrInvalidRatio, err)
	})

	t.Run("no_value", func(t *testing.T) {
		f := setup(t)
		_, err := f.exec(operator, ledger.Wei(1), func(call *ledger.Call) error {
			return f.escrow.CreditInsurees(call, airline, flight, departure, 3, 2)
		})
		require.Equal(t, ledger.ErrUnexpectedValue, err)
	})
}

func TestEscrow_TerminateInsurance(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.buy(passenger, ledger.Wei(10)))

	receipt, err := f.exec(operator, nil, func(call *ledger.Call) error {
		return f.escrow.TerminateInsurance(call, airline, flight, departure)
	})
	require.NoError(t, err)
	require.Equal(t, EventInsuranceTerminated, receipt.Events[0].Name)
	require.Equal(t, []ledger.Address{passenger}, receipt.Events[0].Payload.(InsuranceTerminated).Passengers)

	requireAmount(t, new(big.Int), f.premium(passenger))
	requireAmount(t, new(big.Int), f.credit(passenger))
	requireAmount(t, ledger.Wei(10), f.balance())

	f.view(func(call *ledger.Call) error {
		keys, err := f.escrow.GetActiveInsuranceKeys(call, passenger)
		require.NoError(t, err)
		require.Empty(t, keys)
		return nil
	})
}

func TestEscrow_Pay(t *testing.T) {
	pay := func(f *fixture, who ledger.Address) (*ledger.Receipt, error) {
		return f.exec(operator, nil, func(call *ledger.Call) error {
			return f.escrow.Pay(call, who)
		})
	}

	t.Run("pay_then_pay", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(10)))
		_, err := f.exec(operator, nil, func(call *ledger.Call) error {
			return f.escrow.CreditInsurees(call, airline, flight, departure, 3, 2)
		})
		require.NoError(t, err)
		// The pool only holds the premium, top it up to cover the payout.
		_, err = f.exec(operator, ledger.Wei(5), f.escrow.Deposit)
		require.NoError(t, err)

		receipt, err := pay(f, passenger)
		require.NoError(t, err)
		require.Len(t, receipt.Transfers, 1)
		require.Equal(t, passenger, receipt.Transfers[0].To)
		require.Equal(t, f.escrow.Address(), receipt.Transfers[0].From)
		requireAmount(t, ledger.Wei(15), receipt.Transfers[0].Amount)
		requireAmount(t, new(big.Int), f.credit(passenger))
		requireAmount(t, new(big.Int), f.balance())

		receipt, err = pay(f, passenger)
		require.NoError(t, err)
		require.Empty(t, receipt.Transfers)
		require.Len(t, f.env.Settler.Transfers(), 1)
	})

	t.Run("insufficient_pool", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(10)))
		_, err := f.exec(operator, nil, func(call *ledger.Call) error {
			return f.escrow.CreditInsurees(call, airline, flight, departure, 3, 2)
		})
		require.NoError(t, err)

		_, err = pay(f, passenger)
		require.Equal(t, ledger.ErrInsufficientPool, err)
		requireAmount(t, ledger.Wei(15), f.credit(passenger))
	})
}

func TestEscrow_OperatingStatus(t *testing.T) {
	f := setup(t)

	_, err := f.exec(owner, nil, func(call *ledger.Call) error {
		return f.escrow.SetOperatingStatus(call, false)
	})
	require.NoError(t, err)

	require.Equal(t, ledger.ErrNotOperational, f.buy(passenger, ledger.Wei(1)))

	_, err = f.exec(owner, nil, func(call *ledger.Call) error {
		return f.escrow.SetOperatingStatus(call, true)
	})
	require.NoError(t, err)
	require.NoError(t, f.buy(passenger, ledger.Wei(1)))
}

func TestFlightKey(t *testing.T) {
	require.Equal(t, FlightKey(airline, flight, departure), FlightKey(airline, flight, departure))
	require.NotEqual(t, FlightKey(airline, flight, departure), FlightKey(airline, flight, departure+1))
	require.NotEqual(t, FlightKey(airline, flight, departure), FlightKey(other, flight, departure))
}
