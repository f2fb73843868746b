// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/ledger/ledgertest"
)

var (
	owner     = ledgertest.Addr(1)
	airlineA  = ledgertest.Addr(0x0a)
	airlineB  = ledgertest.Addr(0x0b)
	airlineC  = ledgertest.Addr(0x0c)
	airlineD  = ledgertest.Addr(0x0d)
	airlineE  = ledgertest.Addr(0x0e)
	passenger = ledgertest.Addr(0x20)
)

const (
	flight    = "ND1309"
	departure = uint64(1577836800)
)

type fixture struct {
	t      *testing.T
	env    *ledgertest.Env
	escrow *escrow.Escrow
	coord  *Coordinator
}

func setup(t *testing.T) *fixture {
	return setupWithEnv(t, ledgertest.New(t))
}

func setupWithEnv(t *testing.T, env *ledgertest.Env) *fixture {
	e := escrow.New()
	f := &fixture{t: t, env: env, escrow: e, coord: New(e)}
	_, err := f.exec(owner, nil, func(call *ledger.Call) error {
		if err := f.escrow.Deploy(call); err != nil {
			return err
		}
		if err := f.coord.Deploy(call, airlineA); err != nil {
			return err
		}
		return f.escrow.AuthorizeCaller(call, f.coord.Address())
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) exec(caller ledger.Address, value *big.Int, fn func(*ledger.Call) error) (*ledger.Receipt, error) {
	return f.env.Executor.Execute(context.Background(), f.t.Name(), caller, value, fn)
}

func (f *fixture) view(fn func(*ledger.Call) error) {
	require.NoError(f.t, f.env.Executor.View(context.Background(), owner, fn))
}

func (f *fixture) fund(airline ledger.Address) error {
	_, err := f.exec(airline, escrow.FundingAmount, f.coord.Fund)
	return err
}

func (f *fixture) register(sponsor, candidate ledger.Address) (bool, uint32, error) {
	var (
		promoted bool
		votes    uint32
	)
	_, err := f.exec(sponsor, nil, func(call *ledger.Call) error {
		var err error
		promoted, votes, err = f.coord.RegisterAirline(call, candidate)
		return err
	})
	return promoted, votes, err
}

func (f *fixture) airline(addr ledger.Address) Airline {
	var a Airline
	f.view(func(call *ledger.Call) error {
		var err error
		a, err = f.coord.GetAirline(call, addr)
		return err
	})
	return a
}

func (f *fixture) count() uint64 {
	var n uint64
	f.view(func(call *ledger.Call) error {
		var err error
		n, err = f.coord.RegisteredAirlineCount(call)
		return err
	})
	return n
}

func (f *fixture) buy(who ledger.Address, premium *big.Int) error {
	_, err := f.exec(who, premium, func(call *ledger.Call) error {
		return f.coord.Buy(call, airlineA, flight, departure)
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
		out, err = f.escrow.GetInsurance(call, airlineA, flight, departure, who)
		return err
	})
	return out
}

func requireAmount(t *testing.T, want, got *big.Int) {
	t.Helper()
	require.Equal(t, 0, want.Cmp(got), "want %s, got %s", want, got)
}

func TestCoordinator_Deploy(t *testing.T) {
	f := setup(t)

	require.Equal(t, uint64(1), f.count())
	require.Equal(t, Registered, f.airline(airlineA).Status)
	require.Equal(t, Unregistered, f.airline(airlineB).Status)

	_, err := f.exec(owner, nil, func(call *ledger.Call) error {
		return f.coord.Deploy(call, airlineB)
	})
	require.Equal(t, ledger.ErrAlreadyDeployed, err)
}

func TestCoordinator_Fund(t *testing.T) {
	f := setup(t)

	require.Equal(t, ErrInvalidCallerRole, f.fund(airlineB))

	_, err := f.exec(airlineA, ledger.Ether(5), f.coord.Fund)
	require.Equal(t, escrow.ErrWrongFunding, err)

	require.NoError(t, f.fund(airlineA))
	require.Equal(t, Funded, f.airline(airlineA).Status)
	require.Equal(t, escrow.ErrDuplicateFunding, f.fund(airlineA))

	f.view(func(call *ledger.Call) error {
		funded, err := f.escrow.IsAirlineFunded(call, airlineA)
		require.NoError(t, err)
		require.True(t, funded)

		balance, err := f.escrow.Balance(call)
		require.NoError(t, err)
		requireAmount(t, escrow.FundingAmount, balance)
		return nil
	})
}

func TestCoordinator_RegisterAirline(t *testing.T) {
	t.Run("unfunded_sponsor", func(t *testing.T) {
		f := setup(t)
		_, _, err := f.register(airlineA, airlineB)
		require.Equal(t, ErrInvalidCallerRole, err)
		require.Equal(t, uint64(1), f.count())
	})

	t.Run("direct_below_threshold", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.fund(airlineA))

		for i, candidate := range []ledger.Address{airlineB, airlineC, airlineD} {
			promoted, votes, err := f.register(airlineA, candidate)
			require.NoError(t, err)
			require.True(t, promoted)
			require.Zero(t, votes)
			require.Equal(t, uint64(i+2), f.count())
			require.Equal(t, Registered, f.airline(candidate).Status)
		}

		_, _, err := f.register(airlineA, airlineB)
		require.Equal(t, ErrAlreadyRegistered, err)
		require.Equal(t, uint64(4), f.count())
	})

	t.Run("consensus_at_threshold", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.fund(airlineA))
		for _, candidate := range []ledger.Address{airlineB, airlineC, airlineD} {
			_, _, err := f.register(airlineA, candidate)
			require.NoError(t, err)
			require.NoError(t, f.fund(candidate))
		}
		require.Equal(t, uint64(4), f.count())

		promoted, votes, err := f.register(airlineA, airlineE)
		require.NoError(t, err)
		require.False(t, promoted)
		require.Equal(t, uint32(1), votes)
		require.Equal(t, InRegistration, f.airline(airlineE).Status)

		// A second vote from the same airline is not counted.
		promoted, votes, err = f.register(airlineA, airlineE)
		require.NoError(t, err)
		require.False(t, promoted)
		require.Equal(t, uint32(1), votes)
		require.Equal(t, uint64(4), f.count())

		promoted, votes, err = f.register(airlineB, airlineE)
		require.NoError(t, err)
		require.True(t, promoted)
		require.Equal(t, uint32(2), votes)
		require.Equal(t, Registered, f.airline(airlineE).Status)
		require.Equal(t, uint64(5), f.count())

		_, _, err = f.register(airlineC, airlineE)
		require.Equal(t, ErrAlreadyRegistered, err)
		require.Equal(t, uint64(5), f.count())
	})

	t.Run("paused", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.fund(airlineA))
		_, err := f.exec(owner, nil, func(call *ledger.Call) error {
			return f.coord.SetOperatingStatus(call, false)
		})
		require.NoError(t, err)

		_, _, err = f.register(airlineA, airlineB)
		require.Equal(t, ledger.ErrNotOperational, err)
	})
}

func TestCoordinator_RegisterFlight(t *testing.T) {
	f := setup(t)
	registerFlight := func(airline ledger.Address) error {
		_, err := f.exec(airline, nil, func(call *ledger.Call) error {
			_, err := f.coord.RegisterFlight(call, flight, departure)
			return err
		})
		return err
	}

	require.Equal(t, ErrInvalidCallerRole, registerFlight(airlineA))
	require.NoError(t, f.fund(airlineA))
	require.NoError(t, registerFlight(airlineA))
	require.Equal(t, ErrAlreadyRegistered, registerFlight(airlineA))

	f.view(func(call *ledger.Call) error {
		fl, found, err := f.coord.GetFlight(call, airlineA, flight, departure)
		require.NoError(t, err)
		require.True(t, found)
		require.True(t, fl.Registered)
		require.Equal(t, StatusUnknown, fl.Status)
		require.Equal(t, escrow.FlightKey(airlineA, flight, departure), fl.Key)
		return nil
	})
}

func TestCoordinator_Buy(t *testing.T) {
	f := setup(t)

	require.Equal(t, ErrZeroPremium, f.buy(passenger, nil))
	require.Equal(t, escrow.ErrPremiumCap, f.buy(passenger, new(big.Int).Add(escrow.PremiumCap, ledger.Wei(1))))
	require.NoError(t, f.buy(passenger, ledger.Ether(1)))
	require.Equal(t, escrow.ErrDoubleInsurance, f.buy(passenger, ledger.Wei(1)))
	requireAmount(t, ledger.Ether(1), f.premium(passenger))
}

func TestCoordinator_RegisterOracle(t *testing.T) {
	f := setup(t)
	oracle := ledgertest.Addr(0x30)

	_, err := f.exec(oracle, ledger.Wei(1), func(call *ledger.Call) error {
		_, err := f.coord.RegisterOracle(call)
		return err
	})
	require.Equal(t, ErrWrongFee, err)

	indexes := f.registerOracle(oracle)
	for i, idx := range indexes {
		require.True(t, idx < IndexRange)
		for _, other := range indexes[i+1:] {
			require.NotEqual(t, idx, other)
		}
	}

	f.view(func(call *ledger.Call) error {
		balance, err := f.escrow.Balance(call)
		require.NoError(t, err)
		requireAmount(t, RegistrationFee, balance)
		return nil
	})

	_, err = f.exec(oracle, nil, func(call *ledger.Call) error {
		got, err := f.coord.GetMyIndexes(call)
		require.Equal(t, indexes, got)
		return err
	})
	require.NoError(t, err)

	_, err = f.exec(passenger, nil, func(call *ledger.Call) error {
		_, err := f.coord.GetMyIndexes(call)
		return err
	})
	require.Equal(t, ErrNotOracle, err)
}

func TestCoordinator_IndexDraw(t *testing.T) {
	t.Run("nonce_wraps", func(t *testing.T) {
		f := setup(t)
		_, err := f.exec(owner, nil, func(call *ledger.Call) error {
			return f.coord.store(call).SetUint(nonceKey, NonceLimit)
		})
		require.NoError(t, err)

		_, err = f.exec(passenger, nil, func(call *ledger.Call) error {
			_, err := f.coord.FetchFlightStatus(call, airlineA, flight, departure)
			return err
		})
		require.NoError(t, err)

		f.view(func(call *ledger.Call) error {
			nonce, err := f.coord.store(call).Uint(nonceKey)
			require.NoError(t, err)
			require.Zero(t, nonce)
			return nil
		})
	})

	t.Run("spreads_across_range", func(t *testing.T) {
		f := setup(t)
		const draws = 200
		counts := make(map[uint8]int)
		for i := 0; i < draws; i++ {
			_, err := f.exec(passenger, nil, func(call *ledger.Call) error {
				idx, err := f.coord.FetchFlightStatus(call, airlineA, flight, departure+uint64(i))
				counts[idx]++
				return err
			})
			require.NoError(t, err)
		}
		require.Len(t, counts, IndexRange)
		for idx, n := range counts {
			require.True(t, idx < IndexRange)
			require.True(t, n < draws/2, "index %d drawn %d of %d times", idx, n, draws)
		}
	})

	t.Run("gives_up_on_constant_entropy", func(t *testing.T) {
		f := setupWithEnv(t, ledgertest.NewWithChain(t, &ledgertest.Chain{Seeds: []ledger.Hash{{}}}))
		_, err := f.exec(ledgertest.Addr(0x30), RegistrationFee, func(call *ledger.Call) error {
			_, err := f.coord.RegisterOracle(call)
			return err
		})
		require.Error(t, err)
		_, rejected := ledger.AsRejection(err)
		require.False(t, rejected)
	})
}

func (f *fixture) registerOracle(oracle ledger.Address) [3]uint8 {
	var indexes [3]uint8
	_, err := f.exec(oracle, RegistrationFee, func(call *ledger.Call) error {
		var err error
		indexes, err = f.coord.RegisterOracle(call)
		return err
	})
	require.NoError(f.t, err)
	return indexes
}

// oracles registers oracles until n of them hold index, and returns those
// plus one that does not.
func (f *fixture) oracles(index uint8, n int) ([]ledger.Address, ledger.Address) {
	var (
		matching []ledger.Address
		stranger ledger.Address
	)
	for i := 0; len(matching) < n || stranger.IsZero(); i++ {
		require.True(f.t, i < 250, "not enough oracles drew index %d", index)
		oracle := ledger.BytesToAddress([]byte{0xbb, byte(i)})
		indexes := f.registerOracle(oracle)
		if containsIndex(indexes[:], index) {
			matching = append(matching, oracle)
		} else if stranger.IsZero() {
			stranger = oracle
		}
	}
	return matching, stranger
}

func (f *fixture) fetch() uint8 {
	var index uint8
	_, err := f.exec(passenger, nil, func(call *ledger.Call) error {
		var err error
		index, err = f.coord.FetchFlightStatus(call, airlineA, flight, departure)
		return err
	})
	require.NoError(f.t, err)
	return index
}

func (f *fixture) submit(oracle ledger.Address, index uint8, status FlightStatus) (bool, error) {
	var decided bool
	_, err := f.exec(oracle, nil, func(call *ledger.Call) error {
		var err error
		decided, err = f.coord.SubmitOracleResponse(call, index, airlineA, flight, departure, status)
		return err
	})
	return decided, err
}

func TestCoordinator_OracleAggregation(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.buy(passenger, ledger.Wei(1)))

	index := f.fetch()
	oracles, stranger := f.oracles(index, 4)

	t.Run("preconditions", func(t *testing.T) {
		_, err := f.submit(passenger, index, StatusLateAirline)
		require.Equal(t, ErrNotOracle, err)

		_, err = f.submit(stranger, index, StatusLateAirline)
		require.Equal(t, ErrIndexMismatch, err)

		_, err = f.submit(oracles[0], index, FlightStatus(25))
		require.Equal(t, ErrInvalidStatus, err)

		_, err = f.exec(oracles[0], nil, func(call *ledger.Call) error {
			_, err := f.coord.SubmitOracleResponse(call, index, airlineA, "OTHER", departure, StatusLateAirline)
			return err
		})
		require.Equal(t, ErrUnknownRequest, err)
	})

	t.Run("duplicate_reporter_counts_once", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			decided, err := f.submit(oracles[0], index, StatusLateAirline)
			require.NoError(t, err)
			require.False(t, decided)
		}
		decided, err := f.submit(oracles[1], index, StatusLateAirline)
		require.NoError(t, err)
		require.False(t, decided)
		requireAmount(t, ledger.Wei(1), f.premium(passenger))
	})

	t.Run("third_report_decides", func(t *testing.T) {
		decided, err := f.submit(oracles[2], index, StatusLateAirline)
		require.NoError(t, err)
		require.True(t, decided)

		// 1 wei * 3 / 2 truncates to 1 wei.
		requireAmount(t, ledger.Wei(1), f.credit(passenger))
		requireAmount(t, new(big.Int), f.premium(passenger))

		f.view(func(call *ledger.Call) error {
			fl, found, err := f.coord.GetFlight(call, airlineA, flight, departure)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, StatusLateAirline, fl.Status)
			require.False(t, fl.Registered)
			return nil
		})
	})

	t.Run("late_report_has_no_effect", func(t *testing.T) {
		decided, err := f.submit(oracles[3], index, StatusLateAirline)
		require.NoError(t, err)
		require.False(t, decided)

		decided, err = f.submit(oracles[3], index, StatusOnTime)
		require.NoError(t, err)
		require.False(t, decided)
		requireAmount(t, ledger.Wei(1), f.credit(passenger))

		f.view(func(call *ledger.Call) error {
			req, found, err := f.coord.GetRequest(call, index, airlineA, flight, departure)
			require.NoError(t, err)
			require.True(t, found)
			require.False(t, req.Open)
			require.Len(t, req.Reports[StatusLateAirline], 4)
			require.Len(t, req.Reports[StatusOnTime], 1)
			return nil
		})
	})

	t.Run("pay_then_pay", func(t *testing.T) {
		receipt, err := f.exec(passenger, nil, f.coord.Pay)
		require.NoError(t, err)
		require.Len(t, receipt.Transfers, 1)
		requireAmount(t, ledger.Wei(1), receipt.Transfers[0].Amount)
		require.Equal(t, passenger, receipt.Transfers[0].To)

		receipt, err = f.exec(passenger, nil, f.coord.Pay)
		require.NoError(t, err)
		require.Empty(t, receipt.Transfers)
		requireAmount(t, new(big.Int), f.credit(passenger))
	})
}

func TestCoordinator_StatusDecisions(t *testing.T) {
	decide := func(t *testing.T, status FlightStatus) *fixture {
		f := setup(t)
		require.NoError(t, f.buy(passenger, ledger.Wei(10)))
		index := f.fetch()
		oracles, _ := f.oracles(index, MinResponses)
		for i, oracle := range oracles {
			decided, err := f.submit(oracle, index, status)
			require.NoError(t, err)
			require.Equal(t, i == MinResponses-1, decided)
		}
		return f
	}

	t.Run("on_time_terminates", func(t *testing.T) {
		f := decide(t, StatusOnTime)
		requireAmount(t, new(big.Int), f.premium(passenger))
		requireAmount(t, new(big.Int), f.credit(passenger))
	})

	t.Run("weather_terminates", func(t *testing.T) {
		f := decide(t, StatusLateWeather)
		requireAmount(t, new(big.Int), f.premium(passenger))
		requireAmount(t, new(big.Int), f.credit(passenger))
	})

	t.Run("unknown_changes_nothing", func(t *testing.T) {
		f := decide(t, StatusUnknown)
		requireAmount(t, ledger.Wei(10), f.premium(passenger))
		requireAmount(t, new(big.Int), f.credit(passenger))
	})

	t.Run("late_airline_credits", func(t *testing.T) {
		f := decide(t, StatusLateAirline)
		requireAmount(t, ledger.Wei(15), f.credit(passenger))
		require.Len(t, f.env.Publisher.Named(EventFlightStatusInfo), 1)
		require.Len(t, f.env.Publisher.Named(escrow.EventInsureeCredited), 1)
	})
}

func TestCoordinator_FetchFlightStatus(t *testing.T) {
	f := setup(t)
	index := f.fetch()

	f.view(func(call *ledger.Call) error {
		req, found, err := f.coord.GetRequest(call, index, airlineA, flight, departure)
		require.NoError(t, err)
		require.True(t, found)
		require.True(t, req.Open)
		require.Equal(t, passenger, req.Requester)
		require.Empty(t, req.Reports)
		return nil
	})

	events := f.env.Publisher.Named(EventOracleRequest)
	require.Len(t, events, 1)
	require.Equal(t, index, events[0].Payload.(OracleRequest).Index)
}

func TestCoordinator_DecisionIsFinal(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.buy(passenger, ledger.Wei(10)))
	index := f.fetch()
	oracles, _ := f.oracles(index, 2*MinResponses)
	for i, oracle := range oracles[:MinResponses] {
		decided, err := f.submit(oracle, index, StatusLateAirline)
		require.NoError(t, err)
		require.Equal(t, i == MinResponses-1, decided)
	}
	requireAmount(t, ledger.Wei(15), f.credit(passenger))

	late := ledgertest.Addr(0x21)
	_, err := f.exec(late, ledger.Wei(10), func(call *ledger.Call) error {
		return f.coord.Buy(call, airlineA, flight, departure)
	})
	require.NoError(t, err)

	t.Run("refetch_rejected", func(t *testing.T) {
		hit := false
		for i := 0; i < 200 && !hit; i++ {
			requester := ledger.BytesToAddress([]byte{0xcc, byte(i)})
			var drawn uint8
			_, err := f.exec(requester, nil, func(call *ledger.Call) error {
				var err error
				drawn, err = f.coord.FetchFlightStatus(call, airlineA, flight, departure)
				return err
			})
			if err == ErrRequestClosed {
				hit = true
				continue
			}
			require.NoError(t, err)
			require.NotEqual(t, index, drawn)
		}
		require.True(t, hit, "index %d never drawn again", index)

		f.view(func(call *ledger.Call) error {
			req, found, err := f.coord.GetRequest(call, index, airlineA, flight, departure)
			require.NoError(t, err)
			require.True(t, found)
			require.False(t, req.Open)
			require.Len(t, req.Reports[StatusLateAirline], MinResponses)
			return nil
		})
	})

	t.Run("further_reports_decide_nothing", func(t *testing.T) {
		for _, oracle := range oracles[MinResponses:] {
			decided, err := f.submit(oracle, index, StatusLateAirline)
			require.NoError(t, err)
			require.False(t, decided)
		}
		require.Len(t, f.env.Publisher.Named(EventFlightStatusInfo), 1)
		requireAmount(t, ledger.Wei(15), f.credit(passenger))
		requireAmount(t, new(big.Int), f.credit(late))
		var premium *big.Int
		f.view(func(call *ledger.Call) error {
			var err error
			premium, err = f.escrow.GetInsurance(call, airlineA, flight, departure, late)
			return err
		})
		requireAmount(t, ledger.Wei(10), premium)
	})
}
