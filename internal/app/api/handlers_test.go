// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/app/projection"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/ledger/ledgertest"
	"github.com/insolar/flightsurety/internal/models"
)

var (
	admin     = ledgertest.Addr(1)
	airline   = ledgertest.Addr(0x0a)
	passenger = ledgertest.Addr(0x20)
)

const (
	flight    = "ND1309"
	departure = uint64(1577836800)
	stamp     = int64(departure)
)

type client struct {
	t *testing.T
	e *echo.Echo
}

func newClient(t *testing.T, hist projection.History) (*client, *ledgertest.Env) {
	env := ledgertest.New(t)
	sys := system.New(env.Executor)
	_, err := sys.Deploy(context.Background(), admin, airline)
	require.NoError(t, err)
	return &client{t: t, e: New(ledgertest.Observability(), sys, hist)}, env
}

func (c *client) do(method, path string, from *ledger.Address, value *big.Int, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(c.t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if from != nil {
		req.Header.Set(HeaderCaller, from.Hex())
	}
	if value != nil {
		req.Header.Set(HeaderValue, value.String())
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	return rec
}

func (c *client) ok(rec *httptest.ResponseRecorder, out interface{}) {
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (c *client) rejected(rec *httptest.ResponseRecorder, status int, code string) {
	require.Equal(c.t, status, rec.Code, rec.Body.String())
	var msg ErrorMessage
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &msg))
	require.Equal(c.t, code, msg.Code)
	require.NotEmpty(c.t, msg.Error)
}

// decide registers oracles until enough of them hold index and has them
// all report status for the test flight.
func (c *client) decide(index int, status coordinator.FlightStatus) {
	var reporters []ledger.Address
	for i := 0; len(reporters) < coordinator.MinResponses; i++ {
		require.True(c.t, i < 250)
		oracle := ledger.BytesToAddress([]byte{0xcc, byte(i)})
		var reg OracleRegistrationResponse
		c.ok(c.do(http.MethodPost, "/oracles", &oracle, coordinator.RegistrationFee, nil), &reg)
		var mine IndexesResponse
		c.ok(c.do(http.MethodGet, "/oracles/indexes", &oracle, nil, nil), &mine)
		require.Equal(c.t, reg.Indexes, mine.Indexes)
		for _, idx := range reg.Indexes {
			if idx == int(index) {
				reporters = append(reporters, oracle)
			}
		}
	}

	for i, oracle := range reporters {
		var d OracleDecisionResponse
		c.ok(c.do(http.MethodPost, "/oracles/responses", &oracle, nil, OracleResponseRequest{
			Index:     int(index),
			Airline:   airline.Hex(),
			Flight:    flight,
			Timestamp: stamp,
			Status:    int(status),
		}), &d)
		require.Equal(c.t, i == len(reporters)-1, d.Decided)
	}
}

func TestServer_Status(t *testing.T) {
	c, _ := newClient(t, nil)

	var st StatusResponse
	c.ok(c.do(http.MethodGet, "/status", nil, nil, nil), &st)
	require.True(t, st.CoordinatorOperational)
	require.True(t, st.EscrowOperational)
	require.Equal(t, int64(1), st.RegisteredAirlines)
	require.Equal(t, "0", st.Balance)
}

func TestServer_RequestValidation(t *testing.T) {
	c, _ := newClient(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		from   *ledger.Address
		body   interface{}
	}{
		{"no_caller", http.MethodPost, "/airlines/fund", nil, nil},
		{"bad_address", http.MethodGet, "/airlines/0xzz", nil, nil},
		{"bad_timestamp", http.MethodGet, "/flights/" + airline.Hex() + "/ND1309/yesterday", nil, nil},
		{"negative_timestamp", http.MethodGet, "/flights/" + airline.Hex() + "/ND1309/-1", nil, nil},
		{"bad_index", http.MethodGet, "/requests/300/" + airline.Hex() + "/ND1309/1", nil, nil},
		{"bad_key", http.MethodGet, "/insurances/0x01", nil, nil},
		{"bad_body_address", http.MethodPost, "/airlines", &airline, AirlineRequest{Airline: "nope"}},
		{"bad_body_index", http.MethodPost, "/oracles/responses", &airline, OracleResponseRequest{
			Index: 256, Airline: airline.Hex(), Flight: flight, Timestamp: stamp,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := c.do(tc.method, tc.path, tc.from, nil, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			var msg ErrorMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
			require.Len(t, msg.Error, 1)
		})
	}

	t.Run("bad_value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/airlines/fund", nil)
		req.Header.Set(HeaderCaller, airline.Hex())
		req.Header.Set(HeaderValue, "-5")
		rec := httptest.NewRecorder()
		c.e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Rejections(t *testing.T) {
	c, _ := newClient(t, nil)
	stranger := ledgertest.Addr(0x40)

	t.Run("not_owner", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/admin/operating-status", &stranger, nil, OperatingStatusRequest{Operational: false})
		c.rejected(rec, http.StatusForbidden, ledger.ErrNotOwner.Code)
	})

	t.Run("unknown_module", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/admin/operating-status", &admin, nil, OperatingStatusRequest{Module: "radar"})
		c.rejected(rec, http.StatusBadRequest, system.ErrUnknownModule.Code)
	})

	t.Run("wrong_funding", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/airlines/fund", &airline, ledger.Ether(1), nil)
		c.rejected(rec, http.StatusBadRequest, escrow.ErrWrongFunding.Code)
	})

	t.Run("unfunded_registration", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/airlines", &airline, nil, AirlineRequest{Airline: stranger.Hex()})
		c.rejected(rec, http.StatusBadRequest, coordinator.ErrInvalidCallerRole.Code)
	})

	t.Run("premium_cap", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/insurance", &passenger, ledger.Ether(2), InsuranceRequest{
			Airline: airline.Hex(), Flight: flight, Timestamp: stamp,
		})
		c.rejected(rec, http.StatusBadRequest, escrow.ErrPremiumCap.Code)
	})

	t.Run("paused", func(t *testing.T) {
		c.ok(c.do(http.MethodPost, "/admin/operating-status", &admin, nil, OperatingStatusRequest{
			Module: system.ModuleCoordinator, Operational: false,
		}), nil)
		rec := c.do(http.MethodPost, "/airlines/fund", &airline, escrow.FundingAmount, nil)
		c.rejected(rec, http.StatusBadRequest, ledger.ErrNotOperational.Code)
	})
}

func TestServer_Authorization(t *testing.T) {
	c, _ := newClient(t, nil)
	target := ledgertest.Addr(0x50)
	path := "/admin/callers/" + target.Hex()

	var receipt ReceiptResponse
	c.ok(c.do(http.MethodPost, path, &admin, nil, nil), &receipt)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, escrow.EventCallerAuthorized, receipt.Events[0].Name)

	c.ok(c.do(http.MethodDelete, path, &admin, nil, nil), &receipt)
	require.Equal(t, escrow.EventCallerDeauthorized, receipt.Events[0].Name)

	rec := c.do(http.MethodPost, path, &target, nil, nil)
	c.rejected(rec, http.StatusForbidden, ledger.ErrNotOwner.Code)
}

func TestServer_FlightDelayPayout(t *testing.T) {
	c, env := newClient(t, nil)

	c.ok(c.do(http.MethodPost, "/airlines/fund", &airline, escrow.FundingAmount, nil), nil)

	var a AirlineResponse
	c.ok(c.do(http.MethodGet, "/airlines/"+airline.Hex(), nil, nil, nil), &a)
	require.Equal(t, coordinator.Funded.String(), a.Status)
	require.True(t, a.Funded)

	var fk FlightKeyResponse
	c.ok(c.do(http.MethodPost, "/flights", &airline, nil, FlightRequest{Flight: flight, Timestamp: stamp}), &fk)
	require.Equal(t, escrow.FlightKey(airline, flight, departure).Hex(), fk.Key)
	require.Len(t, fk.Receipt.Events, 1)

	flightPath := fmt.Sprintf("/flights/%s/%s/%d", airline.Hex(), flight, departure)
	var fl FlightResponse
	c.ok(c.do(http.MethodGet, flightPath, nil, nil, nil), &fl)
	require.True(t, fl.Registered)
	require.Equal(t, coordinator.StatusUnknown.String(), fl.Status)

	ins := InsuranceRequest{Airline: airline.Hex(), Flight: flight, Timestamp: stamp}
	c.ok(c.do(http.MethodPost, "/insurance", &passenger, ledger.Ether(1), ins), nil)

	var premium PremiumResponse
	c.ok(c.do(http.MethodGet, fmt.Sprintf("/insurance/%s/%s/%d/%s", airline.Hex(), flight, departure, passenger.Hex()), nil, nil, nil), &premium)
	require.Equal(t, ledger.Ether(1).String(), premium.Premium)

	var keys InsuranceKeysResponse
	c.ok(c.do(http.MethodGet, "/passengers/"+passenger.Hex()+"/insurances", nil, nil, nil), &keys)
	require.Equal(t, []string{fk.Key}, keys.Keys)

	var data InsuranceResponse
	c.ok(c.do(http.MethodGet, "/insurances/"+fk.Key, nil, nil, nil), &data)
	require.Equal(t, flight, data.Flight)
	require.Equal(t, airline.Hex(), data.Airline)

	var sr StatusRequestResponse
	c.ok(c.do(http.MethodPost, "/flights/status-requests", &passenger, nil, ins), &sr)
	require.Equal(t, coordinator.EventOracleRequest, sr.Receipt.Events[0].Name)

	c.decide(sr.Index, coordinator.StatusLateAirline)

	var req RequestResponse
	c.ok(c.do(http.MethodGet, fmt.Sprintf("/requests/%d/%s/%s/%d", sr.Index, airline.Hex(), flight, departure), nil, nil, nil), &req)
	require.False(t, req.Open)
	require.Equal(t, sr.Index, req.Index)
	require.Len(t, req.Reports, 1)
	require.Equal(t, coordinator.StatusLateAirline.String(), req.Reports[0].Status)
	require.Len(t, req.Reports[0].Oracles, coordinator.MinResponses)

	c.ok(c.do(http.MethodGet, flightPath, nil, nil, nil), &fl)
	require.Equal(t, coordinator.StatusLateAirline.String(), fl.Status)
	require.Equal(t, int(coordinator.StatusLateAirline), fl.StatusCode)
	require.NotNil(t, fl.UpdatedAt)

	want := new(big.Int).Div(ledger.Ether(3), big.NewInt(2))
	var credit CreditResponse
	c.ok(c.do(http.MethodGet, "/passengers/"+passenger.Hex()+"/credit", nil, nil, nil), &credit)
	require.Equal(t, want.String(), credit.Credit)

	var paid ReceiptResponse
	c.ok(c.do(http.MethodPost, "/passengers/pay", &passenger, nil, nil), &paid)
	require.Len(t, paid.Transfers, 1)
	require.Equal(t, passenger.Hex(), paid.Transfers[0].To)
	require.Equal(t, want.String(), paid.Transfers[0].Amount)
	require.Len(t, env.Settler.Transfers(), 1)

	c.ok(c.do(http.MethodGet, "/passengers/"+passenger.Hex()+"/credit", nil, nil, nil), &credit)
	require.Equal(t, "0", credit.Credit)
}

func TestServer_NotFound(t *testing.T) {
	c, _ := newClient(t, nil)

	rec := c.do(http.MethodGet, fmt.Sprintf("/flights/%s/%s/%d", airline.Hex(), flight, departure), nil, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/insurances/"+escrow.FlightKey(airline, flight, departure).Hex(), nil, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, fmt.Sprintf("/requests/1/%s/%s/%d", airline.Hex(), flight, departure), nil, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SettlementFailure(t *testing.T) {
	c, env := newClient(t, nil)
	c.ok(c.do(http.MethodPost, "/airlines/fund", &airline, escrow.FundingAmount, nil), nil)
	c.ok(c.do(http.MethodPost, "/flights", &airline, nil, FlightRequest{Flight: flight, Timestamp: stamp}), nil)
	ins := InsuranceRequest{Airline: airline.Hex(), Flight: flight, Timestamp: stamp}
	c.ok(c.do(http.MethodPost, "/insurance", &passenger, ledger.Ether(1), ins), nil)

	var sr StatusRequestResponse
	c.ok(c.do(http.MethodPost, "/flights/status-requests", &passenger, nil, ins), &sr)
	c.decide(sr.Index, coordinator.StatusLateAirline)

	env.Settler.Err = errors.New("gateway unreachable")
	rec := c.do(http.MethodPost, "/passengers/pay", &passenger, nil, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())

	// The withdrawal is committed even though the transfer was not settled.
	var credit CreditResponse
	c.ok(c.do(http.MethodGet, "/passengers/"+passenger.Hex()+"/credit", nil, nil, nil), &credit)
	require.Equal(t, "0", credit.Credit)
}

func TestServer_History(t *testing.T) {
	path := "/passengers/" + passenger.Hex() + "/history"

	t.Run("disabled", func(t *testing.T) {
		c, _ := newClient(t, nil)
		rec := c.do(http.MethodGet, path, nil, nil, nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("projected", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()

		hist := projection.NewHistoryMock(mc)
		hist.InsurancesMock.Expect(passenger.Hex()).Return([]models.Insurance{{
			FlightKey: "0x01", Airline: airline.Hex(), Flight: flight, Departure: int64(departure),
			Premium: "1000", Payout: "1500", State: models.InsuranceCredited,
		}}, nil)
		hist.WithdrawalsMock.Expect(passenger.Hex()).Return([]models.Withdrawal{
			{Passenger: passenger.Hex(), Amount: "1500", Height: 9, Timestamp: 100},
		}, nil)

		c, _ := newClient(t, hist)
		var res HistoryResponse
		c.ok(c.do(http.MethodGet, path, nil, nil, nil), &res)
		require.Len(t, res.Insurances, 1)
		require.Equal(t, models.InsuranceCredited, res.Insurances[0].State)
		require.NotNil(t, res.Insurances[0].Payout)
		require.Equal(t, "1500", *res.Insurances[0].Payout)
		require.Equal(t, []HistoryWithdrawal{{Amount: "1500", Height: 9, Timestamp: 100}}, res.Withdrawals)
	})

	t.Run("storage_error", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()

		hist := projection.NewHistoryMock(mc)
		hist.InsurancesMock.Return(nil, errors.New("connection refused"))

		c, _ := newClient(t, hist)
		rec := c.do(http.MethodGet, path, nil, nil, nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Zero(t, hist.WithdrawalsBeforeCounter())
	})
}
