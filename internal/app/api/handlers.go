// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package api

import (
	"fmt"
	"math"
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/ledger"
)

type badRequest struct {
	msg string
}

func (e badRequest) Error() string {
	return e.msg
}

func invalid(format string, args ...interface{}) error {
	return badRequest{msg: fmt.Sprintf(format, args...)}
}

// fail renders err. Rejections are the caller's fault, anything else is ours.
func (s *FlightSuretyServer) fail(ctx echo.Context, err error) error {
	if br, ok := errors.Cause(err).(badRequest); ok {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError(br.msg))
	}
	if r, ok := ledger.AsRejection(err); ok {
		code := http.StatusBadRequest
		switch r.Code {
		case ledger.ErrNotOwner.Code, escrow.ErrUnauthorizedCaller.Code:
			code = http.StatusForbidden
		}
		return ctx.JSON(code, ErrorMessage{Error: []string{r.Message}, Code: r.Code})
	}
	s.log.Error(err)
	return ctx.JSON(http.StatusInternalServerError, NewSingleMessageError(err.Error()))
}

var _ ServerInterface = (*FlightSuretyServer)(nil)

func caller(raw Caller) (ledger.Address, error) {
	addr, err := ledger.ParseAddress(string(raw))
	if err != nil {
		return ledger.Address{}, invalid("invalid `%s` header: %s", HeaderCaller, err)
	}
	return addr, nil
}

func value(raw *Value) (*big.Int, error) {
	if raw == nil {
		return new(big.Int), nil
	}
	v, err := ledger.ParseAmount(string(*raw))
	if err != nil {
		return nil, invalid("invalid `%s` header: %s", HeaderValue, err)
	}
	return v, nil
}

func address(raw, name string) (ledger.Address, error) {
	addr, err := ledger.ParseAddress(raw)
	if err != nil {
		return ledger.Address{}, invalid("invalid `%s`: %s", name, err)
	}
	return addr, nil
}

func timestamp(ts int64) (uint64, error) {
	if ts < 0 {
		return 0, invalid("invalid `timestamp`: %d", ts)
	}
	return uint64(ts), nil
}

func index(idx int) (uint8, error) {
	if idx < 0 || idx > math.MaxUint8 {
		return 0, invalid("invalid `index`: %d", idx)
	}
	return uint8(idx), nil
}

func bind(ctx echo.Context, body interface{}) error {
	if err := ctx.Bind(body); err != nil {
		return invalid("invalid request body: %s", err)
	}
	return nil
}

func indexes(idx [3]uint8) []int {
	res := make([]int, 0, len(idx))
	for _, i := range idx {
		res = append(res, int(i))
	}
	return res
}

func (s *FlightSuretyServer) SetOperatingStatus(ctx echo.Context, params SetOperatingStatusParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body SetOperatingStatusJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	receipt, err := s.sys.SetOperatingStatus(ctx.Request().Context(), from, body.Module, body.Operational)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

func (s *FlightSuretyServer) AuthorizeCaller(ctx echo.Context, addr AddressPath, params AuthorizeCallerParams) error {
	return s.authorization(ctx, addr, params.Caller, true)
}

func (s *FlightSuretyServer) DeauthorizeCaller(ctx echo.Context, addr AddressPath, params DeauthorizeCallerParams) error {
	return s.authorization(ctx, addr, params.Caller, false)
}

func (s *FlightSuretyServer) authorization(ctx echo.Context, addr AddressPath, by Caller, grant bool) error {
	from, err := caller(by)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := address(string(addr), "address")
	if err != nil {
		return s.fail(ctx, err)
	}
	var receipt *ledger.Receipt
	if grant {
		receipt, err = s.sys.AuthorizeCaller(ctx.Request().Context(), from, target)
	} else {
		receipt, err = s.sys.DeauthorizeCaller(ctx.Request().Context(), from, target)
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

func (s *FlightSuretyServer) RegisterAirline(ctx echo.Context, params RegisterAirlineParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body RegisterAirlineJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	candidate, err := address(body.Airline, "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	reg, receipt, err := s.sys.RegisterAirline(ctx.Request().Context(), from, candidate)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RegistrationResponse{
		Receipt:  receiptResponse(receipt),
		Promoted: reg.Promoted,
		Votes:    int(reg.Votes),
	})
}

func (s *FlightSuretyServer) Fund(ctx echo.Context, params FundParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	amount, err := value(params.Value)
	if err != nil {
		return s.fail(ctx, err)
	}
	receipt, err := s.sys.Fund(ctx.Request().Context(), from, amount)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

func (s *FlightSuretyServer) GetAirline(ctx echo.Context, addr AddressPath) error {
	a, err := address(string(addr), "address")
	if err != nil {
		return s.fail(ctx, err)
	}
	airline, err := s.sys.GetAirline(ctx.Request().Context(), a)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, airlineResponse(airline))
}

func (s *FlightSuretyServer) RegisterFlight(ctx echo.Context, params RegisterFlightParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body RegisterFlightJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	ts, err := timestamp(body.Timestamp)
	if err != nil {
		return s.fail(ctx, err)
	}
	key, receipt, err := s.sys.RegisterFlight(ctx.Request().Context(), from, body.Flight, ts)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, FlightKeyResponse{
		Receipt: receiptResponse(receipt),
		Key:     key.Hex(),
	})
}

func (s *FlightSuretyServer) GetFlight(ctx echo.Context, airline AirlinePath, flight FlightPath, ts TimestampPath) error {
	a, err := address(string(airline), "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	departure, err := timestamp(int64(ts))
	if err != nil {
		return s.fail(ctx, err)
	}
	f, found, err := s.sys.GetFlight(ctx.Request().Context(), a, string(flight), departure)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("flight not found"))
	}
	return ctx.JSON(http.StatusOK, flightResponse(f))
}

func (s *FlightSuretyServer) FetchFlightStatus(ctx echo.Context, params FetchFlightStatusParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body FetchFlightStatusJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	airline, err := address(body.Airline, "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	ts, err := timestamp(body.Timestamp)
	if err != nil {
		return s.fail(ctx, err)
	}
	idx, receipt, err := s.sys.FetchFlightStatus(ctx.Request().Context(), from, airline, body.Flight, ts)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusRequestResponse{
		Receipt: receiptResponse(receipt),
		Index:   int(idx),
	})
}

func (s *FlightSuretyServer) Buy(ctx echo.Context, params BuyParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	premium, err := value(params.Value)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body BuyJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	airline, err := address(body.Airline, "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	ts, err := timestamp(body.Timestamp)
	if err != nil {
		return s.fail(ctx, err)
	}
	receipt, err := s.sys.Buy(ctx.Request().Context(), from, premium, airline, body.Flight, ts)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

func (s *FlightSuretyServer) GetInsurance(ctx echo.Context, airline AirlinePath, flight FlightPath, ts TimestampPath, passenger string) error {
	a, err := address(string(airline), "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := address(passenger, "passenger")
	if err != nil {
		return s.fail(ctx, err)
	}
	departure, err := timestamp(int64(ts))
	if err != nil {
		return s.fail(ctx, err)
	}
	premium, err := s.sys.GetInsurance(ctx.Request().Context(), a, string(flight), departure, p)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PremiumResponse{Premium: premium.String()})
}

func (s *FlightSuretyServer) GetInsuranceData(ctx echo.Context, key string) error {
	var k ledger.Hash
	if err := k.UnmarshalText([]byte(key)); err != nil {
		return s.fail(ctx, invalid("invalid `key`: %s", err))
	}
	data, found, err := s.sys.GetInsuranceData(ctx.Request().Context(), k)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("insurance not found"))
	}
	return ctx.JSON(http.StatusOK, insuranceResponse(data))
}

func (s *FlightSuretyServer) GetCredit(ctx echo.Context, addr AddressPath) error {
	passenger, err := address(string(addr), "address")
	if err != nil {
		return s.fail(ctx, err)
	}
	credit, err := s.sys.GetCredit(ctx.Request().Context(), passenger)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CreditResponse{Credit: credit.String()})
}

func (s *FlightSuretyServer) GetActiveInsuranceKeys(ctx echo.Context, addr AddressPath) error {
	passenger, err := address(string(addr), "address")
	if err != nil {
		return s.fail(ctx, err)
	}
	keys, err := s.sys.GetActiveInsuranceKeys(ctx.Request().Context(), passenger)
	if err != nil {
		return s.fail(ctx, err)
	}
	res := InsuranceKeysResponse{Keys: make([]string, 0, len(keys))}
	for _, k := range keys {
		res.Keys = append(res.Keys, k.Hex())
	}
	return ctx.JSON(http.StatusOK, res)
}

// GetHistory reads the projection, so it lags the ledger by the bus.
func (s *FlightSuretyServer) GetHistory(ctx echo.Context, addr AddressPath) error {
	if s.history == nil {
		return ctx.JSON(http.StatusServiceUnavailable, NewSingleMessageError("projection is disabled"))
	}
	passenger, err := address(string(addr), "address")
	if err != nil {
		return s.fail(ctx, err)
	}
	insurances, err := s.history.Insurances(passenger.Hex())
	if err != nil {
		return s.fail(ctx, err)
	}
	withdrawals, err := s.history.Withdrawals(passenger.Hex())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, historyResponse(insurances, withdrawals))
}

func (s *FlightSuretyServer) Pay(ctx echo.Context, params PayParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	receipt, err := s.sys.Pay(ctx.Request().Context(), from)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

func (s *FlightSuretyServer) RegisterOracle(ctx echo.Context, params RegisterOracleParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	fee, err := value(params.Value)
	if err != nil {
		return s.fail(ctx, err)
	}
	idx, receipt, err := s.sys.RegisterOracle(ctx.Request().Context(), from, fee)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OracleRegistrationResponse{
		Receipt: receiptResponse(receipt),
		Indexes: indexes(idx),
	})
}

func (s *FlightSuretyServer) GetMyIndexes(ctx echo.Context, params GetMyIndexesParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	idx, err := s.sys.GetMyIndexes(ctx.Request().Context(), from)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, IndexesResponse{Indexes: indexes(idx)})
}

func (s *FlightSuretyServer) SubmitOracleResponse(ctx echo.Context, params SubmitOracleResponseParams) error {
	from, err := caller(params.Caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body SubmitOracleResponseJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	airline, err := address(body.Airline, "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	idx, err := index(body.Index)
	if err != nil {
		return s.fail(ctx, err)
	}
	ts, err := timestamp(body.Timestamp)
	if err != nil {
		return s.fail(ctx, err)
	}
	if body.Status < 0 || body.Status > math.MaxUint8 {
		return s.fail(ctx, invalid("invalid `status`: %d", body.Status))
	}
	decided, receipt, err := s.sys.SubmitOracleResponse(
		ctx.Request().Context(),
		from,
		idx,
		airline,
		body.Flight,
		ts,
		coordinator.FlightStatus(body.Status),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OracleDecisionResponse{
		Receipt: receiptResponse(receipt),
		Decided: decided,
	})
}

func (s *FlightSuretyServer) GetRequest(ctx echo.Context, i int, airline AirlinePath, flight FlightPath, ts TimestampPath) error {
	idx, err := index(i)
	if err != nil {
		return s.fail(ctx, err)
	}
	a, err := address(string(airline), "airline")
	if err != nil {
		return s.fail(ctx, err)
	}
	departure, err := timestamp(int64(ts))
	if err != nil {
		return s.fail(ctx, err)
	}
	req, found, err := s.sys.GetRequest(ctx.Request().Context(), idx, a, string(flight), departure)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("request not found"))
	}
	return ctx.JSON(http.StatusOK, requestResponse(req))
}

func (s *FlightSuretyServer) Status(ctx echo.Context) error {
	st, err := s.sys.Status(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, statusResponse(st))
}
