// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package api

import (
	"sort"

	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/app/escrow"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/internal/models"
)

func receiptResponse(r *ledger.Receipt) ReceiptResponse {
	if r == nil {
		return ReceiptResponse{Events: []EventResponse{}, Transfers: []TransferResponse{}}
	}
	res := ReceiptResponse{
		Height:    int64(r.Block.Height),
		Events:    make([]EventResponse, 0, len(r.Events)),
		Transfers: make([]TransferResponse, 0, len(r.Transfers)),
	}
	for _, ev := range r.Events {
		res.Events = append(res.Events, EventResponse{Name: ev.Name, Emitter: ev.Emitter.Hex()})
	}
	for _, t := range r.Transfers {
		res.Transfers = append(res.Transfers, TransferResponse{
			From:   t.From.Hex(),
			To:     t.To.Hex(),
			Amount: t.Amount.String(),
		})
	}
	return res
}

func airlineResponse(a coordinator.Airline) AirlineResponse {
	return AirlineResponse{
		Address: a.Address.Hex(),
		Status:  a.Status.String(),
		Votes:   int(a.Votes),
		Funded:  a.Status == coordinator.Funded,
	}
}

func flightResponse(f coordinator.Flight) FlightResponse {
	res := FlightResponse{
		Key:        f.Key.Hex(),
		Airline:    f.Airline.Hex(),
		Flight:     f.Flight,
		Timestamp:  int64(f.Timestamp),
		Registered: f.Registered,
		StatusCode: int(f.Status),
		Status:     f.Status.String(),
	}
	if !f.UpdatedAt.IsZero() {
		updated := f.UpdatedAt.Unix()
		res.UpdatedAt = &updated
	}
	return res
}

func insuranceResponse(i escrow.Insurance) InsuranceResponse {
	return InsuranceResponse{
		Key:       i.Key.Hex(),
		Airline:   i.Airline.Hex(),
		Flight:    i.Flight,
		Timestamp: int64(i.Timestamp),
	}
}

// requestResponse lists reports in status code order.
func requestResponse(r coordinator.Request) RequestResponse {
	res := RequestResponse{
		Key:       r.Key.Hex(),
		Index:     int(r.Index),
		Requester: r.Requester.Hex(),
		Open:      r.Open,
		Airline:   r.Airline.Hex(),
		Flight:    r.Flight,
		Timestamp: int64(r.Timestamp),
		Reports:   make([]StatusReports, 0, len(r.Reports)),
	}
	statuses := make([]coordinator.FlightStatus, 0, len(r.Reports))
	for status := range r.Reports {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	for _, status := range statuses {
		hexes := make([]string, 0, len(r.Reports[status]))
		for _, o := range r.Reports[status] {
			hexes = append(hexes, o.Hex())
		}
		res.Reports = append(res.Reports, StatusReports{Status: status.String(), Oracles: hexes})
	}
	return res
}

func statusResponse(s system.Status) StatusResponse {
	return StatusResponse{
		CoordinatorOperational: s.CoordinatorOperational,
		EscrowOperational:      s.EscrowOperational,
		RegisteredAirlines:     int64(s.RegisteredAirlines),
		Balance:                s.Balance.String(),
		Height:                 int64(s.Height),
	}
}

func historyResponse(insurances []models.Insurance, withdrawals []models.Withdrawal) HistoryResponse {
	res := HistoryResponse{
		Insurances:  make([]HistoryInsurance, 0, len(insurances)),
		Withdrawals: make([]HistoryWithdrawal, 0, len(withdrawals)),
	}
	for _, i := range insurances {
		ins := HistoryInsurance{
			FlightKey: i.FlightKey,
			Airline:   i.Airline,
			Flight:    i.Flight,
			Departure: i.Departure,
			Premium:   i.Premium,
			State:     i.State,
		}
		if i.Payout != "" {
			payout := i.Payout
			ins.Payout = &payout
		}
		res.Insurances = append(res.Insurances, ins)
	}
	for _, w := range withdrawals {
		res.Withdrawals = append(res.Withdrawals, HistoryWithdrawal{
			Amount:    w.Amount,
			Height:    w.Height,
			Timestamp: w.Timestamp,
		})
	}
	return res
}
