// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package projection

import (
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/internal/app/coordinator"
	"github.com/insolar/flightsurety/internal/models"
	"github.com/insolar/flightsurety/observability"
)

//go:generate minimock -i Storage -o ./ -s _mock.go -g

// Storage keeps the queryable copy of the ledger.
type Storage interface {
	SaveAirline(airline *models.Airline) error
	FundAirline(address, amount string, height int64) error
	SaveFlight(flight *models.Flight) error
	SetFlightStatus(flight *models.Flight) error
	InsertInsurance(insurance *models.Insurance) error
	CreditInsurance(flightKey, passenger, payout string, height int64) error
	TerminateInsurances(flightKey string, height int64) error
	SaveOracle(oracle *models.Oracle) error
	OpenRequest(request *models.OracleRequest) error
	InsertReport(report *models.OracleReport) error
	CloseRequest(requestKey string, status, height int64) error
	InsertWithdrawal(withdrawal *models.Withdrawal) error
}

//go:generate minimock -i History -o ./ -s _mock.go -g

// History answers passenger queries from the projection.
type History interface {
	Insurances(passenger string) ([]models.Insurance, error)
	Withdrawals(passenger string) ([]models.Withdrawal, error)
}

type PGStorage struct {
	log          *logrus.Logger
	errorCounter prometheus.Counter
	db           orm.DB
}

func NewPGStorage(obs *observability.Observability, db orm.DB) *PGStorage {
	errorCounter := obs.Counter(prometheus.CounterOpts{
		Name: "flightsurety_projection_storage_error_counter",
		Help: "Number of projection writes that changed no rows.",
	})
	return &PGStorage{
		log:          obs.Log(),
		errorCounter: errorCounter,
		db:           db,
	}
}

// SaveAirline inserts the airline or moves it to the given status. Sponsor and
// registration height are kept once known.
func (s *PGStorage) SaveAirline(airline *models.Airline) error {
	if airline == nil {
		s.log.Warnf("trying to save nil airline model")
		return nil
	}
	_, err := s.db.Model(airline).
		OnConflict("(address) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("votes = EXCLUDED.votes").
		Set("sponsor = COALESCE(EXCLUDED.sponsor, ?TableAlias.sponsor)").
		Set("registered_height = COALESCE(EXCLUDED.registered_height, ?TableAlias.registered_height)").
		Set("updated_height = EXCLUDED.updated_height").
		Insert()
	return errors.Wrapf(err, "failed to save airline %s", airline.Address)
}

func (s *PGStorage) FundAirline(address, amount string, height int64) error {
	res, err := s.db.Model(&models.Airline{}).
		Set("status = ?, funded_amount = ?, updated_height = ?", coordinator.Funded.String(), amount, height).
		Where("address = ?", address).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to fund airline %s", address)
	}
	if res.RowsAffected() == 0 {
		s.errorCounter.Inc()
		s.log.WithField("airline", address).Errorf("failed to fund unknown airline")
	}
	return nil
}

func (s *PGStorage) SaveFlight(flight *models.Flight) error {
	if flight == nil {
		s.log.Warnf("trying to save nil flight model")
		return nil
	}
	_, err := s.db.Model(flight).
		OnConflict("(flight_key) DO UPDATE").
		Set("registered = TRUE").
		Set("updated_height = EXCLUDED.updated_height").
		Insert()
	return errors.Wrapf(err, "failed to save flight %s", flight.FlightKey)
}

// SetFlightStatus records a decided status, creating the flight unregistered if absent.
func (s *PGStorage) SetFlightStatus(flight *models.Flight) error {
	if flight == nil {
		s.log.Warnf("trying to set status of nil flight model")
		return nil
	}
	_, err := s.db.Model(flight).
		OnConflict("(flight_key) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("status_updated_at = EXCLUDED.status_updated_at").
		Set("updated_height = EXCLUDED.updated_height").
		Insert()
	return errors.Wrapf(err, "failed to set status of flight %s", flight.FlightKey)
}

func (s *PGStorage) InsertInsurance(insurance *models.Insurance) error {
	if insurance == nil {
		s.log.Warnf("trying to insert nil insurance model")
		return nil
	}
	res, err := s.db.Model(insurance).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return errors.Wrapf(err, "failed to insert insurance %v", insurance)
	}
	if res.RowsAffected() == 0 {
		s.errorCounter.Inc()
		s.log.WithField("insurance_row", insurance).Errorf("failed to insert insurance")
		return errors.New("failed to insert, affected is 0")
	}
	return nil
}

func (s *PGStorage) CreditInsurance(flightKey, passenger, payout string, height int64) error {
	res, err := s.db.Model(&models.Insurance{}).
		Set("state = ?, payout = ?, settled_height = ?", models.InsuranceCredited, payout, height).
		Where("flight_key = ? AND passenger = ?", flightKey, passenger).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to credit insurance %s/%s", flightKey, passenger)
	}
	if res.RowsAffected() == 0 {
		s.errorCounter.Inc()
		s.log.WithFields(logrus.Fields{
			"flight_key": flightKey,
			"passenger":  passenger,
		}).Errorf("failed to credit unknown insurance")
	}
	return nil
}

// TerminateInsurances closes every still active insurance of the flight.
func (s *PGStorage) TerminateInsurances(flightKey string, height int64) error {
	_, err := s.db.Model(&models.Insurance{}).
		Set("state = ?, settled_height = ?", models.InsuranceTerminated, height).
		Where("flight_key = ? AND state = ?", flightKey, models.InsuranceActive).
		Update()
	return errors.Wrapf(err, "failed to terminate insurances of %s", flightKey)
}

func (s *PGStorage) SaveOracle(oracle *models.Oracle) error {
	if oracle == nil {
		s.log.Warnf("trying to save nil oracle model")
		return nil
	}
	_, err := s.db.Model(oracle).
		OnConflict("(address) DO UPDATE").
		Set("indexes = EXCLUDED.indexes").
		Set("registered_height = EXCLUDED.registered_height").
		Insert()
	return errors.Wrapf(err, "failed to save oracle %s", oracle.Address)
}

// OpenRequest opens the request. A closed request is reopened from scratch, an
// open one keeps its reports.
func (s *PGStorage) OpenRequest(request *models.OracleRequest) error {
	if request == nil {
		s.log.Warnf("trying to open nil request model")
		return nil
	}
	_, err := s.db.Exec(
		"DELETE FROM oracle_reports WHERE request_key = ? AND EXISTS "+
			"(SELECT 1 FROM oracle_requests WHERE request_key = ? AND NOT open)",
		request.RequestKey, request.RequestKey,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to reset reports of request %s", request.RequestKey)
	}
	_, err = s.db.Model(request).
		OnConflict("(request_key) DO UPDATE").
		Set("requester = EXCLUDED.requester").
		Set("opened_height = CASE WHEN ?TableAlias.open THEN ?TableAlias.opened_height ELSE EXCLUDED.opened_height END").
		Set("open = TRUE").
		Set("status = NULL").
		Set("closed_height = NULL").
		Insert()
	return errors.Wrapf(err, "failed to open request %s", request.RequestKey)
}

func (s *PGStorage) InsertReport(report *models.OracleReport) error {
	if report == nil {
		s.log.Warnf("trying to insert nil report model")
		return nil
	}
	_, err := s.db.Model(report).
		OnConflict("DO NOTHING").
		Insert()
	return errors.Wrapf(err, "failed to insert report %v", report)
}

func (s *PGStorage) CloseRequest(requestKey string, status, height int64) error {
	res, err := s.db.Model(&models.OracleRequest{}).
		Set("open = FALSE, status = ?, closed_height = ?", status, height).
		Where("request_key = ?", requestKey).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to close request %s", requestKey)
	}
	if res.RowsAffected() == 0 {
		s.errorCounter.Inc()
		s.log.WithField("request_key", requestKey).Errorf("failed to close unknown request")
	}
	return nil
}

func (s *PGStorage) InsertWithdrawal(withdrawal *models.Withdrawal) error {
	if withdrawal == nil {
		s.log.Warnf("trying to insert nil withdrawal model")
		return nil
	}
	_, err := s.db.Model(withdrawal).Insert()
	return errors.Wrapf(err, "failed to insert withdrawal %v", withdrawal)
}

func (s *PGStorage) Insurances(passenger string) ([]models.Insurance, error) {
	var rows []models.Insurance
	err := s.db.Model(&rows).
		Where("passenger = ?", passenger).
		Order("purchased_height").
		Select()
	return rows, errors.Wrapf(err, "failed to select insurances of %s", passenger)
}

func (s *PGStorage) Withdrawals(passenger string) ([]models.Withdrawal, error) {
	var rows []models.Withdrawal
	err := s.db.Model(&rows).
		Where("passenger = ?", passenger).
		Order("id").
		Select()
	return rows, errors.Wrapf(err, "failed to select withdrawals of %s", passenger)
}
