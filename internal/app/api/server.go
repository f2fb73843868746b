// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/internal/app/projection"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/observability"
)

//go:generate oapi-codegen -generate types -package api -o types.gen.go ../../../api/flightsurety.yaml
//go:generate oapi-codegen -generate server -package api -o server.gen.go ../../../api/flightsurety.yaml

const (
	HeaderCaller = "Caller"
	HeaderValue  = "Value"
)

type FlightSuretyServer struct {
	sys     *system.System
	history projection.History
	log     *logrus.Logger
}

// NewFlightSuretyServer serves sys. history may be nil when projection is off.
func NewFlightSuretyServer(sys *system.System, history projection.History, log *logrus.Logger) *FlightSuretyServer {
	return &FlightSuretyServer{sys: sys, history: history, log: log}
}

// New builds the echo instance with logging, recovery and request metrics.
func New(obs *observability.Observability, sys *system.System, history projection.History) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(obs.Log()))
	e.Use(requestMetrics(obs))
	e.HTTPErrorHandler = httpErrorHandler(obs.Log())
	RegisterHandlers(e, NewFlightSuretyServer(sys, history, obs.Log()))
	return e
}

// httpErrorHandler renders echo errors, parameter binding included, as ErrorMessage.
func httpErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}
		if code >= http.StatusInternalServerError {
			log.Error(err)
		}
		if err := c.JSON(code, NewSingleMessageError(msg)); err != nil {
			log.Error(err)
		}
	}
}

func requestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			log.WithFields(logrus.Fields{
				"component": "api",
				"method":    c.Request().Method,
				"uri":       c.Request().RequestURI,
				"status":    c.Response().Status,
				"latency":   time.Since(start).String(),
			}).Debug("request served")
			return nil
		}
	}
}

func requestMetrics(obs *observability.Observability) echo.MiddlewareFunc {
	requests := obs.Counter(prometheus.CounterOpts{
		Name: "flightsurety_api_requests_total",
		Help: "Number of served API requests.",
	})
	failures := obs.Counter(prometheus.CounterOpts{
		Name: "flightsurety_api_failures_total",
		Help: "Number of API requests answered with a server error.",
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			requests.Inc()
			if c.Response().Status >= http.StatusInternalServerError {
				failures.Inc()
			}
			return err
		}
	}
}
