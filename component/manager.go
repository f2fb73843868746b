// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package component

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/connectivity"
	"github.com/insolar/flightsurety/internal/app/api"
	"github.com/insolar/flightsurety/internal/app/projection"
	"github.com/insolar/flightsurety/internal/app/settlement"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/observability"
)

// Manager owns the node: ledger state, executor, bus, payouts, projection and servers.
type Manager struct {
	cfg *configuration.Configuration
	log *logrus.Logger

	sys        *system.System
	bus        *ledger.Bus
	dispatcher *settlement.Dispatcher
	projector  *projection.Projector
	api        *echo.Echo
	router     *Router
	stop       func()
}

func Prepare(ctx context.Context, cfg *configuration.Configuration) (*Manager, error) {
	obs := observability.Make(cfg.Log)
	log := obs.Log()

	state, err := makeState(cfg.State, log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ledger state")
	}
	bus := ledger.NewBus(log, cfg.Bus.OutputBuffer)
	chain := ledger.NewHashChain([]byte(cfg.Ledger.GenesisSeed))
	sys := system.New(ledger.NewExecutor(obs, state, chain, bus, bus))
	if err := deployIfFresh(ctx, cfg.Ledger, sys, log); err != nil {
		_ = state.Close()
		return nil, err
	}

	dispatcher := settlement.NewDispatcher(cfg.Settlement, obs, bus,
		settlement.NewLogSink(log.WithField("component", "settlement")))

	conn := connectivity.Make(cfg, obs)
	var (
		projector *projection.Projector
		history   projection.History
	)
	if conn.PG() != nil {
		storage := projection.NewPGStorage(obs, conn.PG())
		projector = projection.NewProjector(cfg.DB, obs, bus, storage)
		history = storage
	}

	e := api.New(obs, sys, history)
	router := NewRouter(cfg.Router, obs)

	m := &Manager{
		cfg:        cfg,
		log:        log,
		sys:        sys,
		bus:        bus,
		dispatcher: dispatcher,
		projector:  projector,
		api:        e,
		router:     router,
	}
	m.stop = makeStopper(log,
		closer{"router", func(ctx context.Context) error {
			router.Stop(ctx)
			return nil
		}},
		closer{"api", e.Shutdown},
		closer{"settlement", func(context.Context) error {
			dispatcher.Stop()
			return nil
		}},
		closer{"projector", func(context.Context) error {
			if projector != nil {
				projector.Stop()
			}
			return nil
		}},
		closer{"bus", func(context.Context) error { return bus.Close() }},
		closer{"database", func(context.Context) error { return conn.Close() }},
		closer{"ledger state", func(context.Context) error { return state.Close() }},
	)
	return m, nil
}

func (m *Manager) Start(ctx context.Context) error {
	if err := m.dispatcher.Start(ctx); err != nil {
		return err
	}
	if m.projector != nil {
		if err := m.projector.Start(ctx); err != nil {
			return err
		}
	}
	m.router.Start()
	go func() {
		err := m.api.Start(m.cfg.API.Listen)
		if err != nil && err != http.ErrServerClosed {
			m.log.Error(errors.Wrap(err, "api server stopped"))
		}
	}()
	m.log.WithFields(logrus.Fields{
		"api":    m.cfg.API.Listen,
		"router": m.cfg.Router.Listen,
	}).Info("node started")
	return nil
}

func (m *Manager) Stop() {
	m.stop()
	m.log.Info("node stopped")
}

// System exposes the entry points for in-process callers.
func (m *Manager) System() *system.System {
	return m.sys
}
