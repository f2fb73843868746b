// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package component

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/internal/ledger"
	"github.com/insolar/flightsurety/observability"
)

func testConfig() *configuration.Configuration {
	cfg := configuration.Default()
	cfg.Log.Level = "error"
	cfg.State.InMemory = true
	cfg.Bus.Projection = false
	cfg.API.Listen = "127.0.0.1:0"
	cfg.Router.Listen = "127.0.0.1:0"
	return cfg
}

func TestRouter(t *testing.T) {
	cfg := testConfig()
	obs := observability.Make(cfg.Log)
	obs.Counter(prometheus.CounterOpts{Name: "flightsurety_router_test_total"}).Inc()
	r := NewRouter(cfg.Router, obs)

	t.Run("healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.hs.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.hs.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "flightsurety_router_test_total 1")
	})
}

func TestMakeState(t *testing.T) {
	cfg := testConfig()
	log := observability.Make(cfg.Log).Log()

	t.Run("memory", func(t *testing.T) {
		st, err := makeState(cfg.State, log)
		require.NoError(t, err)
		require.IsType(t, &ledger.MemoryState{}, st)
		require.NoError(t, st.Close())
	})

	t.Run("badger", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "flightsurety-state")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		stateCfg := cfg.State
		stateCfg.InMemory = false
		stateCfg.Dir = dir
		st, err := makeState(stateCfg, log)
		require.NoError(t, err)
		require.IsType(t, &ledger.BadgerState{}, st)
		require.NoError(t, st.Close())
	})
}

func TestDeployIfFresh(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	obs := observability.Make(cfg.Log)
	exec := ledger.NewExecutor(obs, ledger.NewMemoryState(), ledger.NewHashChain([]byte(t.Name())), nil, nil)
	sys := system.New(exec)

	require.NoError(t, deployIfFresh(ctx, cfg.Ledger, sys, obs.Log()))
	st, err := sys.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), st.RegisteredAirlines)

	require.NoError(t, deployIfFresh(ctx, cfg.Ledger, sys, obs.Log()))
	st, err = sys.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), st.Height)

	t.Run("bad_admin", func(t *testing.T) {
		ledgerCfg := cfg.Ledger
		ledgerCfg.Admin = "admin"
		fresh := system.New(ledger.NewExecutor(obs, ledger.NewMemoryState(), ledger.NewHashChain(nil), nil, nil))
		require.Error(t, deployIfFresh(ctx, ledgerCfg, fresh, obs.Log()))
	})
}

func TestManager(t *testing.T) {
	ctx := context.Background()
	m, err := Prepare(ctx, testConfig())
	require.NoError(t, err)
	require.Nil(t, m.projector)

	require.NoError(t, m.Start(ctx))
	defer m.Stop()

	st, err := m.System().Status(ctx)
	require.NoError(t, err)
	require.True(t, st.CoordinatorOperational)
	require.True(t, st.EscrowOperational)
	require.Equal(t, 1, m.bus.Subscribers(ledger.SettlementsTopic))
}
