// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package observability

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/configuration"
)

func TestNewLogger(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		log, err := NewLogger(configuration.Default().Log)
		require.NoError(t, err)
		require.Equal(t, logrus.DebugLevel, log.Level)
	})

	t.Run("json_to_file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "flightsurety-log")
		require.NoError(t, err)
		path := filepath.Join(dir, "node.log")

		log, err := NewLogger(configuration.Log{
			Level:        "info",
			Format:       "json",
			OutputType:   "file",
			OutputParams: path,
		})
		require.NoError(t, err)
		log.WithField("airline", "0x01").Info("registered")

		out, err := ioutil.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(out), `"airline":"0x01"`)
	})

	t.Run("bad_level", func(t *testing.T) {
		_, err := NewLogger(configuration.Log{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("bad_format", func(t *testing.T) {
		_, err := NewLogger(configuration.Log{Level: "info", Format: "xml"})
		require.Error(t, err)
	})

	t.Run("bad_output", func(t *testing.T) {
		_, err := NewLogger(configuration.Log{Level: "info", OutputType: "syslog"})
		require.Error(t, err)
	})
}

func TestObservability_Metrics(t *testing.T) {
	obs := Make(configuration.Default().Log)

	c := obs.Counter(prometheus.CounterOpts{Name: "test_counter", Help: "test"})
	c.Inc()
	require.Equal(t, c, obs.Counter(prometheus.CounterOpts{Name: "test_counter", Help: "test"}))
	require.Equal(t, float64(1), testutil.ToFloat64(c))

	g := obs.Gauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "test"})
	g.Set(42)
	require.Equal(t, float64(42), testutil.ToFloat64(obs.Gauge(prometheus.GaugeOpts{Name: "test_gauge"})))

	families, err := obs.Metrics().Gather()
	require.NoError(t, err)
	require.Len(t, families, 2)
}

func TestWatermillLogger(t *testing.T) {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	adapter := WatermillLogger(log).With(watermill.LogFields{"topic": "events"})
	adapter.Info("subscribed", nil)
	adapter.Trace("message", watermill.LogFields{"uuid": "1"})
	adapter.Error("failed", nil, nil)
}
