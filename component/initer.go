// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package component

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/app/system"
	"github.com/insolar/flightsurety/internal/ledger"
)

func makeState(cfg configuration.State, log *logrus.Logger) (ledger.State, error) {
	if cfg.InMemory {
		log.Warn("ledger state is kept in memory and is lost on stop")
		return ledger.NewMemoryState(), nil
	}
	return ledger.OpenBadgerState(cfg.Dir, cfg.CacheSize, log)
}

// deployIfFresh deploys both modules on an empty state. A restored state is
// left as is.
func deployIfFresh(ctx context.Context, cfg configuration.Ledger, sys *system.System, log *logrus.Logger) error {
	deployed, err := sys.Deployed(ctx)
	if err != nil {
		return err
	}
	if deployed {
		st, err := sys.Status(ctx)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"airlines": st.RegisteredAirlines,
			"balance":  st.Balance.String(),
		}).Info("ledger state restored")
		return nil
	}

	admin, err := ledger.ParseAddress(cfg.Admin)
	if err != nil {
		return errors.Wrap(err, "invalid admin address")
	}
	first, err := ledger.ParseAddress(cfg.FirstAirline)
	if err != nil {
		return errors.Wrap(err, "invalid first airline address")
	}
	if _, err := sys.Deploy(ctx, admin, first); err != nil {
		return errors.Wrap(err, "failed to deploy")
	}
	log.WithFields(logrus.Fields{
		"admin":         admin.Hex(),
		"first_airline": first.Hex(),
	}).Info("modules deployed")
	return nil
}
