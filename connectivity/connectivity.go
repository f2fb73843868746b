// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package connectivity

import (
	"github.com/go-pg/pg"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/dbconn"
	"github.com/insolar/flightsurety/observability"
)

func Make(cfg *configuration.Configuration, obs *observability.Observability) *Connectivity {
	log := obs.Log()
	if !cfg.Bus.Projection {
		log.Info("projection disabled, no database connection")
		return &Connectivity{}
	}
	db, err := dbconn.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err.Error())
	}
	return &Connectivity{pg: db}
}

type Connectivity struct {
	pg *pg.DB
}

// PG is nil when projection is disabled.
func (c *Connectivity) PG() *pg.DB {
	return c.pg
}

func (c *Connectivity) Close() error {
	if c.pg == nil {
		return nil
	}
	return c.pg.Close()
}
