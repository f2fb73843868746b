// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package configuration

import (
	"time"

	"github.com/insolar/flightsurety/internal/pkg/cycle"
)

type Configuration struct {
	Log        Log
	DB         DB
	State      State
	Ledger     Ledger
	Bus        Bus
	Settlement Settlement
	API        API
	Router     Router
}

type Log struct {
	Level        string
	Format       string
	OutputType   string
	OutputParams string
	Buffer       int
}

type DB struct {
	URL      string
	PoolSize int
	Attempts cycle.Limit
	// Interval between store in db failed attempts
	AttemptInterval time.Duration
}

type State struct {
	// Badger data directory, ignored when InMemory is set.
	Dir       string
	InMemory  bool
	CacheSize int
}

type Ledger struct {
	// Owner of both modules, deploys them on a fresh state.
	Admin string
	// Airline admitted at deployment.
	FirstAirline string
	// Seed of the block entropy chain.
	GenesisSeed string
}

type Bus struct {
	OutputBuffer int64
	// Project committed events into PostgreSQL.
	Projection bool
}

// Settlement drives the payout of committed transfers.
type Settlement struct {
	Attempts        cycle.Limit
	AttemptInterval time.Duration
}

type API struct {
	Listen string
}

// Router serves metrics and health checks.
type Router struct {
	Listen string
}

func Default() *Configuration {
	return &Configuration{
		Log: Log{
			Level:        "debug",
			Format:       "text",
			OutputType:   "stderr",
			OutputParams: "",
			Buffer:       0,
		},
		DB: DB{
			URL:             "postgres://postgres@localhost/postgres?sslmode=disable",
			PoolSize:        100,
			Attempts:        5,
			AttemptInterval: 3 * time.Second,
		},
		State: State{
			Dir:       ".artifacts/state",
			InMemory:  false,
			CacheSize: 10000,
		},
		Ledger: Ledger{
			Admin:        "0x627306090abab3a6e1400e9345bc60c78a8bef57",
			FirstAirline: "0xf17f52151ebef6c7334fad080c5704d77216b732",
			GenesisSeed:  "flightsurety",
		},
		Bus: Bus{
			OutputBuffer: 1000,
			Projection:   true,
		},
		Settlement: Settlement{
			Attempts:        10,
			AttemptInterval: time.Second,
		},
		API: API{
			Listen: ":8080",
		},
		Router: Router{
			Listen: ":8888",
		},
	}
}

func (c *Configuration) GetConfig() interface{} {
	return c
}
