// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/dbconn"
	"github.com/insolar/flightsurety/observability"
)

func main() {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	migrationDir := fs.String("dir", "scripts/migrations", "directory with migrations")
	doInit := fs.Bool("init", false, "perform db init (for empty db)")

	loaded, err := configuration.Load(configuration.Params{
		ConfigStruct: configuration.Migrate{}.Default(),
		EnvPrefix:    "migrate",
		Args:         os.Args[1:],
		PFlags:       fs,
	})
	if err != nil {
		panic(err)
	}
	cfg := loaded.(*configuration.Migrate)

	log, err := observability.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	configuration.PrintConfig(log, cfg)

	db, err := dbconn.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer db.Close()

	oldVersion, newVersion, err := dbconn.Migrate(db, *migrationDir, *doInit)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("migrated successfully from %d to %d", oldVersion, newVersion)
}
