// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/insolar/flightsurety/component"
	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/observability"
)

var stop = make(chan os.Signal, 1)
var Version string

func main() {
	loaded, err := configuration.Load(configuration.Params{
		ConfigStruct: configuration.Default(),
		EnvPrefix:    configuration.EnvPrefix,
		Args:         os.Args[1:],
	})
	if err != nil {
		panic(err)
	}
	cfg := loaded.(*configuration.Configuration)

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	if len(Version) == 0 {
		Version = "dev"
	}
	logger.Infof("FlightSurety version=%s", Version)
	configuration.PrintWorkingDir(logger)
	configuration.PrintConfig(logger, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager, err := component.Prepare(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	if err := manager.Start(ctx); err != nil {
		logger.Fatal(err)
	}
	graceful(logger, manager.Stop)
}

func graceful(logger logrus.FieldLogger, that func()) {
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Infof("gracefully stopping...")
	that()
}
