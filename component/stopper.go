// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package component

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type closer struct {
	name  string
	close func(ctx context.Context) error
}

// makeStopper closes closers in order. Servers go first so no call arrives
// after the bus and state are gone.
func makeStopper(log *logrus.Logger, closers ...closer) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, c := range closers {
			if err := c.close(ctx); err != nil {
				log.Error(errors.Wrapf(err, "failed to close %s", c.name))
			}
		}
	}
}
