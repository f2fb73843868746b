// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package dbconn

import (
	"github.com/go-pg/migrations"
	"github.com/go-pg/pg"
	"github.com/pkg/errors"
)

// Migrate applies every sql migration found in dir. With init set it first
// creates the gopg_migrations table, which an empty database lacks.
func Migrate(db *pg.DB, dir string, init bool) (oldVersion, newVersion int64, err error) {
	collection := migrations.NewCollection()
	if init {
		if _, _, err := collection.Run(db, "init"); err != nil {
			return 0, 0, errors.Wrap(err, "could not init migrations")
		}
	}
	if err := collection.DiscoverSQLMigrations(dir); err != nil {
		return 0, 0, errors.Wrap(err, "failed to read migrations")
	}
	oldVersion, newVersion, err = collection.Run(db, "up")
	return oldVersion, newVersion, errors.Wrap(err, "could not migrate")
}
