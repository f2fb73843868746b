// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package testutils

import (
	"fmt"
	"testing"

	"github.com/go-pg/pg"
	"github.com/ory/dockertest/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/insolar/flightsurety/configuration"
	"github.com/insolar/flightsurety/internal/dbconn"
)

const (
	postgresImage    = "postgres"
	postgresTag      = "11"
	postgresDB       = "flightsurety_test_db"
	postgresPassword = "secret"
)

// Postgres is a disposable database running in docker.
type Postgres struct {
	DB  *pg.DB
	Cfg configuration.DB

	log      logrus.FieldLogger
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// StartPostgres runs a postgres container and applies the migrations found in
// migrationsDir. Close must be called to remove the container.
func StartPostgres(log logrus.FieldLogger, migrationsDir string) (*Postgres, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to docker")
	}
	resource, err := pool.Run(postgresImage, postgresTag, []string{
		"POSTGRES_DB=" + postgresDB,
		"POSTGRES_PASSWORD=" + postgresPassword,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not start postgres container")
	}
	p := &Postgres{log: log, pool: pool, resource: resource}

	p.Cfg = configuration.Default().DB
	p.Cfg.URL = fmt.Sprintf(
		"postgres://postgres:%s@localhost:%s/%s?sslmode=disable&application_name=flightsurety",
		postgresPassword, resource.GetPort("5432/tcp"), postgresDB,
	)
	p.Cfg.PoolSize = 10

	err = pool.Retry(func() error {
		db, err := dbconn.Connect(p.Cfg)
		if err != nil {
			return err
		}
		if _, err := db.Exec("select 1"); err != nil {
			db.Close()
			return err
		}
		p.DB = db
		return nil
	})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "postgres did not become ready")
	}

	from, to, err := dbconn.Migrate(p.DB, migrationsDir, true)
	if err != nil {
		p.Close()
		return nil, err
	}
	log.Infof("test database migrated from %d to %d", from, to)
	return p, nil
}

func (p *Postgres) Close() {
	if p.DB != nil {
		if err := p.DB.Close(); err != nil {
			p.log.Error(errors.Wrap(err, "failed to close test database"))
		}
	}
	if err := p.pool.Purge(p.resource); err != nil {
		p.log.Error(errors.Wrap(err, "failed to remove postgres container"))
	}
}

// TruncateTables empties the tables of the given models between tests.
func TruncateTables(t *testing.T, db *pg.DB, models []interface{}) {
	for _, m := range models {
		_, err := db.Model(m).Exec("TRUNCATE TABLE ?TableName CASCADE")
		require.NoError(t, err)
	}
}
