// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cassandra

import (
	"fmt"
	"strings"

	// Pull in C* driver for migrate
	_ "github.com/gemnasium/migrate/driver/cassandra"
	"github.com/gemnasium/migrate/migrate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Migrator applies the CQL migrations of Config.Migrations to the keyspace
type Migrator struct {
	Config *Config
}

// NewMigrator creates a new Migrator
func NewMigrator(conf *Config) (*Migrator, error) {
	if conf == nil || conf.CassandraConn == nil ||
		len(conf.CassandraConn.ContactPoints) == 0 {
		return nil, errors.New("cassandra contact points are not configured")
	}
	return &Migrator{Config: conf}, nil
}

// UpSync applies all pending up migrations. The keyspace must exist.
func (m *Migrator) UpSync() []error {
	connString := m.connString()
	errs, ok := migrate.UpSync(connString, m.Config.Migrations)
	if !ok {
		log.WithField("errors", errs).Error("UpSync failed")
		return errs
	}
	log.Info("UpSync complete")
	return nil
}

// DownSync reverts all the applied migrations
func (m *Migrator) DownSync() []error {
	connString := m.connString()
	errs, ok := migrate.DownSync(connString, m.Config.Migrations)
	if !ok {
		log.WithField("errors", errs).Error("DownSync failed")
		return errs
	}
	log.Info("DownSync complete")
	return nil
}

// Version returns the version of the last migration applied
func (m *Migrator) Version() (uint64, error) {
	connString := m.connString()
	v, err := migrate.Version(connString, m.Config.Migrations)
	if err != nil {
		return 0, errors.Wrap(err, "could not read migration version")
	}
	return uint64(v), nil
}

// connString returns the db string required for database migration
func (m *Migrator) connString() string {
	// see https://github.com/gemnasium/migrate/pull/17 on why
	// disable_init_host_lookup is needed
	connStr := fmt.Sprintf(
		"cassandra://%v:%v/%v?protocol=4&disable_init_host_lookup",
		m.Config.CassandraConn.ContactPoints[0],
		port(m.Config.CassandraConn),
		m.Config.StoreName)
	connStr = strings.Replace(connStr, " ", "", -1)
	log.WithField("conn_string", connStr).Debug("Cassandra migration string")
	return connStr
}

func port(c *CassandraConn) int {
	if c.Port == 0 {
		return defaultPort
	}
	return c.Port
}
