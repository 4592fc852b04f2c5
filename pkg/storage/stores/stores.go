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

package stores

import (
	"github.com/datastax-examples/object-mapper-go/pkg/storage/connectors/cassandra"
	storage_config "github.com/datastax-examples/object-mapper-go/pkg/storage/config"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// CreateStore prepares the keyspace and the users table, then returns a
// store bound to the keyspace.
func CreateStore(
	cfg *storage_config.Config,
	rootScope tally.Scope,
) (*objects.Store, error) {
	log.WithFields(log.Fields{
		"cassandra_connection": cfg.Cassandra.CassandraConn,
		"key_space":            cfg.Cassandra.StoreName,
		"auto_migrate":         cfg.AutoMigrate,
	}).Info("Cassandra Config")

	session, err := createSchema(cfg)
	if err != nil {
		return nil, err
	}

	connector := cassandra.NewCassandraConnectorWithSession(
		&cfg.Cassandra, session, rootScope)
	store, err := objects.NewStore(connector, rootScope)
	if err != nil {
		connector.Close()
		return nil, err
	}
	return store, nil
}

func createSchema(cfg *storage_config.Config) (*gocql.Session, error) {
	if !cfg.AutoMigrate {
		return cassandra.Bootstrap(&cfg.Cassandra, cassandra.CreateUsersTable)
	}

	// migrations run against an existing keyspace
	session, err := cassandra.Bootstrap(&cfg.Cassandra)
	if err != nil {
		return nil, err
	}
	migrator, err := cassandra.NewMigrator(&cfg.Cassandra)
	if err != nil {
		session.Close()
		return nil, err
	}
	if errs := migrator.UpSync(); errs != nil {
		session.Close()
		return nil, errors.Errorf("could not migrate database: %v", errs)
	}
	return session, nil
}
