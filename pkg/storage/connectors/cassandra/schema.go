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

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	createKeyspaceTemplate = "CREATE KEYSPACE IF NOT EXISTS %s WITH replication" +
		" = { 'class': 'SimpleStrategy', 'replication_factor': '1' }"

	// CreateUsersTable is the schema of the users table
	CreateUsersTable = "CREATE TABLE IF NOT EXISTS users(id uuid, name text," +
		" age int, PRIMARY KEY(id))"
)

// CreateKeyspaceStmt returns the statement creating keyspace with simple
// replication and a replication factor of 1.
func CreateKeyspaceStmt(keyspace string) string {
	return fmt.Sprintf(createKeyspaceTemplate, keyspace)
}

// Bootstrap prepares the schema of the store. The keyspace is created on a
// session not bound to any keyspace, then the tables are created on a
// session bound to the keyspace, which is returned to the caller.
func Bootstrap(config *Config, tables ...string) (*gocql.Session, error) {
	session, err := CreateStoreSession(config.CassandraConn, "")
	if err != nil {
		return nil, err
	}
	err = session.Query(CreateKeyspaceStmt(config.StoreName)).Exec()
	session.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create keyspace %s",
			config.StoreName)
	}

	session, err = CreateStoreSession(config.CassandraConn, config.StoreName)
	if err != nil {
		return nil, err
	}
	for _, stmt := range tables {
		if err := session.Query(stmt).Exec(); err != nil {
			session.Close()
			return nil, errors.Wrap(err, "failed to create table")
		}
	}

	log.WithFields(log.Fields{
		"key_space": config.StoreName,
		"tables":    len(tables),
	}).Info("C* schema ready")
	return session, nil
}
