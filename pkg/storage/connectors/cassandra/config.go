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
	"time"
)

// Config is the config for the cassandra connector
type Config struct {
	// CassandraConn is the connection config of the cluster
	CassandraConn *CassandraConn `yaml:"connection" validate:"nonzero"`
	// StoreName is the keyspace holding the mapped tables
	StoreName string `yaml:"store_name" validate:"nonzero"`
	// Migrations is the directory of the CQL migration files
	Migrations string `yaml:"migrations"`
	// MaxBatchSize makes sure we avoid batching too many statements and avoid
	// http://docs.datastax.com/en/archived/cassandra/3.x/cassandra/configuration/configCassandra_yaml.html#configCassandra_yaml__batch_size_fail_threshold_in_kb
	// This value is the number of records that are included in a single
	// batch request. Larger batches are still sent but logged.
	MaxBatchSize int `yaml:"max_batch_size_rows"`
}

// CassandraConn stores the connection configurations of a cassandra cluster
type CassandraConn struct {
	ContactPoints      []string      `yaml:"contact_points" validate:"nonzero"`
	Port               int           `yaml:"port"`
	Username           string        `yaml:"username"`
	Password           string        `yaml:"password"`
	Consistency        string        `yaml:"consistency"`
	ConnectionsPerHost int           `yaml:"connections_per_host"`
	Timeout            time.Duration `yaml:"timeout"`
	SocketKeepalive    time.Duration `yaml:"socket_keepalive"`
	ProtoVersion       int           `yaml:"proto_version"`
	DataCenter         string        `yaml:"data_center"`
	PageSize           int           `yaml:"page_size"`
	RetryCount         int           `yaml:"retry_count"`
	HostPolicy         string        `yaml:"host_policy"`
	TimeoutLimit       int           `yaml:"timeout_limit"`
	CQLVersion         string        `yaml:"cql_version"`
	// DisableInitialHostLookup makes the driver use the contact points
	// only, which is what a single local node behind docker needs
	DisableInitialHostLookup bool `yaml:"disable_initial_host_lookup"`
}

// Redacted returns a copy of the connection config safe to log
func (c *CassandraConn) Redacted() interface{} {
	if c == nil {
		return c
	}
	cp := *c
	if cp.Password != "" {
		cp.Password = "REDACTED"
	}
	return &cp
}
