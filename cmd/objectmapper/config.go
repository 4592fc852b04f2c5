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

package main

import (
	"path/filepath"

	"github.com/datastax-examples/object-mapper-go/pkg/common/logging"
	"github.com/datastax-examples/object-mapper-go/pkg/common/metrics"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/connectors/cassandra"
	storage_config "github.com/datastax-examples/object-mapper-go/pkg/storage/config"
)

// Config holds all configs to run the object mapper demo.
type Config struct {
	Storage storage_config.Config `yaml:"storage"`
	Metrics metrics.Config        `yaml:"metrics"`
	Sentry  logging.SentryConfig  `yaml:"sentry"`
	// HTTPPort serves the metrics and health endpoints while the demo runs.
	// Zero disables the endpoints.
	HTTPPort int `yaml:"http_port"`
}

// Redacted returns a copy of the config safe to log
func (c Config) Redacted() interface{} {
	cp := c
	if conn, ok := c.Storage.Cassandra.CassandraConn.Redacted().(*cassandra.CassandraConn); ok {
		cp.Storage.Cassandra.CassandraConn = conn
	}
	cp.Sentry.DSN = ""
	return cp
}

// resolveMigrations makes a relative migrations directory relative to the
// directory of configFile instead of the working directory.
func (c *Config) resolveMigrations(configFile string) {
	dir := c.Storage.Cassandra.Migrations
	if dir == "" || filepath.IsAbs(dir) || configFile == "" {
		return
	}
	c.Storage.Cassandra.Migrations = filepath.Join(filepath.Dir(configFile), dir)
}
