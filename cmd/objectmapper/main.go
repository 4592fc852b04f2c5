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
	"context"
	"fmt"
	nethttp "net/http"
	"os"

	"github.com/datastax-examples/object-mapper-go/pkg/common"
	"github.com/datastax-examples/object-mapper-go/pkg/common/config"
	"github.com/datastax-examples/object-mapper-go/pkg/common/logging"
	"github.com/datastax-examples/object-mapper-go/pkg/common/metrics"
	"github.com/datastax-examples/object-mapper-go/pkg/demo"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/connectors/cassandra"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/stores"

	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version string
	app     = kingpin.New(common.ObjectMapper,
		"Object mapper walkthrough over a Cassandra users table")

	debug = app.Flag(
		"debug", "enable debug mode (print full json responses)").
		Short('d').
		Default("false").
		Envar("ENABLE_DEBUG_LOGGING").
		Bool()

	enableSentry = app.Flag(
		"enable-sentry", "enable logging hook up to sentry").
		Default("false").
		Envar("ENABLE_SENTRY_LOGGING").
		Bool()

	configFiles = app.Flag(
		"config",
		"YAML config files (can be provided multiple times to merge configs)").
		Short('c').
		Required().
		ExistingFiles()

	cassandraHosts = app.Flag(
		"cassandra-hosts", "Cassandra hosts").
		Envar("CASSANDRA_HOSTS").
		Strings()

	cassandraStore = app.Flag(
		"cassandra-store", "Cassandra store name").
		Default("").
		Envar("CASSANDRA_STORE").
		String()

	cassandraPort = app.Flag(
		"cassandra-port", "Cassandra port to connect").
		Default("0").
		Envar("CASSANDRA_PORT").
		Int()

	autoMigrate = app.Flag(
		"auto-migrate", "Create the users table through the CQL migrations").
		Envar("AUTO_MIGRATE").
		Bool()

	runCmd = app.Command("run",
		"Run the insert, query, update and delete operations").Default()

	migrateCmd        = app.Command("migrate", "Manage the DB schema")
	migrateUpCmd      = migrateCmd.Command("up", "Apply all DB migrations")
	migrateDownCmd    = migrateCmd.Command("down", "Revert all DB migrations")
	migrateVersionCmd = migrateCmd.Command("version", "Get the current schema version")
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFormatter(
		&logging.LogFieldFormatter{
			Formatter: &logging.SecretsFormatter{Formatter: &log.JSONFormatter{}},
			Fields: log.Fields{
				common.AppLogField: app.Name,
			},
		},
	)

	initialLevel := log.InfoLevel
	if *debug {
		initialLevel = log.DebugLevel
	}
	log.SetLevel(initialLevel)
	log.WithField("files", *configFiles).Info("Loading object mapper config")

	var cfg Config
	if err := config.Parse(&cfg, *configFiles...); err != nil {
		log.WithField("error", err).Fatal("Cannot parse yaml config")
	}
	cfg.resolveMigrations((*configFiles)[len(*configFiles)-1])
	overrideConfig(&cfg)

	if *enableSentry {
		if err := logging.ConfigureSentry(
			&cfg.Sentry, app.Name, cfg.Storage.Cassandra.StoreName); err != nil {
			log.WithError(err).Error("Sentry hook not added")
		}
	}

	log.WithField("config", cfg).Debug("Loaded object mapper config")

	switch cmd {
	case runCmd.FullCommand():
		if err := run(&cfg); err != nil {
			log.WithError(err).Fatal("Object mapper run failed")
		}
	case migrateUpCmd.FullCommand():
		if errs := mustCreateMigrator(&cfg).UpSync(); errs != nil {
			log.Fatalf("Could not migrate database: %+v", errs)
		}
	case migrateDownCmd.FullCommand():
		if errs := mustCreateMigrator(&cfg).DownSync(); errs != nil {
			log.Fatalf("Could not revert database: %+v", errs)
		}
	case migrateVersionCmd.FullCommand():
		version, err := mustCreateMigrator(&cfg).Version()
		if err != nil {
			log.Fatalf("Could not get schema version: %v", err)
		}
		log.WithField("version", version).Info("Database schema version")
	}
}

// overrideConfig applies the command line flags on top of the config files
func overrideConfig(cfg *Config) {
	if *cassandraHosts != nil && len(*cassandraHosts) > 0 {
		cfg.Storage.Cassandra.CassandraConn.ContactPoints = *cassandraHosts
	}

	if *cassandraStore != "" {
		cfg.Storage.Cassandra.StoreName = *cassandraStore
	}

	if *cassandraPort != 0 {
		cfg.Storage.Cassandra.CassandraConn.Port = *cassandraPort
	}

	if *autoMigrate {
		cfg.Storage.AutoMigrate = true
	}
}

func mustCreateMigrator(cfg *Config) *cassandra.Migrator {
	migrator, err := cassandra.NewMigrator(&cfg.Storage.Cassandra)
	if err != nil {
		log.Fatalf("Could not create DB migrator: %v", err)
	}
	return migrator
}

// run connects to the cluster, prepares the schema and walks through the
// operation groups. The store is closed whatever the outcome.
func run(cfg *Config) error {
	rootScope, scopeCloser, mux, err := metrics.InitMetricScope(
		&cfg.Metrics, common.ObjectMapper)
	if err != nil {
		return err
	}
	defer scopeCloser.Close()
	rootScope = rootScope.Tagged(map[string]string{"app": common.ObjectMapper})

	if cfg.HTTPPort != 0 {
		go serveHTTP(cfg.HTTPPort, mux)
	}

	store, err := stores.CreateStore(&cfg.Storage, rootScope)
	if err != nil {
		return err
	}
	defer store.Close()

	return runDemo(store, rootScope)
}

func runDemo(store *objects.Store, scope tally.Scope) error {
	span, ctx := opentracing.StartSpanFromContext(
		context.Background(), common.ObjectMapper+".run")
	defer span.Finish()

	runner, err := demo.NewRunner(objects.NewUserOps(store))
	if err != nil {
		return err
	}
	log.WithField("user0", runner.User0().String()).Info("Starting operations")

	if err := runner.Run(ctx); err != nil {
		scope.Counter("run_fail").Inc(1)
		return err
	}
	scope.Counter("run_success").Inc(1)
	return nil
}

func serveHTTP(port int, mux *nethttp.ServeMux) {
	addr := fmt.Sprintf(":%d", port)
	log.WithField("addr", addr).Info("Serving metrics endpoints")
	if err := nethttp.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Warn("Metrics endpoints stopped")
	}
}
