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
package logging

import (
	"os"
	"time"

	"github.com/datastax-examples/object-mapper-go/pkg/common"

	"github.com/evalphobia/logrus_sentry"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	_clusterEnv = "CLUSTER"

	_defaultSentryTimeout = 100 * time.Millisecond
)

// _sentryLevels are the log levels reported as sentry events
var _sentryLevels = []log.Level{
	log.PanicLevel,
	log.FatalLevel,
	log.ErrorLevel,
}

// SentryConfig is sentry logging specific configuration.
type SentryConfig struct {
	Enabled bool `yaml:"enabled"`
	// DSN is the sentry DSN name.
	DSN string `yaml:"dsn"`
	// Tags are forwarded to the raven client, and enables sentry logs to be
	// filtered by the given tags.
	Tags map[string]string `yaml:"tags"`
	// Timeout bounds the wait for the sentry server to accept an event.
	Timeout time.Duration `yaml:"timeout"`
	// Stacktrace attaches a stacktrace to error events.
	Stacktrace bool `yaml:"stacktrace"`
}

// ConfigureSentry adds a sentry hook to the logger. Events carry the app
// name, the keyspace the mapper works on and the CLUSTER environment
// variable when set. CQL statement arguments hold user data and are never
// sent.
func ConfigureSentry(cfg *SentryConfig, app, keySpace string) error {
	if cfg == nil || !cfg.Enabled {
		log.Debug("skip configuring sentry due to not enabled.")
		return nil
	}
	log.Debug("Adding Sentry hook to logrus")

	cfg.Tags = sentryTags(cfg.Tags, app, keySpace)
	hook, err := logrus_sentry.NewWithTagsSentryHook(
		cfg.DSN, cfg.Tags, _sentryLevels)
	if err != nil {
		return errors.Wrap(err, "failed to create sentry hook")
	}

	hook.Timeout = cfg.Timeout
	if hook.Timeout == 0 {
		hook.Timeout = _defaultSentryTimeout
	}
	if cfg.Stacktrace {
		hook.StacktraceConfiguration.Enable = true
		hook.StacktraceConfiguration.Level = log.ErrorLevel
	}
	hook.AddIgnore(common.DBArgsLogField)

	log.WithFields(log.Fields{
		common.AppLogField:      cfg.Tags[common.AppLogField],
		common.KeySpaceLogField: cfg.Tags[common.KeySpaceLogField],
	}).Info("sentry hook added successfully")
	log.AddHook(hook)
	return nil
}

// sentryTags adds the app, keyspace and cluster tags to the configured ones.
// Configured tags win.
func sentryTags(
	tags map[string]string,
	app string,
	keySpace string,
) map[string]string {
	if tags == nil {
		tags = make(map[string]string)
	}
	defaults := map[string]string{
		common.AppLogField:      app,
		common.KeySpaceLogField: keySpace,
		_clusterEnv:             os.Getenv(_clusterEnv),
	}
	for k, v := range defaults {
		if _, ok := tags[k]; ok || v == "" {
			continue
		}
		tags[k] = v
	}
	return tags
}
