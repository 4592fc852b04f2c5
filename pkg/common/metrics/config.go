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

package metrics

import (
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/cactus/go-statsd-client/statsd"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	tallyprom "github.com/uber-go/tally/prometheus"
	tallystatsd "github.com/uber-go/tally/statsd"
)

// Config will be containing the metrics configuration
type Config struct {
	Prometheus *PrometheusConfig `yaml:"prometheus"`
	Statsd     *StatsdConfig     `yaml:"statsd"`
	// FlushInterval is how often the root scope reports
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// PrometheusConfig enables the prometheus reporter
type PrometheusConfig struct {
	Enable bool `yaml:"enable"`
}

// StatsdConfig enables the statsd reporter
type StatsdConfig struct {
	Enable   bool   `yaml:"enable"`
	Endpoint string `yaml:"endpoint"`
	Prefix   string `yaml:"prefix"`
}

const _defaultFlushInterval = time.Second

// InitMetricScope initialize a root scope and its closer, with a http server mux
func InitMetricScope(
	cfg *Config,
	rootMetricScope string) (tally.Scope, io.Closer, *nethttp.ServeMux, error) {
	// mux is used to mux together other (non-RPC) handlers, like metrics exposition endpoints, etc
	mux := nethttp.NewServeMux()
	var reporter tally.StatsReporter
	var cachedReporter tally.CachedStatsReporter
	var promHandler nethttp.Handler
	metricSeparator := "."

	if cfg == nil {
		cfg = &Config{}
	}
	flushInterval := cfg.FlushInterval
	if flushInterval == 0 {
		flushInterval = _defaultFlushInterval
	}

	if cfg.Prometheus != nil && cfg.Prometheus.Enable {
		// tally panics if scope name contains "-", hence force convert to "_"
		rootMetricScope = strings.Replace(rootMetricScope, "-", "_", -1)
		metricSeparator = "_"
		promReporter := tallyprom.NewReporter(tallyprom.Options{})
		cachedReporter = promReporter
		promHandler = promReporter.HTTPHandler()
	} else if cfg.Statsd != nil && cfg.Statsd.Enable {
		log.Infof("Metrics configured with statsd endpoint %s", cfg.Statsd.Endpoint)
		c, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
			Address: cfg.Statsd.Endpoint,
			Prefix:  cfg.Statsd.Prefix,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		reporter = tallystatsd.NewReporter(c, tallystatsd.Options{})
	} else {
		log.Debug("No metrics backends configured, using the statsd.NoopClient")
		c, _ := statsd.NewNoopClient()
		reporter = tallystatsd.NewReporter(c, tallystatsd.Options{})
	}

	if promHandler != nil {
		// if prometheus support is enabled, handle /metrics to serve prom metrics
		log.Infof("Setting up prometheus metrics handler at /metrics")
		mux.Handle("/metrics", promHandler)
	}
	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	metricScope, scopeCloser := tally.NewRootScope(
		tally.ScopeOptions{
			Prefix:         rootMetricScope,
			Tags:           map[string]string{},
			Reporter:       reporter,
			CachedReporter: cachedReporter,
			Separator:      metricSeparator,
		},
		flushInterval)
	return metricScope, scopeCloser, mux, nil
}
