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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testConfig struct {
	Name    string   `yaml:"name" validate:"nonzero"`
	Hosts   []string `yaml:"hosts"`
	Port    int      `yaml:"port" validate:"min=1"`
	Verbose bool     `yaml:"verbose"`
}

type ParseTestSuite struct {
	suite.Suite

	dir string
}

func TestParseSuite(t *testing.T) {
	suite.Run(t, new(ParseTestSuite))
}

func (s *ParseTestSuite) SetupTest() {
	dir, err := ioutil.TempDir("", "config")
	s.Require().NoError(err)
	s.dir = dir
}

func (s *ParseTestSuite) TearDownTest() {
	os.RemoveAll(s.dir)
}

func (s *ParseTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *ParseTestSuite) TestParseMergesFilesInOrder() {
	base := s.writeFile("base.yaml", `
name: base
hosts:
  - 127.0.0.1
port: 9042
`)
	override := s.writeFile("override.yaml", `
name: override
verbose: true
`)

	var cfg testConfig
	s.NoError(Parse(&cfg, base, override))
	s.Equal("override", cfg.Name)
	s.Equal([]string{"127.0.0.1"}, cfg.Hosts)
	s.Equal(9042, cfg.Port)
	s.True(cfg.Verbose)
}

func (s *ParseTestSuite) TestParseNoFiles() {
	var cfg testConfig
	s.EqualError(Parse(&cfg), "no files to load")
}

func (s *ParseTestSuite) TestParseMissingFile() {
	var cfg testConfig
	s.Error(Parse(&cfg, filepath.Join(s.dir, "missing.yaml")))
}

func (s *ParseTestSuite) TestParseInvalidYAML() {
	path := s.writeFile("bad.yaml", "name: [unterminated")
	var cfg testConfig
	s.Error(Parse(&cfg, path))
}

func (s *ParseTestSuite) TestParseValidationFailure() {
	path := s.writeFile("invalid.yaml", "hosts: [a]\n")

	var cfg testConfig
	err := Parse(&cfg, path)
	s.Error(err)

	verr, ok := err.(ValidationError)
	s.True(ok)
	s.Error(verr.ErrForField("Name"))
	s.Error(verr.ErrForField("Port"))
	s.NoError(verr.ErrForField("Hosts"))
	s.Contains(verr.Error(), "validation failed")
	s.Contains(verr.Error(), "Name")
}

func (s *ParseTestSuite) TestValidate() {
	s.NoError(Validate(&testConfig{Name: "n", Port: 1}))
	s.Error(Validate(&testConfig{Port: 1}))
}
