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

package objects

import (
	"github.com/datastax-examples/object-mapper-go/pkg/storage"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/orm"

	"github.com/uber-go/tally"
)

// Objs is a global list of storage objects. Every storage object will be
// added using its init method to the list. This list will be used during
// ORM client initialization.
var Objs []base.Object

// Store contains ORM client as well as metrics
type Store struct {
	oClient orm.Client
	metrics *storage.Metrics
}

// NewStore creates a Store on top of the connector for all the storage
// objects of Objs.
func NewStore(connector orm.Connector, scope tally.Scope) (*Store, error) {
	oclient, err := orm.NewClient(connector, Objs...)
	if err != nil {
		return nil, err
	}
	return &Store{
		oClient: oclient,
		metrics: storage.NewMetrics(scope),
	}, nil
}

// Close releases the connection to the DB. The store is unusable afterwards.
func (s *Store) Close() {
	s.oClient.Close()
}
