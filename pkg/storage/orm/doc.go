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

/*
Package orm implements the ORM (object relational mapping) layer of the
object mapper. There are three major components of this layer:

  - Object - is the object representation of a DB table. So every table in DB
    should be read or written using a storage object. Each field of the
    storage object corresponds to each column of the DB table. Storage
    object is annotated using a limited DSL so that ORM can translate the
    object into CQL queries. For example, the users table is read and
    written through UserObject, all of whose fields map to the schema of
    the users table.

  - Client - is the interface exposed by ORM to the application layer. It
    offers single object reads and writes, query fragment based reads
    (Fetch, Single, First and their OrDefault variants), fragment based
    updates and deletes, and batches of writes.

  - Connector - is the interface mapping directly to the API exposed by the
    client and should be implemented by different storage connectors.
    There is currently a cassandra implementation of the connector.
*/
package orm

//go:generate mockgen -destination=mocks/mock_connector.go -package=mocks github.com/datastax-examples/object-mapper-go/pkg/storage/orm Connector,Iterator
//go:generate mockgen -destination=mocks/mock_client.go -package=mocks github.com/datastax-examples/object-mapper-go/pkg/storage/orm Client,ObjectIterator
