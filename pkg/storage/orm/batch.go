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

package orm

import (
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
)

// BatchOp is the kind of write carried by a BatchStatement.
type BatchOp int

const (
	// BatchInsert inserts Values
	BatchInsert BatchOp = iota + 1
	// BatchUpdate sets Values on the row identified by Keys
	BatchUpdate
	// BatchDelete deletes the row identified by Keys
	BatchDelete
)

func (op BatchOp) String() string {
	switch op {
	case BatchInsert:
		return "insert"
	case BatchUpdate:
		return "update"
	case BatchDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// BatchStatement is a single write queued in a Batch.
type BatchStatement struct {
	Op         BatchOp
	Definition *base.Definition
	Values     []base.Column
	Keys       []base.Column
}

// Batch is a group of writes that are submitted together to the DB through
// Client.ExecuteBatch. Storage objects are resolved to their tables when the
// batch is executed. A Batch is not safe for concurrent use.
type Batch struct {
	entries []batchEntry
}

type batchEntry struct {
	op     BatchOp
	obj    base.Object
	fields []string
}

// NewBatch creates an empty batch of writes.
func NewBatch() *Batch {
	return &Batch{}
}

// Insert queues the creation of the storage object.
func (b *Batch) Insert(e base.Object) {
	b.entries = append(b.entries, batchEntry{op: BatchInsert, obj: e})
}

// Update queues an update of the non key columns of the storage object,
// restricted to fieldsToUpdate when given.
func (b *Batch) Update(e base.Object, fieldsToUpdate ...string) {
	b.entries = append(b.entries, batchEntry{
		op:     BatchUpdate,
		obj:    e,
		fields: fieldsToUpdate,
	})
}

// Delete queues the deletion of the storage object by primary key.
func (b *Batch) Delete(e base.Object) {
	b.entries = append(b.entries, batchEntry{op: BatchDelete, obj: e})
}

// Len returns the number of writes queued.
func (b *Batch) Len() int {
	return len(b.entries)
}

// toStatement resolves a queued write against its table.
func (e batchEntry) toStatement(table *Table) *BatchStatement {
	stmt := &BatchStatement{
		Op:         e.op,
		Definition: &table.Definition,
	}
	switch e.op {
	case BatchInsert:
		stmt.Values = table.GetRowFromObject(e.obj)
	case BatchUpdate:
		stmt.Values = table.GetNonKeyRowFromObject(e.obj, e.fields...)
		stmt.Keys = table.GetKeyRowFromObject(e.obj)
	case BatchDelete:
		stmt.Keys = table.GetKeyRowFromObject(e.obj)
	}
	return stmt
}
