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
	"context"
	"reflect"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"

	"go.uber.org/yarpc/yarpcerrors"
)

// Client defines the methods to operate with storage objects
type Client interface {
	// CreateIfNotExists creates the storage object in the database if it
	// doesn't already exist
	CreateIfNotExists(ctx context.Context, e base.Object) error
	// Create creates the storage object in the database
	Create(ctx context.Context, e base.Object) error
	// Get gets the storage object from the database by primary key
	Get(ctx context.Context, e base.Object, fieldsToRead ...string) error
	// GetAll gets all the storage objects of the partition of e. When no
	// partition key is set on e, the whole table is read
	GetAll(ctx context.Context, e base.Object) ([]base.Object, error)
	// GetAllIter is GetAll returning an iterator
	GetAllIter(ctx context.Context, e base.Object) (ObjectIterator, error)
	// Fetch returns the storage objects selected by a query fragment
	Fetch(
		ctx context.Context,
		e base.Object,
		stmt string,
		args ...interface{},
	) ([]base.Object, error)
	// Single sets e from the only row selected by the query fragment
	Single(ctx context.Context, e base.Object, stmt string, args ...interface{}) error
	// SingleOrDefault is Single which reports a missing row instead of failing
	SingleOrDefault(
		ctx context.Context,
		e base.Object,
		stmt string,
		args ...interface{},
	) (bool, error)
	// First sets e from the first row selected by the query fragment
	First(ctx context.Context, e base.Object, stmt string, args ...interface{}) error
	// FirstOrDefault is First which reports a missing row instead of failing
	FirstOrDefault(
		ctx context.Context,
		e base.Object,
		stmt string,
		args ...interface{},
	) (bool, error)
	// Update updates the storage object in the database
	Update(ctx context.Context, e base.Object, fieldsToUpdate ...string) error
	// UpdateWhere runs a "SET ... WHERE ..." fragment on the table of e
	UpdateWhere(ctx context.Context, e base.Object, stmt string, args ...interface{}) error
	// Delete deletes the storage object from the database
	Delete(ctx context.Context, e base.Object) error
	// DeleteWhere runs a "WHERE ..." delete fragment on the table of e
	DeleteWhere(ctx context.Context, e base.Object, stmt string, args ...interface{}) error
	// ExecuteBatch submits all writes of the batch together
	ExecuteBatch(ctx context.Context, b *Batch) error
	// Close releases the underlying connector
	Close()
}

// ObjectIterator iterates over storage objects.
type ObjectIterator interface {
	// Next returns the next object or nil when there are no more
	Next() (base.Object, error)
	// Close releases the iterator
	Close()
}

type client struct {
	objectIndex map[reflect.Type]*Table
	connector   Connector
}

// NewClient returns a new ORM client for the storage objects and
// connector provided.
func NewClient(conn Connector, objects ...base.Object) (Client, error) {
	oi, err := BuildObjectIndex(objects)
	if err != nil {
		return nil, err
	}
	return &client{
		objectIndex: oi,
		connector:   conn,
	}, nil
}

// getTable gets the Table structure that matches the storage object
// provided. Return an error when not found.
func (c *client) getTable(e base.Object) (*Table, error) {
	t := reflect.TypeOf(e)
	if t == nil || t.Kind() != reflect.Ptr {
		return nil, yarpcerrors.InvalidArgumentErrorf(
			"storage object must be a pointer, got %v", t)
	}
	table, ok := c.objectIndex[t.Elem()]
	if !ok {
		return nil, yarpcerrors.NotFoundErrorf(
			"Table not found for object: %q", t.Elem().Name())
	}
	return table, nil
}

// CreateIfNotExists creates the storage object in the database if it
// doesn't already exist
func (c *client) CreateIfNotExists(ctx context.Context, e base.Object) error {
	table, err := c.getTable(e)
	if err != nil {
		return err
	}
	row := table.GetRowFromObject(e)
	return c.connector.CreateIfNotExists(ctx, &table.Definition, row)
}

// Create creates the storage object in the database
func (c *client) Create(ctx context.Context, e base.Object) error {
	// lookup if a table exists for this object, return error if not found
	table, err := c.getTable(e)
	if err != nil {
		return err
	}

	// translate the storage object into a row (list of column)
	row := table.GetRowFromObject(e)

	// Tell the connector to create a row in the DB using this row
	return c.connector.Create(ctx, &table.Definition, row)
}

// Get fetches a storage object by primary key. The object provided must
// contain values for all components of its primary key for the operation
// to succeed.
func (c *client) Get(
	ctx context.Context,
	e base.Object,
	fieldsToRead ...string,
) error {
	table, err := c.getTable(e)
	if err != nil {
		return err
	}

	colNamesToRead := make([]string, 0, len(fieldsToRead))
	for _, f := range fieldsToRead {
		col, ok := table.FieldToCol[f]
		if !ok {
			return yarpcerrors.InvalidArgumentErrorf(
				"field %q is not mapped on table %s", f, table.Name)
		}
		colNamesToRead = append(colNamesToRead, col)
	}

	// build a primary key row from storage object
	keyRow := table.GetKeyRowFromObject(e)

	row, err := c.connector.Get(ctx, &table.Definition, keyRow, colNamesToRead...)
	if err != nil {
		return err
	}
	if row == nil {
		return yarpcerrors.NotFoundErrorf(
			"no row found in %s for %v", table.Name, keyRow)
	}

	// set the storage object fields from the row
	table.SetObjectFromRow(e, row)
	return nil
}

// GetAll fetches all storage objects of the partition of e
func (c *client) GetAll(ctx context.Context, e base.Object) ([]base.Object, error) {
	table, err := c.getTable(e)
	if err != nil {
		return nil, err
	}

	rows, err := c.connector.GetAll(
		ctx, &table.Definition, table.GetPartitionKeyRowFromObject(e))
	if err != nil {
		return nil, err
	}
	return objectsFromRows(table, rows), nil
}

// GetAllIter returns an iterator over the storage objects of the partition
// of e
func (c *client) GetAllIter(
	ctx context.Context,
	e base.Object,
) (ObjectIterator, error) {
	table, err := c.getTable(e)
	if err != nil {
		return nil, err
	}

	iter, err := c.connector.GetAllIter(
		ctx, &table.Definition, table.GetPartitionKeyRowFromObject(e))
	if err != nil {
		return nil, err
	}
	return &objectIterator{table: table, iter: iter}, nil
}

// Fetch returns the storage objects selected by the query fragment. The
// fragment may be empty, start with WHERE or FROM, or be a whole SELECT.
func (c *client) Fetch(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) ([]base.Object, error) {
	table, rows, err := c.query(ctx, e, stmt, args)
	if err != nil {
		return nil, err
	}
	return objectsFromRows(table, rows), nil
}

// query runs the fragment and returns the table of e with the raw rows.
func (c *client) query(
	ctx context.Context,
	e base.Object,
	stmt string,
	args []interface{},
) (*Table, []map[string]interface{}, error) {
	table, err := c.getTable(e)
	if err != nil {
		return nil, nil, err
	}
	rows, err := c.connector.Query(ctx, &table.Definition, stmt, args...)
	if err != nil {
		return nil, nil, err
	}
	return table, rows, nil
}

// Single sets e from the only row selected by the fragment. It fails with
// NotFound when no row matches and FailedPrecondition for more than one.
func (c *client) Single(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) error {
	found, err := c.SingleOrDefault(ctx, e, stmt, args...)
	if err != nil {
		return err
	}
	if !found {
		return yarpcerrors.NotFoundErrorf("no row matches %q", stmt)
	}
	return nil
}

// SingleOrDefault sets e from the only row selected by the fragment and
// returns false, leaving e untouched, when no row matches.
func (c *client) SingleOrDefault(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) (bool, error) {
	table, rows, err := c.query(ctx, e, stmt, args)
	if err != nil {
		return false, err
	}
	switch len(rows) {
	case 0:
		return false, nil
	case 1:
		table.SetObjectFromRow(e, rows[0])
		return true, nil
	default:
		return false, yarpcerrors.FailedPreconditionErrorf(
			"%d rows match %q, expected at most one", len(rows), stmt)
	}
}

// First sets e from the first row selected by the fragment. It fails with
// NotFound when no row matches.
func (c *client) First(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) error {
	found, err := c.FirstOrDefault(ctx, e, stmt, args...)
	if err != nil {
		return err
	}
	if !found {
		return yarpcerrors.NotFoundErrorf("no row matches %q", stmt)
	}
	return nil
}

// FirstOrDefault sets e from the first row selected by the fragment and
// returns false, leaving e untouched, when no row matches.
func (c *client) FirstOrDefault(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) (bool, error) {
	table, rows, err := c.query(ctx, e, stmt, args)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	table.SetObjectFromRow(e, rows[0])
	return true, nil
}

// Update updates the non key columns of the storage object. When
// fieldsToUpdate is given only those fields are written.
func (c *client) Update(
	ctx context.Context,
	e base.Object,
	fieldsToUpdate ...string,
) error {
	table, err := c.getTable(e)
	if err != nil {
		return err
	}

	row := table.GetNonKeyRowFromObject(e, fieldsToUpdate...)
	if len(row) == 0 {
		return yarpcerrors.InvalidArgumentErrorf(
			"nothing to update on table %s", table.Name)
	}
	keyRow := table.GetKeyRowFromObject(e)

	return c.connector.Update(ctx, &table.Definition, row, keyRow)
}

// UpdateWhere runs a "SET ... WHERE ..." fragment on the table of e
func (c *client) UpdateWhere(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) error {
	table, err := c.getTable(e)
	if err != nil {
		return err
	}
	return c.connector.UpdateWhere(ctx, &table.Definition, stmt, args...)
}

// Delete deletes the storage object in the database
func (c *client) Delete(ctx context.Context, e base.Object) error {
	// lookup if a table exists for this object, return error if not found
	table, err := c.getTable(e)
	if err != nil {
		return err
	}

	// build a primary key row from storage object
	keyRow := table.GetKeyRowFromObject(e)

	// Tell the connector to delete the row in the DB using this keyRow
	return c.connector.Delete(ctx, &table.Definition, keyRow)
}

// DeleteWhere runs a "WHERE ..." delete fragment on the table of e
func (c *client) DeleteWhere(
	ctx context.Context,
	e base.Object,
	stmt string,
	args ...interface{},
) error {
	table, err := c.getTable(e)
	if err != nil {
		return err
	}
	return c.connector.DeleteWhere(ctx, &table.Definition, stmt, args...)
}

// ExecuteBatch submits the writes of the batch. Empty batches are a no-op.
func (c *client) ExecuteBatch(ctx context.Context, b *Batch) error {
	if b == nil || b.Len() == 0 {
		return nil
	}
	stmts := make([]*BatchStatement, 0, b.Len())
	for _, entry := range b.entries {
		table, err := c.getTable(entry.obj)
		if err != nil {
			return err
		}
		stmt := entry.toStatement(table)
		if stmt.Op == BatchUpdate && len(stmt.Values) == 0 {
			return yarpcerrors.InvalidArgumentErrorf(
				"nothing to update on table %s", table.Name)
		}
		stmts = append(stmts, stmt)
	}
	return c.connector.ExecuteBatch(ctx, stmts)
}

// Close releases the connector
func (c *client) Close() {
	c.connector.Close()
}

func objectsFromRows(table *Table, rows []map[string]interface{}) []base.Object {
	objs := make([]base.Object, 0, len(rows))
	for _, row := range rows {
		o := table.NewObject()
		table.SetObjectFromRow(o, row)
		objs = append(objs, o)
	}
	return objs
}

// objectIterator turns connector rows into storage objects
type objectIterator struct {
	table *Table
	iter  Iterator
}

func (it *objectIterator) Next() (base.Object, error) {
	row, err := it.iter.Next()
	if err != nil || row == nil {
		return nil, err
	}
	o := it.table.NewObject()
	it.table.SetObjectFromColumns(o, row)
	return o, nil
}

func (it *objectIterator) Close() {
	it.iter.Close()
}
