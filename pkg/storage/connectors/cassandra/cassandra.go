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
	"context"
	"reflect"
	"time"

	"github.com/datastax-examples/object-mapper-go/pkg/common"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/orm"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/yarpc/yarpcerrors"
)

const (
	useCasWrite = true
)

const (
	// operation tags for metrics
	create      = "create"
	cas         = "cas"
	get         = "get"
	getAll      = "get_all"
	getIter     = "get_iter"
	query       = "query"
	update      = "update"
	updateWhere = "update_where"
	del         = "delete"
	deleteWhere = "delete_where"
	batch       = "batch"

	// default limit for select statements.
	_defaultQueryLimit = 1
	_ignoredQueryLimit = 0
)

var (
	uuidType = reflect.TypeOf(gocql.UUID{})
	timeType = reflect.TypeOf(time.Time{})
)

type cassandraConnector struct {
	// Session is the gocql session created for this connector
	Session *gocql.Session
	// scope is the storage scope for metrics
	scope tally.Scope
	// scope is the storage scope for success metrics
	executeSuccessScope tally.Scope
	// scope is the storage scope for failure metrics
	executeFailScope tally.Scope

	// Conf is the Cassandra connector config for this cluster
	Conf *Config

	closed *atomic.Bool
}

// NewCassandraConnectorWithSession initializes a Cassandra Connector on top
// of an existing session, such as the one returned by Bootstrap. The
// connector owns the session from then on.
func NewCassandraConnectorWithSession(
	config *Config,
	session *gocql.Session,
	scope tally.Scope,
) orm.Connector {
	// create a storeScope for the keyspace StoreName
	storeScope := scope.SubScope("cql").Tagged(
		map[string]string{"store": config.StoreName})

	return &cassandraConnector{
		Session: session,
		scope:   storeScope,
		executeSuccessScope: storeScope.Tagged(
			map[string]string{"result": "success"}),
		executeFailScope: storeScope.Tagged(
			map[string]string{"result": "fail"}),
		Conf:   config,
		closed: atomic.NewBool(false),
	}
}

// ensure that implementation (cassandraConnector) satisfies the interface
var _ orm.Connector = (*cassandraConnector)(nil)

var errClosed = yarpcerrors.UnavailableErrorf("cassandra connector is closed")

// buildResultRow is used to allocate memory for the row to be populated by
// Cassandra read operation based on what object fields are being read
func buildResultRow(e *base.Definition, columns []string) []interface{} {
	results := make([]interface{}, len(columns))

	for i, column := range columns {
		// get the type of the field from the ColumnToType mapping for object
		// That we we can allocate appropriate memory for this field
		typ := e.ColumnToType[column]

		switch {
		case typ == uuidType:
			var value *gocql.UUID
			results[i] = &value
			continue
		case typ == timeType:
			var value *time.Time
			results[i] = &value
			continue
		}

		switch typ.Kind() {
		case reflect.String:
			var value *string
			results[i] = &value
		case reflect.Int32, reflect.Uint32, reflect.Int:
			// C* internally uses int and int64
			var value *int
			results[i] = &value
		case reflect.Int64, reflect.Uint64:
			// C* internally uses int and int64
			var value *int64
			results[i] = &value
		case reflect.Bool:
			var value *bool
			results[i] = &value
		case reflect.Slice:
			var value *[]byte
			results[i] = &value
		default:
			// This should only happen if we start using a new cassandra type
			// without adding to the translation layer
			log.WithFields(log.Fields{"type": typ.Kind(), "column": column}).
				Infof("type not found")
			var value interface{}
			results[i] = &value
		}
	}

	return results
}

// getRowFromResult translates a row read from Cassandra into a list of
// base.Column to be interpreted by the orm client
func getRowFromResult(
	columnNames []string, columnVals []interface{},
) []base.Column {
	row := make([]base.Column, 0, len(columnNames))

	for i, columnName := range columnNames {
		// construct a list of column objects from the lists of column names
		// and values that were returned by the cassandra query
		column := base.Column{
			Name: columnName,
		}

		switch rv := columnVals[i].(type) {
		case **int:
			column.Value = *rv
		case **int64:
			column.Value = *rv
		case **string:
			column.Value = *rv
		case **gocql.UUID:
			column.Value = *rv
		case **time.Time:
			column.Value = *rv
		case **bool:
			column.Value = *rv
		case **[]byte:
			column.Value = *rv
		case *interface{}:
			column.Value = *rv
		default:
			// This should only happen if we start using a new cassandra type
			// without adding to the translation layer
			log.WithFields(log.Fields{
				"data":   columnVals[i],
				"column": columnName}).Infof("type not found")
		}
		row = append(row, column)
	}
	return row
}

// splitColumnNameValue is used to return list of column names and list of their
// corresponding value. Order is very important in this lists as they will be
// used separately when constructing the CQL query.
func splitColumnNameValue(row []base.Column) (
	colNames []string, colValues []interface{}) {

	// Split row into two lists of column names and column values.
	// So for a location `i` in the list, the colNames[i] and colValues[i] will
	// represent row[i]
	for _, column := range row {
		colNames = append(colNames, column.Name)
		colValues = append(colValues, column.Value)
	}

	return colNames, colValues
}

// insertQuery builds the insert statement of row along with its values
func insertQuery(
	e *base.Definition,
	row []base.Column,
	casWrite bool,
) (string, []interface{}, error) {
	colNames, colValues := splitColumnNameValue(row)
	stmt, err := InsertStmt(
		Table(e.Name),
		Columns(colNames),
		Values(colValues),
		IfNotExist(casWrite),
	)
	return stmt, colValues, err
}

// updateQuery builds the update statement setting row on the row
// identified by keyCols. Values are ordered SET values first.
func updateQuery(
	e *base.Definition,
	row []base.Column,
	keyCols []base.Column,
) (string, []interface{}, error) {
	keyColNames, keyColValues := splitColumnNameValue(keyCols)
	colNames, colValues := splitColumnNameValue(row)

	stmt, err := UpdateStmt(
		Table(e.Name),
		Updates(colNames),
		Conditions(keyColNames),
	)
	// list of values to be supplied in the query
	return stmt, append(colValues, keyColValues...), err
}

// deleteQuery builds the delete statement of the row identified by keyCols
func deleteQuery(
	e *base.Definition,
	keyCols []base.Column,
) (string, []interface{}, error) {
	keyColNames, keyColValues := splitColumnNameValue(keyCols)
	stmt, err := DeleteStmt(
		Table(e.Name),
		Conditions(keyColNames),
	)
	return stmt, keyColValues, err
}

// batchQuery builds the statement of a single write of a batch
func batchQuery(s *orm.BatchStatement) (string, []interface{}, error) {
	switch s.Op {
	case orm.BatchInsert:
		return insertQuery(s.Definition, s.Values, !useCasWrite)
	case orm.BatchUpdate:
		return updateQuery(s.Definition, s.Values, s.Keys)
	case orm.BatchDelete:
		return deleteQuery(s.Definition, s.Keys)
	default:
		return "", nil, yarpcerrors.InvalidArgumentErrorf(
			"unknown batch operation %v on table %s", s.Op, s.Definition.Name)
	}
}

// exec runs a write statement and records its metrics
func (c *cassandraConnector) exec(
	ctx context.Context,
	tableName, operation, stmt string,
	args []interface{},
) error {
	if c.closed.Load() {
		sendCounters(c.executeFailScope, tableName, operation, errClosed)
		return errClosed
	}
	defer trace(ctx, operation)()

	q := c.Session.Query(stmt, args...).WithContext(ctx)
	if err := q.Exec(); err != nil {
		logStmtFailure(stmt, args, err)
		sendCounters(c.executeFailScope, tableName, operation, err)
		return err
	}

	sendLatency(c.scope, tableName, operation, time.Duration(q.Latency()))
	sendCounters(c.executeSuccessScope, tableName, operation, nil)
	return nil
}

func logStmtFailure(stmt string, args []interface{}, err error) {
	log.WithFields(log.Fields{
		common.DBStmtLogField: stmt,
		common.DBArgsLogField: args,
	}).WithError(err).Debug("CQL statement failed")
}

// selectRows runs a select statement and returns all rows it yields
func (c *cassandraConnector) selectRows(
	ctx context.Context,
	tableName, operation, stmt string,
	args []interface{},
) ([]map[string]interface{}, error) {
	if c.closed.Load() {
		sendCounters(c.executeFailScope, tableName, operation, errClosed)
		return nil, errClosed
	}
	defer trace(ctx, operation)()

	q := c.Session.Query(stmt, args...).WithContext(ctx)

	// execute query and get iterator
	cqlIter := q.Iter()
	defer cqlIter.Close()
	result, err := cqlIter.SliceMap()
	if err != nil {
		logStmtFailure(stmt, args, err)
		sendCounters(c.executeFailScope, tableName, operation, err)
		return nil, errors.Wrap(err, "SliceMap failed")
	}

	sendLatency(c.scope, tableName, operation, time.Duration(q.Latency()))
	sendCounters(c.executeSuccessScope, tableName, operation, nil)
	return result, nil
}

// CreateIfNotExists creates a new row in DB if it already doesn't exist.
// Uses CAS write.
func (c *cassandraConnector) CreateIfNotExists(
	ctx context.Context,
	e *base.Definition,
	row []base.Column,
) error {
	return c.create(ctx, e, row, useCasWrite)
}

// Create creates a new row in DB.
func (c *cassandraConnector) Create(
	ctx context.Context,
	e *base.Definition,
	row []base.Column,
) error {
	return c.create(ctx, e, row, !useCasWrite)
}

func (c *cassandraConnector) create(
	ctx context.Context,
	e *base.Definition,
	row []base.Column,
	casWrite bool,
) error {
	stmt, colValues, err := insertQuery(e, row, casWrite)
	if err != nil {
		return err
	}

	if !casWrite {
		return c.exec(ctx, e.Name, create, stmt, colValues)
	}

	if c.closed.Load() {
		sendCounters(c.executeFailScope, e.Name, cas, errClosed)
		return errClosed
	}
	defer trace(ctx, cas)()

	q := c.Session.Query(stmt, colValues...).WithContext(ctx)
	applied, err := q.MapScanCAS(map[string]interface{}{})
	if err != nil {
		sendCounters(c.executeFailScope, e.Name, cas, err)
		return err
	}
	if !applied {
		err = yarpcerrors.AlreadyExistsErrorf("item already exists")
		sendCounters(c.executeFailScope, e.Name, cas, err)
		return err
	}

	sendLatency(c.scope, e.Name, cas, time.Duration(q.Latency()))
	sendCounters(c.executeSuccessScope, e.Name, cas, nil)
	return nil
}

// Get fetches a record from DB using primary keys
// returns a map describing a row from DB, key is columnName,
// value is columnValue. A nil map is returned when there is no such row.
func (c *cassandraConnector) Get(
	ctx context.Context,
	e *base.Definition,
	keyCols []base.Column,
	colNamesToRead ...string,
) (map[string]interface{}, error) {
	if len(colNamesToRead) == 0 {
		colNamesToRead = e.GetColumnsToRead()
	}

	keyColNames, keyColValues := splitColumnNameValue(keyCols)
	stmt, err := SelectStmt(
		Table(e.Name),
		Columns(colNamesToRead),
		Conditions(keyColNames),
		Limit(_defaultQueryLimit),
	)
	if err != nil {
		sendCounters(c.executeFailScope, e.Name, get, err)
		return nil, err
	}

	result, err := c.selectRows(ctx, e.Name, get, stmt, keyColValues)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result[0], nil
}

// GetAll fetches all rows from DB using partition keys
// returns an array of map[string]interface{}
// the key of the map is the columnName, the value of the map is ColumnValue
func (c *cassandraConnector) GetAll(
	ctx context.Context,
	e *base.Definition,
	keyCols []base.Column,
) ([]map[string]interface{}, error) {
	keyColNames, keyColValues := splitColumnNameValue(keyCols)
	stmt, err := SelectStmt(
		Table(e.Name),
		Columns(e.GetColumnsToRead()),
		Conditions(keyColNames),
		Limit(_ignoredQueryLimit),
	)
	if err != nil {
		sendCounters(c.executeFailScope, e.Name, getAll, err)
		return nil, err
	}
	return c.selectRows(ctx, e.Name, getAll, stmt, keyColValues)
}

// GetAllIter gives an iterator to fetch all rows from DB
func (c *cassandraConnector) GetAllIter(
	ctx context.Context,
	e *base.Definition,
	keyCols []base.Column,
) (orm.Iterator, error) {
	if c.closed.Load() {
		sendCounters(c.executeFailScope, e.Name, getIter, errClosed)
		return nil, errClosed
	}

	colNamesToRead := e.GetColumnsToRead()
	keyColNames, keyColValues := splitColumnNameValue(keyCols)
	stmt, err := SelectStmt(
		Table(e.Name),
		Columns(colNamesToRead),
		Conditions(keyColNames),
		Limit(_ignoredQueryLimit),
	)
	if err != nil {
		return nil, err
	}

	q := c.Session.Query(stmt, keyColValues...).WithContext(ctx)

	// execute query and get iterator
	cqlIter := q.Iter()
	sendLatency(c.scope, e.Name, getIter, time.Duration(q.Latency()))

	return newIterator(
		e,
		colNamesToRead,
		c.executeSuccessScope,
		c.executeFailScope,
		cqlIter,
	), nil
}

// Query runs a select statement built from a query fragment. See
// SelectFromFragment for the accepted fragments.
func (c *cassandraConnector) Query(
	ctx context.Context,
	e *base.Definition,
	fragment string,
	args ...interface{},
) ([]map[string]interface{}, error) {
	stmt := SelectFromFragment(e.Name, e.GetColumnsToRead(), fragment)
	return c.selectRows(ctx, e.Name, query, stmt, args)
}

// Update updates an existing row in DB.
func (c *cassandraConnector) Update(
	ctx context.Context,
	e *base.Definition,
	row []base.Column,
	keyCols []base.Column,
) error {
	stmt, updateVals, err := updateQuery(e, row, keyCols)
	if err != nil {
		return err
	}
	return c.exec(ctx, e.Name, update, stmt, updateVals)
}

// UpdateWhere runs an update built from a "SET ... WHERE ..." fragment
func (c *cassandraConnector) UpdateWhere(
	ctx context.Context,
	e *base.Definition,
	fragment string,
	args ...interface{},
) error {
	stmt := UpdateFromFragment(e.Name, fragment)
	return c.exec(ctx, e.Name, updateWhere, stmt, args)
}

// Delete deletes a record from DB using primary keys
func (c *cassandraConnector) Delete(
	ctx context.Context,
	e *base.Definition,
	keyCols []base.Column,
) error {
	stmt, keyColValues, err := deleteQuery(e, keyCols)
	if err != nil {
		return err
	}
	return c.exec(ctx, e.Name, del, stmt, keyColValues)
}

// DeleteWhere runs a delete built from a "WHERE ..." fragment
func (c *cassandraConnector) DeleteWhere(
	ctx context.Context,
	e *base.Definition,
	fragment string,
	args ...interface{},
) error {
	stmt := DeleteFromFragment(e.Name, fragment)
	return c.exec(ctx, e.Name, deleteWhere, stmt, args)
}

// ExecuteBatch applies all the statements in a single logged batch
func (c *cassandraConnector) ExecuteBatch(
	ctx context.Context,
	stmts []*orm.BatchStatement,
) error {
	if len(stmts) == 0 {
		return nil
	}
	tableName := batchTableName(stmts)

	if c.closed.Load() {
		sendCounters(c.executeFailScope, tableName, batch, errClosed)
		return errClosed
	}
	defer trace(ctx, batch)()

	if c.Conf.MaxBatchSize > 0 && len(stmts) > c.Conf.MaxBatchSize {
		log.WithFields(log.Fields{
			"table":          tableName,
			"statements":     len(stmts),
			"max_batch_size": c.Conf.MaxBatchSize,
		}).Warn("batch exceeds configured max batch size")
	}

	b := c.Session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, s := range stmts {
		stmt, args, err := batchQuery(s)
		if err != nil {
			sendCounters(c.executeFailScope, tableName, batch, err)
			return err
		}
		b.Query(stmt, args...)
	}

	if err := c.Session.ExecuteBatch(b); err != nil {
		sendCounters(c.executeFailScope, tableName, batch, err)
		return err
	}

	sendLatency(c.scope, tableName, batch, time.Duration(b.Latency()))
	sendCounters(c.executeSuccessScope, tableName, batch, nil)
	return nil
}

// batchTableName returns the table tag used for the metrics of a batch
func batchTableName(stmts []*orm.BatchStatement) string {
	name := stmts[0].Definition.Name
	for _, s := range stmts[1:] {
		if s.Definition.Name != name {
			return "multiple"
		}
	}
	return name
}

// Close closes the session. Operations on a closed connector fail with an
// Unavailable error.
func (c *cassandraConnector) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.Session.Close()
	log.WithField("key_space", c.Conf.StoreName).Info("C* Session Closed.")
}

// cassandraIterator implements interface Iterator for Cassandra
type cassandraIterator struct {
	cqlIter        *gocql.Iter
	tableDef       *base.Definition
	colNamesToRead []string
	successScope   tally.Scope
	failScope      tally.Scope
}

// ensure that implementation (cassandraIterator) satisfies the interface
var _ orm.Iterator = (*cassandraIterator)(nil)

func newIterator(
	e *base.Definition,
	cols []string,
	successScope tally.Scope,
	failScope tally.Scope,
	cqlIter *gocql.Iter,
) *cassandraIterator {
	return &cassandraIterator{
		cqlIter:        cqlIter,
		tableDef:       e,
		successScope:   successScope,
		failScope:      failScope,
		colNamesToRead: cols,
	}
}

func (iter *cassandraIterator) Close() {
	iter.cqlIter.Close()
}

func (iter *cassandraIterator) Next() ([]base.Column, error) {
	result := buildResultRow(iter.tableDef, iter.colNamesToRead)
	if iter.cqlIter.Scan(result...) {
		return getRowFromResult(iter.colNamesToRead, result), nil
	}
	// Either end-of-results or error
	if err := iter.cqlIter.Close(); err != nil {
		sendCounters(iter.failScope, iter.tableDef.Name, getIter, err)
		return nil, err
	}
	sendCounters(iter.successScope, iter.tableDef.Name, getIter, nil)
	return nil, nil
}
