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

package orm_test

import (
	"context"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/orm"
	ormmocks "github.com/datastax-examples/object-mapper-go/pkg/storage/orm/mocks"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"go.uber.org/yarpc/yarpcerrors"
)

const _byID = "WHERE id = ?"

var testMapRow = map[string]interface{}{
	"id":   uint64(1),
	"name": "test",
	"data": "testdata",
}

func (suite *ORMTestSuite) newClient() (orm.Client, *ormmocks.MockConnector) {
	conn := ormmocks.NewMockConnector(suite.ctrl)
	client, err := orm.NewClient(conn, &ValidObject{})
	suite.NoError(err)
	return client, conn
}

// TestNewClient tests creating new base client with base objects
func (suite *ORMTestSuite) TestNewClient() {
	conn := ormmocks.NewMockConnector(suite.ctrl)
	_, err := orm.NewClient(conn, &ValidObject{})
	suite.NoError(err)

	_, err = orm.NewClient(conn, &InvalidObject1{})
	suite.Error(err)
}

// TestClientCreate tests client create operation on valid and invalid entities
func (suite *ORMTestSuite) TestClientCreate() {
	client, conn := suite.newClient()

	conn.EXPECT().Create(suite.ctx, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, d *base.Definition, row []base.Column) {
			suite.Equal("valid_object", d.Name)
			suite.ensureRowsEqual(row, testRow)
		}).Return(nil)

	err := client.Create(suite.ctx, testValidObject)
	suite.NoError(err)

	// object not registered with the client
	err = client.Create(suite.ctx, &InvalidObject1{})
	suite.Error(err)
	suite.True(yarpcerrors.IsNotFound(err))

	// object is not a pointer
	err = client.Create(suite.ctx, ValidObject{})
	suite.Error(err)
	suite.True(yarpcerrors.IsInvalidArgument(err))
}

// TestClientCreateIfNotExists tests the CAS create path
func (suite *ORMTestSuite) TestClientCreateIfNotExists() {
	client, conn := suite.newClient()

	conn.EXPECT().CreateIfNotExists(suite.ctx, gomock.Any(), gomock.Any()).
		Return(yarpcerrors.AlreadyExistsErrorf("item already exists"))

	err := client.CreateIfNotExists(suite.ctx, testValidObject)
	suite.True(yarpcerrors.IsAlreadyExists(err))
}

// TestClientGet tests client get operation on valid and invalid entities
func (suite *ORMTestSuite) TestClientGet() {
	client, conn := suite.newClient()

	// ValidObject instance with only primary key set
	e := &ValidObject{
		ID:   uint64(1),
		Name: "test",
	}

	conn.EXPECT().Get(suite.ctx, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *base.Definition, row []base.Column,
			_ ...string) {
			suite.Equal("id", row[0].Name)
			suite.Equal(e.ID, row[0].Value)
		}).Return(testMapRow, nil)

	// Do a get on the ValidObject instance and verify that the expected
	// fields in the object are set as per testRow
	err := client.Get(suite.ctx, e)
	suite.NoError(err)
	suite.Equal(testRow[2].Value, e.Data)

	// read selected fields only
	conn.EXPECT().Get(suite.ctx, gomock.Any(), gomock.Any(), "data").
		Return(map[string]interface{}{"data": "other"}, nil)
	err = client.Get(suite.ctx, e, "Data")
	suite.NoError(err)
	suite.Equal("other", e.Data)

	// unknown field
	err = client.Get(suite.ctx, e, "Unknown")
	suite.True(yarpcerrors.IsInvalidArgument(err))

	// row not found
	conn.EXPECT().Get(suite.ctx, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	err = client.Get(suite.ctx, e)
	suite.True(yarpcerrors.IsNotFound(err))

	// connector failure
	conn.EXPECT().Get(suite.ctx, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("get failed"))
	err = client.Get(suite.ctx, e)
	suite.EqualError(err, "get failed")

	err = client.Get(suite.ctx, &InvalidObject1{})
	suite.Error(err)
}

// TestClientGetAll tests reading a partition, or the whole table for an
// object without partition key
func (suite *ORMTestSuite) TestClientGetAll() {
	client, conn := suite.newClient()

	conn.EXPECT().GetAll(suite.ctx, gomock.Any(), []base.Column{}).
		Return([]map[string]interface{}{testMapRow, testMapRow}, nil)

	objs, err := client.GetAll(suite.ctx, &ValidObject{})
	suite.NoError(err)
	suite.Len(objs, 2)
	for _, o := range objs {
		suite.Equal(testValidObject, o.(*ValidObject))
	}

	conn.EXPECT().GetAll(suite.ctx, gomock.Any(),
		[]base.Column{{Name: "id", Value: uint64(1)}}).
		Return(nil, errors.New("getAll failed"))
	_, err = client.GetAll(suite.ctx, &ValidObject{ID: 1})
	suite.EqualError(err, "getAll failed")
}

// TestClientGetAllIter tests iterating over objects
func (suite *ORMTestSuite) TestClientGetAllIter() {
	client, conn := suite.newClient()
	iter := ormmocks.NewMockIterator(suite.ctrl)

	conn.EXPECT().GetAllIter(suite.ctx, gomock.Any(), gomock.Any()).
		Return(iter, nil)
	gomock.InOrder(
		iter.EXPECT().Next().Return(testRow, nil),
		iter.EXPECT().Next().Return(nil, nil),
	)
	iter.EXPECT().Close()

	it, err := client.GetAllIter(suite.ctx, &ValidObject{})
	suite.NoError(err)
	defer it.Close()

	o, err := it.Next()
	suite.NoError(err)
	suite.Equal(testValidObject, o)

	o, err = it.Next()
	suite.NoError(err)
	suite.Nil(o)
}

// TestClientFetch tests reading objects with a query fragment
func (suite *ORMTestSuite) TestClientFetch() {
	client, conn := suite.newClient()

	conn.EXPECT().Query(suite.ctx, gomock.Any(), _byID, uint64(1)).
		Return([]map[string]interface{}{testMapRow}, nil)

	objs, err := client.Fetch(suite.ctx, &ValidObject{}, _byID, uint64(1))
	suite.NoError(err)
	suite.Len(objs, 1)
	suite.Equal(testValidObject, objs[0])

	conn.EXPECT().Query(suite.ctx, gomock.Any(), "").
		Return(nil, errors.New("query failed"))
	_, err = client.Fetch(suite.ctx, &ValidObject{}, "")
	suite.EqualError(err, "query failed")
}

// TestClientSingle tests that Single requires exactly one row
func (suite *ORMTestSuite) TestClientSingle() {
	client, conn := suite.newClient()

	conn.EXPECT().Query(suite.ctx, gomock.Any(), _byID, uint64(1)).
		Return([]map[string]interface{}{testMapRow}, nil)
	e := &ValidObject{}
	suite.NoError(client.Single(suite.ctx, e, _byID, uint64(1)))
	suite.Equal(testValidObject, e)

	conn.EXPECT().Query(suite.ctx, gomock.Any(), _byID, uint64(2)).
		Return(nil, nil)
	err := client.Single(suite.ctx, &ValidObject{}, _byID, uint64(2))
	suite.True(yarpcerrors.IsNotFound(err))

	conn.EXPECT().Query(suite.ctx, gomock.Any(), "").
		Return([]map[string]interface{}{testMapRow, testMapRow}, nil)
	err = client.Single(suite.ctx, &ValidObject{}, "")
	suite.True(yarpcerrors.IsFailedPrecondition(err))
}

// TestClientSingleOrDefault tests that a missing row is not an error
func (suite *ORMTestSuite) TestClientSingleOrDefault() {
	client, conn := suite.newClient()

	conn.EXPECT().Query(suite.ctx, gomock.Any(), _byID, uint64(2)).
		Return([]map[string]interface{}{}, nil)
	e := &ValidObject{}
	found, err := client.SingleOrDefault(suite.ctx, e, _byID, uint64(2))
	suite.NoError(err)
	suite.False(found)
	suite.Equal(&ValidObject{}, e)

	conn.EXPECT().Query(suite.ctx, gomock.Any(), _byID, uint64(1)).
		Return([]map[string]interface{}{testMapRow}, nil)
	found, err = client.SingleOrDefault(suite.ctx, e, _byID, uint64(1))
	suite.NoError(err)
	suite.True(found)
	suite.Equal(testValidObject, e)
}

// TestClientFirst tests First and FirstOrDefault
func (suite *ORMTestSuite) TestClientFirst() {
	client, conn := suite.newClient()
	selectAll := "SELECT * FROM valid_object"

	other := map[string]interface{}{"id": uint64(2), "name": "b", "data": "c"}
	conn.EXPECT().Query(suite.ctx, gomock.Any(), selectAll).
		Return([]map[string]interface{}{testMapRow, other}, nil).Times(2)

	e := &ValidObject{}
	suite.NoError(client.First(suite.ctx, e, selectAll))
	suite.Equal(testValidObject, e)

	e = &ValidObject{}
	found, err := client.FirstOrDefault(suite.ctx, e, selectAll)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(testValidObject, e)

	conn.EXPECT().Query(suite.ctx, gomock.Any(), selectAll).
		Return(nil, nil).Times(2)
	err = client.First(suite.ctx, &ValidObject{}, selectAll)
	suite.True(yarpcerrors.IsNotFound(err))
	found, err = client.FirstOrDefault(suite.ctx, &ValidObject{}, selectAll)
	suite.NoError(err)
	suite.False(found)
}

// TestClientUpdate tests that only non key columns are written
func (suite *ORMTestSuite) TestClientUpdate() {
	client, conn := suite.newClient()

	conn.EXPECT().Update(suite.ctx, gomock.Any(),
		[]base.Column{{Name: "data", Value: "testdata"}},
		keyRow).Return(nil)
	suite.NoError(client.Update(suite.ctx, testValidObject))

	// only key fields selected, nothing to update
	err := client.Update(suite.ctx, testValidObject, "ID")
	suite.True(yarpcerrors.IsInvalidArgument(err))
}

// TestClientUpdateWhere tests updates through a query fragment
func (suite *ORMTestSuite) TestClientUpdateWhere() {
	client, conn := suite.newClient()
	stmt := "SET data=? WHERE id=? AND name=?"

	conn.EXPECT().UpdateWhere(suite.ctx, gomock.Any(), stmt, "x", uint64(1), "test").
		Return(nil)
	suite.NoError(client.UpdateWhere(
		suite.ctx, &ValidObject{}, stmt, "x", uint64(1), "test"))
}

// TestClientDelete tests deleting by primary key and by fragment
func (suite *ORMTestSuite) TestClientDelete() {
	client, conn := suite.newClient()

	conn.EXPECT().Delete(suite.ctx, gomock.Any(), keyRow).Return(nil)
	suite.NoError(client.Delete(suite.ctx, testValidObject))

	conn.EXPECT().DeleteWhere(suite.ctx, gomock.Any(), _byID, uint64(1)).
		Return(errors.New("delete failed"))
	err := client.DeleteWhere(suite.ctx, &ValidObject{}, _byID, uint64(1))
	suite.EqualError(err, "delete failed")

	err = client.Delete(suite.ctx, &InvalidObject1{})
	suite.Error(err)
}

// TestClientExecuteBatch tests resolving batched writes into statements
func (suite *ORMTestSuite) TestClientExecuteBatch() {
	client, conn := suite.newClient()

	// empty batch does not reach the connector
	suite.NoError(client.ExecuteBatch(suite.ctx, orm.NewBatch()))
	suite.NoError(client.ExecuteBatch(suite.ctx, nil))

	b := orm.NewBatch()
	b.Insert(testValidObject)
	b.Update(testValidObject)
	b.Delete(testValidObject)
	suite.Equal(3, b.Len())

	conn.EXPECT().ExecuteBatch(suite.ctx, gomock.Any()).
		Do(func(_ context.Context, stmts []*orm.BatchStatement) {
			suite.Len(stmts, 3)

			suite.Equal(orm.BatchInsert, stmts[0].Op)
			suite.ensureRowsEqual(stmts[0].Values, testRow)
			suite.Nil(stmts[0].Keys)

			suite.Equal(orm.BatchUpdate, stmts[1].Op)
			suite.Equal(
				[]base.Column{{Name: "data", Value: "testdata"}},
				stmts[1].Values)
			suite.Equal(keyRow, stmts[1].Keys)

			suite.Equal(orm.BatchDelete, stmts[2].Op)
			suite.Nil(stmts[2].Values)
			suite.Equal(keyRow, stmts[2].Keys)

			for _, s := range stmts {
				suite.Equal("valid_object", s.Definition.Name)
			}
		}).Return(nil)
	suite.NoError(client.ExecuteBatch(suite.ctx, b))

	// unknown objects fail the whole batch before reaching the connector
	b = orm.NewBatch()
	b.Insert(testValidObject)
	b.Insert(&InvalidObject1{})
	suite.Error(client.ExecuteBatch(suite.ctx, b))

	// update without non key columns
	b = orm.NewBatch()
	b.Update(testValidObject, "ID")
	err := client.ExecuteBatch(suite.ctx, b)
	suite.True(yarpcerrors.IsInvalidArgument(err))
}

// TestClientClose tests that closing the client closes the connector
func (suite *ORMTestSuite) TestClientClose() {
	client, conn := suite.newClient()
	conn.EXPECT().Close()
	client.Close()
}

// TestBatchOpString tests the names used in logs and metrics
func (suite *ORMTestSuite) TestBatchOpString() {
	suite.Equal("insert", orm.BatchInsert.String())
	suite.Equal("update", orm.BatchUpdate.String())
	suite.Equal("delete", orm.BatchDelete.String())
	suite.Equal("unknown", orm.BatchOp(0).String())
}
