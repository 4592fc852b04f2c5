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
	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/orm"

	"github.com/gocql/gocql"
)

// ValidObject is a representation of the orm annotations
type ValidObject struct {
	base.Object `cassandra:"name=valid_object, primaryKey=((id), name)"`
	ID          uint64 `column:"name=id"`
	Name        string `column:"name=name"`
	Data        string `column:"name=data"`
}

// UUIDObject has a uuid partition key and a descending clustering key
type UUIDObject struct {
	base.Object `cassandra:"name=uuid_object, primaryKey=((id), ck desc)"`
	ID          gocql.UUID `column:"name=id"`
	CK          int64      `column:"name=ck"`
	Age         int        `column:"name=age"`
}

// InvalidObject1 has primary key as empty
type InvalidObject1 struct {
	base.Object `cassandra:"name=valid_object, primaryKey=()"`
	ID          uint64 `column:"name=id"`
	Name        string `column:"name=name"`
}

// InvalidObject2 has invalid orm tag
type InvalidObject2 struct {
	base.Object `randomstring:"name=valid_object, primaryKey=((id), name)"`
	ID          uint64 `column:"name=id"`
	Name        string `column:"name=name"`
}

// InvalidObject3 has invalid orm tag on ID field
type InvalidObject3 struct {
	base.Object `cassandra:"name=valid_object, primaryKey=((id), name)"`
	ID          uint64 `randomstring:"name=id"`
	Name        string `column:"name=name"`
}

// InvalidObject4 has a primary key column without a field
type InvalidObject4 struct {
	base.Object `cassandra:"name=valid_object, primaryKey=((id), name)"`
	ID          uint64 `column:"name=id"`
}

// InvalidObject5 maps two fields to the same column
type InvalidObject5 struct {
	base.Object `cassandra:"name=valid_object, primaryKey=((id))"`
	ID          uint64 `column:"name=id"`
	Other       uint64 `column:"name=id"`
}

// InvalidObject6 does not embed base.Object
type InvalidObject6 struct {
	ID uint64 `column:"name=id"`
}

// TestTableFromObject tests creating orm.Table from given base object
// This is meant to test that only entities annotated in a certain format will
// be successfully converted to orm tables
func (suite *ORMTestSuite) TestTableFromObject() {
	table, err := orm.TableFromObject(&ValidObject{})
	suite.NoError(err)
	suite.Equal("valid_object", table.Name)
	suite.Equal([]string{"id"}, table.Key.PartitionKeys)
	suite.Len(table.Key.ClusteringKeys, 1)
	suite.Equal("name", table.Key.ClusteringKeys[0].Name)
	suite.False(table.Key.ClusteringKeys[0].Descending)
	suite.Equal("Data", table.ColToField["data"])
	suite.Equal("data", table.FieldToCol["Data"])

	tt := []base.Object{
		&InvalidObject1{},
		&InvalidObject2{},
		&InvalidObject3{},
		&InvalidObject4{},
		&InvalidObject5{},
		&InvalidObject6{},
		ValidObject{},
		nil,
	}
	for _, t := range tt {
		_, err := orm.TableFromObject(t)
		suite.Error(err)
	}
}

// TestTableFromObjectClusteringOrder tests parsing clustering order
func (suite *ORMTestSuite) TestTableFromObjectClusteringOrder() {
	table, err := orm.TableFromObject(&UUIDObject{})
	suite.NoError(err)
	suite.Equal("uuid_object", table.Name)
	suite.Len(table.Key.ClusteringKeys, 1)
	suite.Equal("ck", table.Key.ClusteringKeys[0].Name)
	suite.True(table.Key.ClusteringKeys[0].Descending)
}

// TestGetRowFromObject tests building a row (list of base.Column) from base
// object
func (suite *ORMTestSuite) TestGetRowFromObject() {
	e := &ValidObject{
		ID:   uint64(1),
		Name: "test",
		Data: "testdata",
	}
	table, err := orm.TableFromObject(e)
	suite.NoError(err)

	row := table.GetRowFromObject(e)
	suite.ensureRowsEqual(row, testRow)

	fieldsToUpdate := []string{"ID", "Name"}
	selectedFieldsRow := table.GetRowFromObject(e, fieldsToUpdate...)
	suite.ensureRowsEqual(selectedFieldsRow, keyRow)
}

// TestGetNonKeyRowFromObject tests that primary key columns are never part
// of the row used to update an object
func (suite *ORMTestSuite) TestGetNonKeyRowFromObject() {
	table, err := orm.TableFromObject(testValidObject)
	suite.NoError(err)

	row := table.GetNonKeyRowFromObject(testValidObject)
	suite.Equal([]base.Column{{Name: "data", Value: "testdata"}}, row)

	row = table.GetNonKeyRowFromObject(testValidObject, "Name")
	suite.Empty(row)
}

// TestGetKeyRowFromObject tests getting primary key row (list of primary key
// base.Column) from base object
func (suite *ORMTestSuite) TestGetKeyRowFromObject() {
	e := &ValidObject{
		ID:   uint64(1),
		Name: "test",
		Data: "junk",
	}
	table, err := orm.TableFromObject(e)
	suite.NoError(err)

	keyRow := table.GetKeyRowFromObject(e)
	suite.Equal(e.ID, keyRow[0].Value)
	suite.Equal(e.Name, keyRow[1].Value)
	suite.Equal(len(keyRow), 2)
}

// TestGetPartitionKeyRowFromObject tests getting partition key row
// (list of primary key base.Column) from base object
func (suite *ORMTestSuite) TestGetPartitionKeyRowFromObject() {
	e := &ValidObject{
		ID:   uint64(1),
		Name: "test",
		Data: "junk",
	}
	table, err := orm.TableFromObject(e)
	suite.NoError(err)

	keyRow := table.GetPartitionKeyRowFromObject(e)
	suite.Equal(e.ID, keyRow[0].Value)
	suite.Equal(len(keyRow), 1)

	// a zero value partition key selects the whole table
	keyRow = table.GetPartitionKeyRowFromObject(&ValidObject{})
	suite.Len(keyRow, 0)
}

// TestSetObjectFromRow tests converting driver values into object fields
func (suite *ORMTestSuite) TestSetObjectFromRow() {
	table, err := orm.TableFromObject(&UUIDObject{})
	suite.NoError(err)

	age := 42
	e := &UUIDObject{}
	table.SetObjectFromRow(e, map[string]interface{}{
		"id":      testUUID,
		"ck":      int64(7),
		"age":     &age,
		"unknown": "ignored",
	})
	suite.Equal(testUUID, e.ID)
	suite.Equal(int64(7), e.CK)
	suite.Equal(42, e.Age)

	// nulls and mismatched types leave the field untouched
	table.SetObjectFromRow(e, map[string]interface{}{
		"age": nil,
		"ck":  "not a number",
	})
	suite.Equal(42, e.Age)
	suite.Equal(int64(7), e.CK)

	// numeric values are converted to the field type
	table.SetObjectFromRow(e, map[string]interface{}{"ck": 9})
	suite.Equal(int64(9), e.CK)
}

// TestSetObjectFromColumns tests setting an object from a column list
func (suite *ORMTestSuite) TestSetObjectFromColumns() {
	table, err := orm.TableFromObject(&ValidObject{})
	suite.NoError(err)

	e := &ValidObject{}
	table.SetObjectFromColumns(e, testRow)
	suite.Equal(testValidObject, e)
}

// TestNewObject tests that a fresh object of the mapped type is returned
func (suite *ORMTestSuite) TestNewObject() {
	table, err := orm.TableFromObject(&ValidObject{})
	suite.NoError(err)

	o, ok := table.NewObject().(*ValidObject)
	suite.True(ok)
	suite.Equal(&ValidObject{}, o)
}

// TestBuildObjectIndex tests indexing objects by their type
func (suite *ORMTestSuite) TestBuildObjectIndex() {
	index, err := orm.BuildObjectIndex(
		[]base.Object{&ValidObject{}, &UUIDObject{}})
	suite.NoError(err)
	suite.Len(index, 2)

	_, err = orm.BuildObjectIndex(
		[]base.Object{&ValidObject{}, &InvalidObject1{}})
	suite.Error(err)
}
