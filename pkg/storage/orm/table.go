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
	"reflect"
	"regexp"
	"strings"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// connectorTag is the struct tag on the embedded base.Object field that
	// carries the table name and primary key of the storage object.
	connectorTag = "cassandra"
	// columnTag is the struct tag on every mapped field.
	columnTag = "column"

	_descending = "desc"
	_ascending  = "asc"
)

var (
	// name=users, primaryKey=((id), ck)
	objectTagRegex = regexp.MustCompile(
		`^\s*name\s*=\s*(\w+)\s*,\s*primaryKey\s*=\s*\((.+)\)\s*$`)
	// name=id
	columnTagRegex = regexp.MustCompile(`^\s*name\s*=\s*(\w+)\s*$`)

	baseObjectType = reflect.TypeOf((*base.Object)(nil)).Elem()
)

// Table is the ORM representation of a storage object. It carries the schema
// Definition used by connectors together with the mapping between object
// fields and DB columns.
type Table struct {
	base.Definition

	// columns in the order their fields are declared on the object
	columns []string
	// ColToField maps a column name to the name of the object field
	ColToField map[string]string
	// FieldToCol maps an object field name to its column name
	FieldToCol map[string]string

	objectType reflect.Type
}

// TableFromObject creates a Table from the annotations of the provided
// storage object. Only objects annotated with the cassandra primary key DSL
// and column tags on every field are accepted.
func TableFromObject(e base.Object) (*Table, error) {
	if e == nil {
		return nil, errors.New("nil storage object")
	}
	typ := reflect.TypeOf(e)
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf(
			"storage object must be a pointer to struct, got %s", typ)
	}
	typ = typ.Elem()

	t := &Table{
		Definition: base.Definition{
			ColumnToType: make(map[string]reflect.Type),
		},
		ColToField: make(map[string]string),
		FieldToCol: make(map[string]string),
		objectType: typ,
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if field.Anonymous && field.Type == baseObjectType {
			name, key, err := parseObjectTag(field.Tag.Get(connectorTag))
			if err != nil {
				return nil, errors.Wrapf(err, "object %s", typ.Name())
			}
			t.Name = name
			t.Key = key
			continue
		}

		column, err := parseColumnTag(field.Tag.Get(columnTag))
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", typ.Name(), field.Name)
		}
		if _, ok := t.ColumnToType[column]; ok {
			return nil, errors.Errorf(
				"duplicate column %q on object %s", column, typ.Name())
		}
		t.columns = append(t.columns, column)
		t.ColumnToType[column] = field.Type
		t.ColToField[column] = field.Name
		t.FieldToCol[field.Name] = column
	}

	if t.Key == nil {
		return nil, errors.Errorf(
			"object %s does not embed an annotated base.Object", typ.Name())
	}

	for _, k := range t.keyColumns() {
		if _, ok := t.ColumnToType[k]; !ok {
			return nil, errors.Errorf(
				"primary key column %q has no field on object %s",
				k, typ.Name())
		}
	}
	return t, nil
}

// parseObjectTag parses `name=<table>, primaryKey=((pk1, pk2), ck1, ck2 desc)`
func parseObjectTag(tag string) (string, *base.PrimaryKey, error) {
	if tag == "" {
		return "", nil, errors.Errorf("missing %q tag", connectorTag)
	}
	m := objectTagRegex.FindStringSubmatch(tag)
	if m == nil {
		return "", nil, errors.Errorf("invalid %s tag %q", connectorTag, tag)
	}
	key, err := parsePrimaryKey(m[2])
	if err != nil {
		return "", nil, err
	}
	return m[1], key, nil
}

// parsePrimaryKey parses the inside of the primaryKey=( ... ) clause.
func parsePrimaryKey(s string) (*base.PrimaryKey, error) {
	s = strings.TrimSpace(s)
	key := &base.PrimaryKey{}

	var rest string
	if strings.HasPrefix(s, "(") {
		end := strings.Index(s, ")")
		if end < 0 {
			return nil, errors.Errorf("unbalanced partition key in %q", s)
		}
		key.PartitionKeys = splitNames(s[1:end])
		rest = s[end+1:]
	} else {
		names := strings.SplitN(s, ",", 2)
		key.PartitionKeys = splitNames(names[0])
		if len(names) > 1 {
			rest = names[1]
		}
	}
	if len(key.PartitionKeys) == 0 {
		return nil, errors.Errorf("empty partition key in %q", s)
	}

	for _, part := range splitNames(rest) {
		fields := strings.Fields(part)
		ck := &base.ClusteringKey{Name: fields[0]}
		if len(fields) == 2 {
			switch strings.ToLower(fields[1]) {
			case _descending:
				ck.Descending = true
			case _ascending:
			default:
				return nil, errors.Errorf("invalid clustering order %q", part)
			}
		} else if len(fields) > 2 {
			return nil, errors.Errorf("invalid clustering key %q", part)
		}
		key.ClusteringKeys = append(key.ClusteringKeys, ck)
	}
	return key, nil
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func parseColumnTag(tag string) (string, error) {
	if tag == "" {
		return "", errors.Errorf("missing %q tag", columnTag)
	}
	m := columnTagRegex.FindStringSubmatch(tag)
	if m == nil {
		return "", errors.Errorf("invalid %s tag %q", columnTag, tag)
	}
	return m[1], nil
}

// keyColumns returns partition keys followed by clustering keys.
func (t *Table) keyColumns() []string {
	keys := append([]string{}, t.Key.PartitionKeys...)
	for _, ck := range t.Key.ClusteringKeys {
		keys = append(keys, ck.Name)
	}
	return keys
}

// NewObject returns a fresh zero value instance of the mapped object type.
func (t *Table) NewObject() base.Object {
	return reflect.New(t.objectType).Interface()
}

func (t *Table) fieldValue(e base.Object, column string) reflect.Value {
	return reflect.ValueOf(e).Elem().FieldByName(t.ColToField[column])
}

// GetRowFromObject is a helper for generating a row from the storage object.
// selectedFields restricts the row to the given object field names.
func (t *Table) GetRowFromObject(
	e base.Object, selectedFields ...string) []base.Column {
	selected := make(map[string]bool, len(selectedFields))
	for _, f := range selectedFields {
		selected[f] = true
	}

	row := make([]base.Column, 0, len(t.columns))
	for _, column := range t.columns {
		if len(selected) > 0 && !selected[t.ColToField[column]] {
			continue
		}
		row = append(row, base.Column{
			Name:  column,
			Value: t.fieldValue(e, column).Interface(),
		})
	}
	return row
}

// GetNonKeyRowFromObject returns the row of all non primary key columns,
// optionally restricted to selectedFields. Used to build the SET clause of an
// update, which cannot contain primary key columns.
func (t *Table) GetNonKeyRowFromObject(
	e base.Object, selectedFields ...string) []base.Column {
	var row []base.Column
	for _, c := range t.GetRowFromObject(e, selectedFields...) {
		if !t.Key.IsKey(c.Name) {
			row = append(row, c)
		}
	}
	return row
}

// GetKeyRowFromObject is a helper for generating a row of primary key
// columns from the storage object.
func (t *Table) GetKeyRowFromObject(e base.Object) []base.Column {
	keys := t.keyColumns()
	row := make([]base.Column, 0, len(keys))
	for _, k := range keys {
		row = append(row, base.Column{
			Name:  k,
			Value: t.fieldValue(e, k).Interface(),
		})
	}
	return row
}

// GetPartitionKeyRowFromObject returns the row of partition key columns.
// Zero valued partition keys are left out so that an empty object selects
// the whole table.
func (t *Table) GetPartitionKeyRowFromObject(e base.Object) []base.Column {
	row := make([]base.Column, 0, len(t.Key.PartitionKeys))
	for _, pk := range t.Key.PartitionKeys {
		v := t.fieldValue(e, pk)
		if v.IsZero() {
			continue
		}
		row = append(row, base.Column{Name: pk, Value: v.Interface()})
	}
	return row
}

// SetObjectFromRow sets the fields of the storage object from a row read
// from the DB. Columns that are not mapped or are null are skipped.
func (t *Table) SetObjectFromRow(e base.Object, row map[string]interface{}) {
	for column, value := range row {
		if _, ok := t.ColToField[column]; !ok {
			continue
		}
		if err := setField(t.fieldValue(e, column), value); err != nil {
			log.WithFields(log.Fields{
				"table":  t.Name,
				"column": column,
			}).WithError(err).Warn("unable to set object field from row")
		}
	}
}

// SetObjectFromColumns is SetObjectFromRow for rows read as column lists.
func (t *Table) SetObjectFromColumns(e base.Object, row []base.Column) {
	m := make(map[string]interface{}, len(row))
	for _, c := range row {
		m[c.Name] = c.Value
	}
	t.SetObjectFromRow(e, m)
}

func setField(field reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case isNumeric(v.Kind()) && isNumeric(field.Kind()):
		field.Set(v.Convert(field.Type()))
	case v.Kind() == field.Kind() && v.Type().ConvertibleTo(field.Type()):
		field.Set(v.Convert(field.Type()))
	default:
		return errors.Errorf("cannot assign %s to %s", v.Type(), field.Type())
	}
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// BuildObjectIndex builds an index of base objects to their ORM tables.
func BuildObjectIndex(objects []base.Object) (map[reflect.Type]*Table, error) {
	index := make(map[reflect.Type]*Table, len(objects))
	for _, o := range objects {
		t, err := TableFromObject(o)
		if err != nil {
			return nil, err
		}
		index[reflect.TypeOf(o).Elem()] = t
	}
	return index, nil
}
