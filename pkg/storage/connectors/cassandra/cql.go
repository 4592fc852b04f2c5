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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

const (
	// table is used to substitute Table in template with actual table name
	table = "Table"
	// values is used to substitute Values in template with column values
	values = "Values"
	// columns is used to substitute Columns in template with column names
	columns = "Columns"
	// conditions is used to indicate <,>,= conditions in the query
	conditions = "Conditions"
	// updates is used to substitute the SET clause of an update query
	updates = "Updates"
	// limit is used to limit the number of rows returned by a select query
	limit = "Limit"
	// ifNotExist is used to make an insert a lightweight transaction
	ifNotExist = "IfNotExist"

	// insertTemplate is used to construct an insert query
	insertTemplate = `INSERT INTO {{.Table}} ({{ColumnFunc .Columns ", "}})` +
		` VALUES ({{QuestionMark .Values ", "}}){{if .IfNotExist}} IF NOT EXISTS{{end}};`

	// selectTemplate is used to construct an select query
	selectTemplate = `SELECT {{ColumnFunc .Columns ", "}} FROM {{.Table}}` +
		`{{WhereFunc .Conditions}}{{ConditionsFunc .Conditions " AND "}}` +
		`{{if .Limit}} LIMIT {{.Limit}}{{end}};`

	// updateTemplate is used to construct an update query
	updateTemplate = `UPDATE {{.Table}} SET {{ConditionsFunc .Updates ", "}}` +
		`{{WhereFunc .Conditions}}{{ConditionsFunc .Conditions " AND "}};`

	// deleteTemplate is used to construct a delete query
	deleteTemplate = `DELETE FROM {{.Table}}` +
		`{{WhereFunc .Conditions}}{{ConditionsFunc .Conditions " AND "}};`
)

var (
	// function map for populating CQL templates
	funcMap = template.FuncMap{
		"ColumnFunc":     strings.Join,
		"QuestionMark":   questionMarkFunc,
		"ConditionsFunc": conditionsFunc,
		"WhereFunc":      whereFunc,
	}

	// insert CQL query template implementation
	insertTmpl = template.Must(
		template.New("insert").Funcs(funcMap).Parse(insertTemplate))
	// select CQL query template implementation
	selectTmpl = template.Must(
		template.New("select").Funcs(funcMap).Parse(selectTemplate))
	// update CQL query template implementation
	updateTmpl = template.Must(
		template.New("update").Funcs(funcMap).Parse(updateTemplate))
	// delete CQL query template implementation
	deleteTmpl = template.Must(
		template.New("delete").Funcs(funcMap).Parse(deleteTemplate))
)

// questionMarkFunc adds ? to the insert query in place of values to be inserted
func questionMarkFunc(qs []interface{}, sep string) string {
	questions := make([]string, len(qs))
	for i := range qs {
		questions[i] = "?"
	}
	return strings.Join(questions, sep)
}

// conditionsFunc adds a =? condition to the query
func conditionsFunc(conds []string, sep string) string {
	cstrs := make([]string, len(conds))
	for i, cond := range conds {
		cstrs[i] = fmt.Sprintf("%s=?", cond)
	}
	return strings.Join(cstrs, sep)
}

// whereFunc adds where clause to the query
func whereFunc(conds []string) string {
	if len(conds) > 0 {
		return " WHERE "
	}
	return ""
}

// Option to compose a cql statement
type Option map[string]interface{}

// OptFunc is the interface to set option
type OptFunc func(Option)

// Table sets the `table` to the cql statement
func Table(v string) OptFunc {
	return func(opt Option) {
		opt[table] = strconv.Quote(v)
	}
}

// Columns sets the `columns` clause to the cql statement
func Columns(v []string) OptFunc {
	return func(opt Option) {
		quoCs := make([]string, len(v))
		for i, c := range v {
			quoCs[i] = strconv.Quote(c)
		}
		opt[columns] = quoCs
	}
}

// Values sets the `values` clause to the cql statement
func Values(v []interface{}) OptFunc {
	return func(opt Option) {
		opt[values] = v
	}
}

// Conditions set the `where` clause to the cql statement
func Conditions(v []string) OptFunc {
	return func(opt Option) {
		opt[conditions] = v
	}
}

// Updates sets the `set` clause to the cql statement
func Updates(v []string) OptFunc {
	return func(opt Option) {
		opt[updates] = v
	}
}

// Limit sets the `limit` clause to the cql statement. Zero means no limit.
func Limit(v int) OptFunc {
	return func(opt Option) {
		opt[limit] = v
	}
}

// IfNotExist turns the insert into a lightweight transaction
func IfNotExist(v bool) OptFunc {
	return func(opt Option) {
		opt[ifNotExist] = v
	}
}

func execute(tmpl *template.Template, opts []OptFunc) (string, error) {
	var bb bytes.Buffer
	option := Option{
		conditions: []string(nil),
	}
	for _, opt := range opts {
		opt(option)
	}
	err := tmpl.Execute(&bb, option)
	return bb.String(), err
}

// InsertStmt creates insert statement
func InsertStmt(opts ...OptFunc) (string, error) {
	return execute(insertTmpl, opts)
}

// SelectStmt creates select statement
func SelectStmt(opts ...OptFunc) (string, error) {
	return execute(selectTmpl, opts)
}

// UpdateStmt creates update statement
func UpdateStmt(opts ...OptFunc) (string, error) {
	return execute(updateTmpl, opts)
}

// DeleteStmt creates delete statement
func DeleteStmt(opts ...OptFunc) (string, error) {
	return execute(deleteTmpl, opts)
}

// hasKeyword reports whether the statement starts with the CQL keyword
func hasKeyword(stmt, keyword string) bool {
	fields := strings.Fields(stmt)
	return len(fields) > 0 && strings.EqualFold(fields[0], keyword)
}

// SelectFromFragment completes a partial select statement. An empty
// fragment selects the whole table, a fragment starting with FROM gets the
// column list prepended, any other fragment (WHERE, LIMIT...) gets the
// SELECT ... FROM <table> prefix. Full SELECT statements are kept as is.
func SelectFromFragment(tableName string, cols []string, fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if hasKeyword(fragment, "SELECT") {
		return fragment
	}

	quoCs := make([]string, len(cols))
	for i, c := range cols {
		quoCs[i] = strconv.Quote(c)
	}
	selectClause := "SELECT " + strings.Join(quoCs, ", ")

	if hasKeyword(fragment, "FROM") {
		return selectClause + " " + fragment
	}
	stmt := selectClause + " FROM " + strconv.Quote(tableName)
	if fragment != "" {
		stmt += " " + fragment
	}
	return stmt
}

// UpdateFromFragment completes a "SET ... WHERE ..." fragment into an
// update of the table. Full UPDATE statements are kept as is.
func UpdateFromFragment(tableName string, fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if hasKeyword(fragment, "UPDATE") {
		return fragment
	}
	return "UPDATE " + strconv.Quote(tableName) + " " + fragment
}

// DeleteFromFragment completes a "WHERE ..." or "FROM ..." fragment into a
// delete on the table. Full DELETE statements are kept as is.
func DeleteFromFragment(tableName string, fragment string) string {
	fragment = strings.TrimSpace(fragment)
	switch {
	case hasKeyword(fragment, "DELETE"):
		return fragment
	case hasKeyword(fragment, "FROM"):
		return "DELETE " + fragment
	default:
		return "DELETE FROM " + strconv.Quote(tableName) + " " + fragment
	}
}
