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

package base

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetColumnsToReadIsSorted(t *testing.T) {
	d := &Definition{
		Name: "users",
		ColumnToType: map[string]reflect.Type{
			"name": reflect.TypeOf(""),
			"id":   reflect.TypeOf(""),
			"age":  reflect.TypeOf(1),
		},
	}
	assert.Equal(t, []string{"age", "id", "name"}, d.GetColumnsToRead())
}

func TestPrimaryKeyIsKey(t *testing.T) {
	k := &PrimaryKey{
		PartitionKeys:  []string{"id"},
		ClusteringKeys: []*ClusteringKey{{Name: "ck", Descending: true}},
	}
	assert.True(t, k.IsKey("id"))
	assert.True(t, k.IsKey("ck"))
	assert.False(t, k.IsKey("name"))
}
