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

package storage

import (
	"github.com/uber-go/tally"
)

// OrmUserMetrics tracks counters for the users table accessed through ORM
// layer
type OrmUserMetrics struct {
	UserCreate     tally.Counter
	UserCreateFail tally.Counter

	UserCreateBatch     tally.Counter
	UserCreateBatchFail tally.Counter

	UserGet      tally.Counter
	UserGetFail  tally.Counter
	UserNotFound tally.Counter

	UserGetAll         tally.Counter
	UserGetAllFail     tally.Counter
	UserGetAllDuration tally.Timer

	UserQuery     tally.Counter
	UserQueryFail tally.Counter

	UserUpdate     tally.Counter
	UserUpdateFail tally.Counter

	UserDelete     tally.Counter
	UserDeleteFail tally.Counter

	UserDeleteBatch     tally.Counter
	UserDeleteBatchFail tally.Counter
}

// Metrics is a struct for tracking all the storage level counters
type Metrics struct {
	OrmUserMetrics *OrmUserMetrics
}

// NewMetrics returns a new Metrics struct, with all metrics initialized
// and rooted at the given tally.Scope
func NewMetrics(scope tally.Scope) *Metrics {
	ormScope := scope.SubScope("orm")

	userScope := ormScope.SubScope("user")
	userSuccessScope := userScope.Tagged(
		map[string]string{"result": "success"})
	userFailScope := userScope.Tagged(
		map[string]string{"result": "fail"})

	ormUserMetrics := &OrmUserMetrics{
		UserCreate:     userSuccessScope.Counter("create"),
		UserCreateFail: userFailScope.Counter("create"),

		UserCreateBatch:     userSuccessScope.Counter("create_batch"),
		UserCreateBatchFail: userFailScope.Counter("create_batch"),

		UserGet:      userSuccessScope.Counter("get"),
		UserGetFail:  userFailScope.Counter("get"),
		UserNotFound: userFailScope.Counter("not_found"),

		UserGetAll:         userSuccessScope.Counter("get_all"),
		UserGetAllFail:     userFailScope.Counter("get_all"),
		UserGetAllDuration: userSuccessScope.Timer("get_all_duration"),

		UserQuery:     userSuccessScope.Counter("query"),
		UserQueryFail: userFailScope.Counter("query"),

		UserUpdate:     userSuccessScope.Counter("update"),
		UserUpdateFail: userFailScope.Counter("update"),

		UserDelete:     userSuccessScope.Counter("delete"),
		UserDeleteFail: userFailScope.Counter("delete"),

		UserDeleteBatch:     userSuccessScope.Counter("delete_batch"),
		UserDeleteBatchFail: userFailScope.Counter("delete_batch"),
	}

	return &Metrics{
		OrmUserMetrics: ormUserMetrics,
	}
}
