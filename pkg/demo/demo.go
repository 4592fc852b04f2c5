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

package demo

import (
	"context"
	"fmt"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	_byID          = "WHERE id = ?"
	_fromUsersByID = "FROM users WHERE id = ?"
	_selectUsers   = "SELECT * FROM users"

	_batchSize = 10
)

// Runner walks through the insert, query, update and delete operations of
// the object mapper on the users table.
type Runner struct {
	users objects.UserOps
	// user0 correlates the operations of the different steps
	user0 gocql.UUID
}

// NewRunner creates a Runner with a freshly generated user0 id
func NewRunner(users objects.UserOps) (*Runner, error) {
	u, err := objects.NewUser("", 0)
	if err != nil {
		return nil, err
	}
	return &Runner{users: users, user0: u.ID}, nil
}

// User0 returns the id shared by the steps of the run
func (r *Runner) User0() gocql.UUID {
	return r.user0
}

// Run executes the operation groups in order and stops at the first error
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"insert", r.InsertOperations},
		{"query", r.QueryOperations},
		{"update", r.UpdateOperations},
		{"delete", r.DeleteOperations},
	}
	for _, step := range steps {
		log.WithField("step", step.name).Info("running operations")
		if err := step.run(ctx); err != nil {
			return errors.Wrapf(err, "%s operations failed", step.name)
		}
	}
	return nil
}

// InsertOperations inserts user0 on its own, then ten more users as a batch
func (r *Runner) InsertOperations(ctx context.Context) error {
	if err := r.users.Create(ctx, &objects.User{
		ID:   r.user0,
		Name: "User 0",
		Age:  0,
	}); err != nil {
		return err
	}

	batch := make([]*objects.User, 0, _batchSize)
	for i := 1; i <= _batchSize; i++ {
		u, err := objects.NewUser(fmt.Sprintf("User %d", i), i)
		if err != nil {
			return err
		}
		batch = append(batch, u)
	}
	return r.users.CreateBatch(ctx, batch)
}

// QueryOperations reads users through every query method of the mapper
func (r *Runner) QueryOperations(ctx context.Context) error {
	users, err := r.users.GetAll(ctx)
	if err != nil {
		return err
	}
	logCount(len(users))

	users, err = r.users.Fetch(ctx, _fromUsersByID, r.user0)
	if err != nil {
		return err
	}
	logCount(len(users))

	users, err = r.users.Fetch(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	logCount(len(users))

	user, err := r.users.Get(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	logUser(user)

	user, err = r.users.GetOrDefault(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	logUser(user)

	user, err = r.users.First(ctx, _selectUsers)
	if err != nil {
		return err
	}
	logUser(user)

	user, err = r.users.FirstOrDefault(ctx, _selectUsers)
	if err != nil {
		return err
	}
	logUser(user)
	return nil
}

// UpdateOperations renames user0 through the object, then through CQL
func (r *Runner) UpdateOperations(ctx context.Context) error {
	user, err := r.users.Get(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	user.Name = "Update POCO"
	if err := r.users.Update(ctx, user); err != nil {
		return err
	}
	user, err = r.users.Get(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	logUser(user)

	if err := r.users.UpdateName(ctx, r.user0, "Update CQL"); err != nil {
		return err
	}
	user, err = r.users.Get(ctx, _byID, r.user0)
	if err != nil {
		return err
	}
	logUser(user)
	return nil
}

// DeleteOperations deletes user0 through CQL, then the remaining users in a
// batch
func (r *Runner) DeleteOperations(ctx context.Context) error {
	if _, err := r.users.Get(ctx, _byID, r.user0); err != nil {
		return err
	}
	if err := r.users.DeleteByID(ctx, r.user0); err != nil {
		return err
	}

	users, err := r.users.GetAll(ctx)
	if err != nil {
		return err
	}
	if err := r.users.DeleteBatch(ctx, users); err != nil {
		return err
	}

	users, err = r.users.GetAll(ctx)
	if err != nil {
		return err
	}
	logCount(len(users))
	return nil
}

func logCount(n int) {
	log.WithField("users", n).Infof("Retrieved %d users", n)
}

func logUser(u *objects.User) {
	if u == nil {
		log.Info("Retrieved no user")
		return
	}
	log.WithField("user_id", u.ID.String()).Infof("Retrieved %s", u)
}
