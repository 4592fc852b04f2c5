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

package objects

import (
	"context"
	"fmt"
	"time"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects/base"
	"github.com/datastax-examples/object-mapper-go/pkg/storage/orm"

	"github.com/gocql/gocql"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/yarpc/yarpcerrors"
)

const (
	_updateNameStmt = "SET name=? WHERE id=?"
	_byIDStmt       = "WHERE id = ?"
)

// UserObject corresponds to a row in users table.
type UserObject struct {
	// base.Object DB specific annotations.
	base.Object `cassandra:"name=users, primaryKey=((id))"`
	// ID of the user
	ID gocql.UUID `column:"name=id"`
	// Name of the user
	Name string `column:"name=name"`
	// Age of the user
	Age int `column:"name=age"`
}

// User is a user record
type User struct {
	ID   gocql.UUID
	Name string
	Age  int
}

// NewUser returns a user with a freshly generated ID
func NewUser(name string, age int) (*User, error) {
	id, err := gocql.ParseUUID(uuid.New())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}
	return &User{ID: id, Name: name, Age: age}, nil
}

func (u *User) String() string {
	return fmt.Sprintf("UserId: %s, Name: %s, Age: %d", u.ID, u.Name, u.Age)
}

func newUserObject(u *User) *UserObject {
	return &UserObject{
		ID:   u.ID,
		Name: u.Name,
		Age:  u.Age,
	}
}

func (o *UserObject) toUser() *User {
	return &User{
		ID:   o.ID,
		Name: o.Name,
		Age:  o.Age,
	}
}

func usersFromObjects(objs []base.Object) []*User {
	users := make([]*User, 0, len(objs))
	for _, o := range objs {
		users = append(users, o.(*UserObject).toUser())
	}
	return users
}

// UserOps provides methods for manipulating users table.
//
// The query methods take a CQL fragment which is completed into a select
// on the users table: an empty string reads the whole table, a fragment may
// start with WHERE or FROM, or be a whole SELECT statement.
type UserOps interface {
	// Create inserts a user in the users table.
	Create(ctx context.Context, u *User) error

	// CreateBatch inserts the users in a single batch.
	CreateBatch(ctx context.Context, users []*User) error

	// GetByID retrieves a user by its primary key.
	GetByID(ctx context.Context, id gocql.UUID) (*User, error)

	// GetAll retrieves all the users.
	GetAll(ctx context.Context) ([]*User, error)

	// Fetch retrieves all the users selected by the fragment.
	Fetch(ctx context.Context, cql string, args ...interface{}) ([]*User, error)

	// Get retrieves the only user selected by the fragment. It fails if
	// there is no such user or more than one.
	Get(ctx context.Context, cql string, args ...interface{}) (*User, error)

	// GetOrDefault is Get returning nil when there is no such user.
	GetOrDefault(ctx context.Context, cql string, args ...interface{}) (*User, error)

	// First retrieves the first user selected by the fragment. It fails if
	// there is no such user.
	First(ctx context.Context, cql string, args ...interface{}) (*User, error)

	// FirstOrDefault is First returning nil when there is no such user.
	FirstOrDefault(ctx context.Context, cql string, args ...interface{}) (*User, error)

	// Update writes all the non key fields of the user.
	Update(ctx context.Context, u *User) error

	// UpdateName sets the name of the user through a CQL update.
	UpdateName(ctx context.Context, id gocql.UUID, name string) error

	// Delete removes the user from the users table.
	Delete(ctx context.Context, u *User) error

	// DeleteByID removes the user with id through a CQL delete.
	DeleteByID(ctx context.Context, id gocql.UUID) error

	// DeleteBatch removes the users in a single batch.
	DeleteBatch(ctx context.Context, users []*User) error

	// DeleteAll removes every user in a single batch and returns how many
	// were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// ensure that default implementation (userOps) satisfies the interface
var _ UserOps = (*userOps)(nil)

// userOps implements UserOps using a particular Store
type userOps struct {
	store *Store
}

func init() {
	Objs = append(Objs, &UserObject{})
}

// NewUserOps constructs a UserOps object for provided Store.
func NewUserOps(s *Store) UserOps {
	return &userOps{store: s}
}

func (d *userOps) Create(ctx context.Context, u *User) error {
	if err := d.store.oClient.Create(ctx, newUserObject(u)); err != nil {
		d.store.metrics.OrmUserMetrics.UserCreateFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserCreate.Inc(1)
	return nil
}

func (d *userOps) CreateBatch(ctx context.Context, users []*User) error {
	b := orm.NewBatch()
	for _, u := range users {
		b.Insert(newUserObject(u))
	}
	if err := d.store.oClient.ExecuteBatch(ctx, b); err != nil {
		d.store.metrics.OrmUserMetrics.UserCreateBatchFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserCreateBatch.Inc(1)
	return nil
}

func (d *userOps) GetByID(ctx context.Context, id gocql.UUID) (*User, error) {
	obj := &UserObject{ID: id}
	if err := d.store.oClient.Get(ctx, obj); err != nil {
		if yarpcerrors.IsNotFound(err) {
			d.store.metrics.OrmUserMetrics.UserNotFound.Inc(1)
		} else {
			d.store.metrics.OrmUserMetrics.UserGetFail.Inc(1)
		}
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserGet.Inc(1)
	return obj.toUser(), nil
}

func (d *userOps) GetAll(ctx context.Context) ([]*User, error) {
	callStart := time.Now()
	objs, err := d.store.oClient.GetAll(ctx, &UserObject{})
	d.store.metrics.OrmUserMetrics.UserGetAllDuration.Record(
		time.Since(callStart))
	if err != nil {
		d.store.metrics.OrmUserMetrics.UserGetAllFail.Inc(1)
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserGetAll.Inc(1)
	return usersFromObjects(objs), nil
}

func (d *userOps) Fetch(
	ctx context.Context,
	cql string,
	args ...interface{},
) ([]*User, error) {
	objs, err := d.store.oClient.Fetch(ctx, &UserObject{}, cql, args...)
	if err != nil {
		d.store.metrics.OrmUserMetrics.UserQueryFail.Inc(1)
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserQuery.Inc(1)
	return usersFromObjects(objs), nil
}

func (d *userOps) Get(
	ctx context.Context,
	cql string,
	args ...interface{},
) (*User, error) {
	obj := &UserObject{}
	if err := d.store.oClient.Single(ctx, obj, cql, args...); err != nil {
		d.countGetFailure(err)
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserGet.Inc(1)
	return obj.toUser(), nil
}

func (d *userOps) GetOrDefault(
	ctx context.Context,
	cql string,
	args ...interface{},
) (*User, error) {
	obj := &UserObject{}
	found, err := d.store.oClient.SingleOrDefault(ctx, obj, cql, args...)
	return d.userOrDefault(obj, found, err)
}

func (d *userOps) First(
	ctx context.Context,
	cql string,
	args ...interface{},
) (*User, error) {
	obj := &UserObject{}
	if err := d.store.oClient.First(ctx, obj, cql, args...); err != nil {
		d.countGetFailure(err)
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserGet.Inc(1)
	return obj.toUser(), nil
}

func (d *userOps) FirstOrDefault(
	ctx context.Context,
	cql string,
	args ...interface{},
) (*User, error) {
	obj := &UserObject{}
	found, err := d.store.oClient.FirstOrDefault(ctx, obj, cql, args...)
	return d.userOrDefault(obj, found, err)
}

func (d *userOps) userOrDefault(
	obj *UserObject,
	found bool,
	err error,
) (*User, error) {
	if err != nil {
		d.countGetFailure(err)
		return nil, err
	}
	d.store.metrics.OrmUserMetrics.UserGet.Inc(1)
	if !found {
		return nil, nil
	}
	return obj.toUser(), nil
}

func (d *userOps) countGetFailure(err error) {
	if yarpcerrors.IsNotFound(err) {
		d.store.metrics.OrmUserMetrics.UserNotFound.Inc(1)
		return
	}
	d.store.metrics.OrmUserMetrics.UserGetFail.Inc(1)
}

func (d *userOps) Update(ctx context.Context, u *User) error {
	if err := d.store.oClient.Update(ctx, newUserObject(u)); err != nil {
		d.store.metrics.OrmUserMetrics.UserUpdateFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserUpdate.Inc(1)
	return nil
}

func (d *userOps) UpdateName(
	ctx context.Context,
	id gocql.UUID,
	name string,
) error {
	err := d.store.oClient.UpdateWhere(
		ctx, &UserObject{}, _updateNameStmt, name, id)
	if err != nil {
		d.store.metrics.OrmUserMetrics.UserUpdateFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserUpdate.Inc(1)
	return nil
}

func (d *userOps) Delete(ctx context.Context, u *User) error {
	if err := d.store.oClient.Delete(ctx, newUserObject(u)); err != nil {
		d.store.metrics.OrmUserMetrics.UserDeleteFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserDelete.Inc(1)
	return nil
}

func (d *userOps) DeleteByID(ctx context.Context, id gocql.UUID) error {
	err := d.store.oClient.DeleteWhere(ctx, &UserObject{}, _byIDStmt, id)
	if err != nil {
		d.store.metrics.OrmUserMetrics.UserDeleteFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserDelete.Inc(1)
	return nil
}

func (d *userOps) DeleteBatch(ctx context.Context, users []*User) error {
	b := orm.NewBatch()
	for _, u := range users {
		b.Delete(newUserObject(u))
	}
	return d.executeDeleteBatch(ctx, b)
}

func (d *userOps) DeleteAll(ctx context.Context) (int, error) {
	iter, err := d.store.oClient.GetAllIter(ctx, &UserObject{})
	if err != nil {
		d.store.metrics.OrmUserMetrics.UserGetAllFail.Inc(1)
		return 0, err
	}
	defer iter.Close()

	b := orm.NewBatch()
	for {
		obj, err := iter.Next()
		if err != nil {
			d.store.metrics.OrmUserMetrics.UserGetAllFail.Inc(1)
			return 0, err
		}
		if obj == nil {
			break
		}
		b.Delete(obj)
	}

	log.WithField("users", b.Len()).Debug("deleting all users")
	if err := d.executeDeleteBatch(ctx, b); err != nil {
		return 0, err
	}
	return b.Len(), nil
}

func (d *userOps) executeDeleteBatch(ctx context.Context, b *orm.Batch) error {
	if err := d.store.oClient.ExecuteBatch(ctx, b); err != nil {
		d.store.metrics.OrmUserMetrics.UserDeleteBatchFail.Inc(1)
		return err
	}
	d.store.metrics.OrmUserMetrics.UserDeleteBatch.Inc(1)
	return nil
}
