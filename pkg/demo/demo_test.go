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
	"testing"

	"github.com/datastax-examples/object-mapper-go/pkg/storage/objects"
	objectmocks "github.com/datastax-examples/object-mapper-go/pkg/storage/objects/mocks"

	"github.com/gocql/gocql"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/yarpc/yarpcerrors"
)

type DemoTestSuite struct {
	suite.Suite

	ctx       context.Context
	ctrl      *gomock.Controller
	mockUsers *objectmocks.MockUserOps
	runner    *Runner
}

func TestDemoSuite(t *testing.T) {
	suite.Run(t, new(DemoTestSuite))
}

func (s *DemoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = objectmocks.NewMockUserOps(s.ctrl)

	runner, err := NewRunner(s.mockUsers)
	s.Require().NoError(err)
	s.runner = runner
}

func (s *DemoTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DemoTestSuite) user0(name string) *objects.User {
	return &objects.User{ID: s.runner.User0(), Name: name}
}

func (s *DemoTestSuite) TestNewRunner() {
	other, err := NewRunner(s.mockUsers)
	s.NoError(err)
	s.NotEqual(gocql.UUID{}, s.runner.User0())
	s.NotEqual(s.runner.User0(), other.User0())
}

func (s *DemoTestSuite) TestInsertOperations() {
	gomock.InOrder(
		s.mockUsers.EXPECT().Create(s.ctx, s.user0("User 0")).Return(nil),
		s.mockUsers.EXPECT().CreateBatch(s.ctx, gomock.Any()).
			Do(func(_ context.Context, users []*objects.User) {
				s.Len(users, 10)
				for i, u := range users {
					s.Equal(i+1, u.Age)
					s.Equal(fmt.Sprintf("User %d", i+1), u.Name)
					s.NotEqual(s.runner.User0(), u.ID)
				}
			}).Return(nil),
	)
	s.NoError(s.runner.InsertOperations(s.ctx))
}

func (s *DemoTestSuite) TestInsertOperationsCreateFailure() {
	s.mockUsers.EXPECT().Create(s.ctx, gomock.Any()).
		Return(errors.New("insert failed"))
	s.EqualError(s.runner.InsertOperations(s.ctx), "insert failed")
}

func (s *DemoTestSuite) TestQueryOperations() {
	id := s.runner.User0()
	u := s.user0("User 0")
	gomock.InOrder(
		s.mockUsers.EXPECT().GetAll(s.ctx).Return([]*objects.User{u, u}, nil),
		s.mockUsers.EXPECT().Fetch(s.ctx, "FROM users WHERE id = ?", id).
			Return([]*objects.User{u}, nil),
		s.mockUsers.EXPECT().Fetch(s.ctx, "WHERE id = ?", id).
			Return([]*objects.User{u}, nil),
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).Return(u, nil),
		s.mockUsers.EXPECT().GetOrDefault(s.ctx, "WHERE id = ?", id).
			Return(u, nil),
		s.mockUsers.EXPECT().First(s.ctx, "SELECT * FROM users").Return(u, nil),
		s.mockUsers.EXPECT().FirstOrDefault(s.ctx, "SELECT * FROM users").
			Return(nil, nil),
	)
	s.NoError(s.runner.QueryOperations(s.ctx))
}

func (s *DemoTestSuite) TestQueryOperationsNotFound() {
	id := s.runner.User0()
	gomock.InOrder(
		s.mockUsers.EXPECT().GetAll(s.ctx).Return(nil, nil),
		s.mockUsers.EXPECT().Fetch(s.ctx, gomock.Any(), id).Return(nil, nil),
		s.mockUsers.EXPECT().Fetch(s.ctx, gomock.Any(), id).Return(nil, nil),
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
			Return(nil, yarpcerrors.NotFoundErrorf("no user")),
	)
	err := s.runner.QueryOperations(s.ctx)
	s.True(yarpcerrors.IsNotFound(err))
}

func (s *DemoTestSuite) TestUpdateOperations() {
	id := s.runner.User0()
	gomock.InOrder(
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
			Return(s.user0("User 0"), nil),
		s.mockUsers.EXPECT().Update(s.ctx, s.user0("Update POCO")).Return(nil),
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
			Return(s.user0("Update POCO"), nil),
		s.mockUsers.EXPECT().UpdateName(s.ctx, id, "Update CQL").Return(nil),
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
			Return(s.user0("Update CQL"), nil),
	)
	s.NoError(s.runner.UpdateOperations(s.ctx))
}

func (s *DemoTestSuite) TestDeleteOperations() {
	id := s.runner.User0()
	rest := []*objects.User{{ID: gocql.MustRandomUUID(), Name: "User 1", Age: 1}}
	gomock.InOrder(
		s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
			Return(s.user0("Update CQL"), nil),
		s.mockUsers.EXPECT().DeleteByID(s.ctx, id).Return(nil),
		s.mockUsers.EXPECT().GetAll(s.ctx).Return(rest, nil),
		s.mockUsers.EXPECT().DeleteBatch(s.ctx, rest).Return(nil),
		s.mockUsers.EXPECT().GetAll(s.ctx).Return(nil, nil),
	)
	s.NoError(s.runner.DeleteOperations(s.ctx))
}

func (s *DemoTestSuite) TestRun() {
	id := s.runner.User0()
	u := s.user0("User 0")
	s.mockUsers.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.mockUsers.EXPECT().CreateBatch(s.ctx, gomock.Any()).Return(nil)
	s.mockUsers.EXPECT().GetAll(s.ctx).Return([]*objects.User{u}, nil).Times(3)
	s.mockUsers.EXPECT().Fetch(s.ctx, gomock.Any(), id).
		Return([]*objects.User{u}, nil).Times(2)
	s.mockUsers.EXPECT().Get(s.ctx, "WHERE id = ?", id).
		DoAndReturn(func(context.Context, string, ...interface{}) (*objects.User, error) {
			return s.user0("User 0"), nil
		}).Times(5)
	s.mockUsers.EXPECT().GetOrDefault(s.ctx, "WHERE id = ?", id).Return(u, nil)
	s.mockUsers.EXPECT().First(s.ctx, gomock.Any()).Return(u, nil)
	s.mockUsers.EXPECT().FirstOrDefault(s.ctx, gomock.Any()).Return(u, nil)
	s.mockUsers.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)
	s.mockUsers.EXPECT().UpdateName(s.ctx, id, "Update CQL").Return(nil)
	s.mockUsers.EXPECT().DeleteByID(s.ctx, id).Return(nil)
	s.mockUsers.EXPECT().DeleteBatch(s.ctx, gomock.Any()).Return(nil)

	s.NoError(s.runner.Run(s.ctx))
}

func (s *DemoTestSuite) TestRunStopsAtFirstFailure() {
	s.mockUsers.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.mockUsers.EXPECT().CreateBatch(s.ctx, gomock.Any()).
		Return(errors.New("batch failed"))

	err := s.runner.Run(s.ctx)
	s.EqualError(err, "insert operations failed: batch failed")
}
