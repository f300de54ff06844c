package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pointsclub/clubadmin/internal/domain/branch"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type BranchServiceSuite struct {
	ServiceTestSuite
	service BranchService
}

func TestBranchService(t *testing.T) {
	suite.Run(t, new(BranchServiceSuite))
}

func (s *BranchServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewBranchService(s.params)
}

func (s *BranchServiceSuite) TestCreateAndEditBranch() {
	state, err := s.service.CreateBranch(s.GetContext(), "o1", schema.Input{
		"name":      "Centro",
		"address":   "",
		"is_active": "on",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Nil(state.Data.Address)
	s.True(state.Data.IsActive)

	edited, err := s.service.UpdateBranch(s.GetContext(), "o1", state.Data.ID, schema.Input{
		"name":    "Centro Norte",
		"address": "Av. Principal 12",
	})
	s.NoError(err)
	s.Require().True(edited.Success)
	s.Equal("Centro Norte", edited.Data.Name)
	s.Require().NotNil(edited.Data.Address)
	s.Equal("Av. Principal 12", *edited.Data.Address)
	s.Equal(state.Data.CreatedAt, edited.Data.CreatedAt)

	missing, err := s.service.UpdateBranch(s.GetContext(), "o1", "branch_missing", schema.Input{"name": "x"})
	s.Nil(missing)
	s.True(ierr.IsNotFound(err))
}

// brokenBranchStore fails writes with an error no layer recognizes
type brokenBranchStore struct {
	*testutil.InMemoryBranchStore
}

func (brokenBranchStore) Create(context.Context, *branch.Branch) error {
	return errors.New("connection reset by peer")
}

func (s *BranchServiceSuite) TestUnknownErrorGetsGenericMessage() {
	params := s.params
	params.BranchRepo = brokenBranchStore{InMemoryBranchStore: s.GetStores().BranchRepo}

	state, err := NewBranchService(params).CreateBranch(s.GetContext(), "o1", schema.Input{"name": "Centro"})
	s.NoError(err)
	s.False(state.Success)
	s.Equal(ierr.DefaultDisplayMessage, state.Error.Message)
	s.Empty(state.Error.Fields)
}
