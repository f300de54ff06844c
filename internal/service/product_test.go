package service

import (
	"testing"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductServiceSuite struct {
	ServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewProductService(s.params)
}

func (s *ProductServiceSuite) TestCreateProduct() {
	state, err := s.service.CreateProduct(s.GetContext(), "o1", schema.Input{
		"name":        "Coffee",
		"description": "",
		"points_cost": "120",
		"price":       "3.50",
		"stock":       "10",
	})
	s.NoError(err)
	s.Require().True(state.Success)

	p := state.Data
	s.Nil(p.Description)
	s.Equal(int64(120), p.PointsCost)
	s.Require().NotNil(p.Price)
	s.True(decimal.RequireFromString("3.5").Equal(*p.Price))
	s.Require().NotNil(p.Stock)
	s.Equal(int64(10), *p.Stock)
	s.True(p.IsActive)
	s.False(p.IsFeatured)
}

func (s *ProductServiceSuite) TestCreateProductValidation() {
	state, err := s.service.CreateProduct(s.GetContext(), "o1", schema.Input{
		"name":        "Coffee",
		"points_cost": "1.5",
		"price":       "-2",
	})
	s.NoError(err)
	s.False(state.Success)
	s.Equal(map[string][]string{
		"points_cost": {"Expected a whole number"},
		"price":       {"Price must be a positive amount"},
	}, state.Error.Fields)
}

func (s *ProductServiceSuite) TestUploadImage() {
	created, err := s.service.CreateProduct(s.GetContext(), "o1", schema.Input{"name": "Coffee", "points_cost": "10"})
	s.NoError(err)
	s.Require().True(created.Success)
	id := created.Data.ID

	state, err := s.service.UploadImage(s.GetContext(), "o1", id, pngPixel)
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal("https://cdn.test/products/"+id+".png", *state.Data.ImageURL)

	stored, err := s.service.GetProduct(s.GetContext(), "o1", id)
	s.NoError(err)
	s.Equal(state.Data.ImageURL, stored.ImageURL)

	s.GetImageStore().Err = ierr.NewError("bucket unavailable").
		WithHint("Image uploads are not configured").
		Mark(ierr.ErrInvalidOperation)
	state, err = s.service.UploadImage(s.GetContext(), "o1", id, pngPixel)
	s.NoError(err)
	s.False(state.Success)
	s.Equal("Image uploads are not configured", state.Error.Message)

	missing, err := s.service.UploadImage(s.GetContext(), "o2", id, pngPixel)
	s.Nil(missing)
	s.True(ierr.IsNotFound(err))
}
