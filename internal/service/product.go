package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/product"
	"github.com/pointsclub/clubadmin/internal/s3"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/samber/lo"
)

type ProductService interface {
	CreateProduct(ctx context.Context, organizationID string, in schema.Input) (*action.State[product.Product], error)
	GetProduct(ctx context.Context, organizationID, id string) (*product.Product, error)
	UpdateProduct(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[product.Product], error)
	ListProducts(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*product.Product], error)
	UploadImage(ctx context.Context, organizationID, id string, data []byte) (*action.State[product.Product], error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) CreateProduct(ctx context.Context, organizationID string, in schema.Input) (*action.State[product.Product], error) {
	p, err := schema.Decode[product.Product](product.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[product.Product](ctx, s.ServiceParams, "create_product", nil, err)
	}

	p.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT)
	p.BaseModel = domain.NewBaseModel(time.Now())

	err = s.ProductRepo.Create(ctx, p)
	return writeResult(ctx, s.ServiceParams, "create_product", p, err)
}

func (s *productService) GetProduct(ctx context.Context, organizationID, id string) (*product.Product, error) {
	return s.ProductRepo.Get(ctx, organizationID, id)
}

func (s *productService) UpdateProduct(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[product.Product], error) {
	p, err := s.ProductRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(product.EditSchema, in, p); err != nil {
		return writeResult[product.Product](ctx, s.ServiceParams, "update_product", nil, err)
	}
	p.Touch(time.Now())

	err = s.ProductRepo.Update(ctx, p)
	return writeResult(ctx, s.ServiceParams, "update_product", p, err)
}

func (s *productService) ListProducts(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*product.Product], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.ProductRepo.List, s.ProductRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list products", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}

// UploadImage stores the picture and points the product at it
func (s *productService) UploadImage(ctx context.Context, organizationID, id string, data []byte) (*action.State[product.Product], error) {
	p, err := s.ProductRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	url, err := s.S3.UploadImage(ctx, &s3.Image{OwnerID: id, Kind: s3.ImageKindProduct, Data: data})
	if err != nil {
		return writeResult[product.Product](ctx, s.ServiceParams, "upload_product_image", nil, err)
	}

	p.ImageURL = lo.ToPtr(url)
	p.Touch(time.Now())
	err = s.ProductRepo.Update(ctx, p)
	return writeResult(ctx, s.ServiceParams, "upload_product_image", p, err)
}
