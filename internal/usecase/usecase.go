package usecase

import (
	"context"

	"github.com/stalprokat/catalog-backend/internal/domain"
)

type CatalogUC interface {
	Homepage(ctx context.Context) (*HomepageRes, error)
	CategoryDetail(ctx context.Context, slug string, page int) (*CategoryDetailRes, error)
	ProductList(ctx context.Context, slug string, filter ProductFilter, page int) (*ProductListRes, error)
	ProductDetail(ctx context.Context, slug string) (*ProductDetailRes, error)
	ServicesList(ctx context.Context) ([]domain.Service, error)
	ServiceDetail(ctx context.Context, slug string) (*domain.Service, error)
}

type SearchUC interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type AdminUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	CreateService(ctx context.Context, req *CreateServiceReq) (*domain.Service, error)
	MoveCategory(ctx context.Context, id int64, parentID *int64) error
	DeleteCategory(ctx context.Context, id int64) error
}
