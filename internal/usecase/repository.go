package usecase

import (
	"context"

	"github.com/stalprokat/catalog-backend/internal/domain"
)

type CategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	// ListAll возвращает все категории одним запросом (арена для обхода дерева).
	ListAll(ctx context.Context) ([]domain.Category, error)
	SearchByName(ctx context.Context, query string) ([]CategoryMatch, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateParent(ctx context.Context, id int64, parentID *int64) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// ListByCategory возвращает товары одной категории в порядке добавления.
	ListByCategory(ctx context.Context, categoryID int64) ([]ProductCard, error)
	// ListByCategoryIDs возвращает товары всех перечисленных категорий
	// в случайном порядке (ORDER BY random()).
	ListByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]ProductCard, error)
	ListRandom(ctx context.Context, limit int) ([]ProductCard, error)
	SearchByName(ctx context.Context, query string) ([]ProductMatch, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Service, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// CacheRepository — кэш двух дорогих выборок каталога: случайной выборки
// для главной и листинга поддерева категории.
// Промах кэша не является ошибкой: Get-методы возвращают (nil, nil).
type CacheRepository interface {
	GetRandomProducts(ctx context.Context) ([]ProductCard, error)
	SetRandomProducts(ctx context.Context, cards []ProductCard) error
	DeleteRandomProducts(ctx context.Context) error
	GetCategoryProducts(ctx context.Context, categoryID int64) ([]ProductCard, error)
	SetCategoryProducts(ctx context.Context, categoryID int64, cards []ProductCard) error
	DeleteCategoryProducts(ctx context.Context, categoryIDs []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
