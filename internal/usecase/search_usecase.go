package usecase

import (
	"context"
	"strings"

	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

// SearchUseCase реализует поиск по подстроке имени среди товаров и категорий.
type SearchUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewSearchUC(productRepo ProductRepository, categoryRepo CategoryRepository, logger logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Search возвращает товары и категории, имя которых содержит запрос без учёта
// регистра: сначала товары, затем категории. Пустой запрос даёт пустой
// результат. Отсутствие совпадений — тоже пустой срез, а не ошибка:
// представление «ничего не найдено» остаётся за слоем доставки.
func (s *SearchUseCase) Search(ctx context.Context, query string) ([]SearchResult, error) {
	const op = "SearchUseCase.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	products, err := s.productRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := s.categoryRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	results := make([]SearchResult, 0, len(products)+len(categories))
	for _, p := range products {
		categoryName := p.CategoryName
		imageKey := p.ImageKey
		results = append(results, SearchResult{
			Name:     p.Name,
			Slug:     p.Slug,
			Type:     "product",
			Category: &categoryName,
			ImageKey: nilIfEmpty(imageKey),
		})
	}
	for _, c := range categories {
		results = append(results, SearchResult{
			Name:     c.Name,
			Slug:     c.Slug,
			Type:     "category",
			Parent:   c.ParentName,
			ImageKey: c.ImageKey,
		})
	}

	return results, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
