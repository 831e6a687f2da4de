package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

type fakeSearchProductRepo struct {
	ProductRepository
	matches []ProductMatch
	queries []string
}

func (f *fakeSearchProductRepo) SearchByName(ctx context.Context, query string) ([]ProductMatch, error) {
	f.queries = append(f.queries, query)
	return f.matches, nil
}

type fakeSearchCategoryRepo struct {
	CategoryRepository
	matches []CategoryMatch
}

func (f *fakeSearchCategoryRepo) SearchByName(ctx context.Context, query string) ([]CategoryMatch, error) {
	return f.matches, nil
}

func TestSearchUseCase_Search(t *testing.T) {
	parent := "Листовой прокат"
	productRepo := &fakeSearchProductRepo{matches: []ProductMatch{
		{Name: "Лист стальной 5 мм", Slug: "list-stalnoi-5-mm", CategoryName: "Горячекатаный лист", ImageKey: "products/a.jpg"},
	}}
	categoryRepo := &fakeSearchCategoryRepo{matches: []CategoryMatch{
		{Name: "Горячекатаный лист", Slug: "goriachekatanyi-list", ParentName: &parent},
	}}

	uc := NewSearchUC(productRepo, categoryRepo, logger.NewSlogLogger())

	results, err := uc.Search(context.Background(), "  лист ")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Товары идут первыми.
	assert.Equal(t, "product", results[0].Type)
	assert.Equal(t, "Лист стальной 5 мм", results[0].Name)
	require.NotNil(t, results[0].Category)
	assert.Equal(t, "Горячекатаный лист", *results[0].Category)
	require.NotNil(t, results[0].ImageKey)

	assert.Equal(t, "category", results[1].Type)
	require.NotNil(t, results[1].Parent)
	assert.Equal(t, parent, *results[1].Parent)
	assert.Nil(t, results[1].ImageKey)

	// Запрос уходит в репозиторий без окружающих пробелов.
	require.Len(t, productRepo.queries, 1)
	assert.Equal(t, "лист", productRepo.queries[0])
}

func TestSearchUseCase_Search_EmptyQuery(t *testing.T) {
	productRepo := &fakeSearchProductRepo{}
	uc := NewSearchUC(productRepo, &fakeSearchCategoryRepo{}, logger.NewSlogLogger())

	results, err := uc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Empty(t, productRepo.queries)
}

func TestSearchUseCase_Search_NoMatches(t *testing.T) {
	uc := NewSearchUC(&fakeSearchProductRepo{}, &fakeSearchCategoryRepo{}, logger.NewSlogLogger())

	results, err := uc.Search(context.Background(), "вольфрам")
	require.NoError(t, err)
	assert.Empty(t, results)
}
