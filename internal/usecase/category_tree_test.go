package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/pkg/e"
)

func ptr(v int64) *int64 { return &v }

// Дерево: 1 (корень) -> 2, 3; 2 -> 4; отдельный корень 5.
func testCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Листовой прокат", Slug: "listovoi-prokat"},
		{ID: 2, Name: "Горячекатаный лист", Slug: "goriachekatanyi-list", ParentID: ptr(1)},
		{ID: 3, Name: "Холоднокатаный лист", Slug: "kholodnokatanyi-list", ParentID: ptr(1)},
		{ID: 4, Name: "Лист рифлёный", Slug: "list-riflenyi", ParentID: ptr(2)},
		{ID: 5, Name: "Трубы", Slug: "truby"},
	}
}

func TestCategoryArena_DescendantIDs(t *testing.T) {
	arena := newCategoryArena(testCategories())

	assert.Equal(t, []int64{1, 2, 3, 4}, arena.descendantIDs(1))
	assert.Equal(t, []int64{2, 4}, arena.descendantIDs(2))
	assert.Equal(t, []int64{5}, arena.descendantIDs(5))
}

func TestCategoryArena_DescendantIDs_CycleSafe(t *testing.T) {
	// Испорченные данные: 1 -> 2 -> 1.
	cats := []domain.Category{
		{ID: 1, ParentID: ptr(2)},
		{ID: 2, ParentID: ptr(1)},
	}
	arena := newCategoryArena(cats)

	assert.Equal(t, []int64{1, 2}, arena.descendantIDs(1))
	assert.Equal(t, []int64{1, 2}, arena.ancestorIDs(1))
}

func TestCategoryArena_Roots(t *testing.T) {
	arena := newCategoryArena(testCategories())

	roots := arena.roots()
	require.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(5), roots[1].ID)
}

func TestCategoryArena_SiblingsOf(t *testing.T) {
	cats := testCategories()
	arena := newCategoryArena(cats)

	// У категории 2 есть сосед 3.
	siblings := arena.siblingsOf(cats[1])
	require.Len(t, siblings, 1)
	assert.Equal(t, int64(3), siblings[0].ID)

	// У категории 4 соседей нет — поднимаемся к детям деда (1): 2 и 3.
	siblings = arena.siblingsOf(cats[3])
	require.Len(t, siblings, 2)
	assert.Equal(t, int64(2), siblings[0].ID)
	assert.Equal(t, int64(3), siblings[1].ID)
}

func TestCategoryArena_ValidateParent(t *testing.T) {
	arena := newCategoryArena(testCategories())

	assert.NoError(t, arena.validateParent(2, nil))
	assert.NoError(t, arena.validateParent(2, ptr(5)))

	// Перенос под собственного потомка запрещён.
	assert.ErrorIs(t, arena.validateParent(1, ptr(4)), e.ErrCategoryCycle)
	assert.ErrorIs(t, arena.validateParent(2, ptr(2)), e.ErrCategoryCycle)

	// Несуществующий родитель.
	assert.ErrorIs(t, arena.validateParent(2, ptr(99)), e.ErrCategoryNotFound)
}

type fakeCategoryRepo struct {
	CategoryRepository
	byID map[int64]domain.Category
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	cat, ok := f.byID[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	return &cat, nil
}

func TestAncestors(t *testing.T) {
	cats := testCategories()
	repo := &fakeCategoryRepo{byID: make(map[int64]domain.Category)}
	for _, cat := range cats {
		repo.byID[cat.ID] = cat
	}

	chain, err := ancestors(context.Background(), repo, &cats[3])
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, int64(1), chain[0].ID)
	assert.Equal(t, int64(2), chain[1].ID)
	assert.Equal(t, int64(4), chain[2].ID)
}

func TestAncestors_Root(t *testing.T) {
	cats := testCategories()
	repo := &fakeCategoryRepo{byID: map[int64]domain.Category{1: cats[0]}}

	chain, err := ancestors(context.Background(), repo, &cats[0])
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, int64(1), chain[0].ID)
}
