package usecase

import (
	"context"
	"sort"

	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/pkg/e"
)

// categoryArena — все категории, проиндексированные по id, с картой смежности
// родитель -> дети. Строится один раз на запрос из полного списка категорий.
type categoryArena struct {
	byID     map[int64]domain.Category
	children map[int64][]int64 // ключ 0 — корневые категории
}

func newCategoryArena(categories []domain.Category) *categoryArena {
	arena := &categoryArena{
		byID:     make(map[int64]domain.Category, len(categories)),
		children: make(map[int64][]int64),
	}

	for _, cat := range categories {
		arena.byID[cat.ID] = cat
		parentKey := int64(0)
		if cat.ParentID != nil {
			parentKey = *cat.ParentID
		}
		arena.children[parentKey] = append(arena.children[parentKey], cat.ID)
	}

	for key := range arena.children {
		ids := arena.children[key]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	return arena
}

// descendantIDs возвращает замыкание потомков: id самой категории плюс все id,
// достижимые по дочерним связям. Посещённые узлы отслеживаются, чтобы цикл в
// унаследованных данных не завесил обход (схема ацикличность не гарантирует).
func (a *categoryArena) descendantIDs(rootID int64) []int64 {
	visited := make(map[int64]struct{})
	stack := []int64{rootID}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		stack = append(stack, a.children[current]...)
	}

	ids := make([]int64, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// childrenOf возвращает непосредственных детей категории в порядке id.
func (a *categoryArena) childrenOf(id int64) []domain.Category {
	ids := a.children[id]
	result := make([]domain.Category, 0, len(ids))
	for _, childID := range ids {
		result = append(result, a.byID[childID])
	}
	return result
}

// roots возвращает корневые категории в порядке id.
func (a *categoryArena) roots() []domain.Category {
	return a.childrenOf(0)
}

// siblingsOf возвращает категории с тем же родителем, исключая саму категорию.
// Если таких нет и существует дед, возвращает детей деда (кроме самой категории).
func (a *categoryArena) siblingsOf(cat domain.Category) []domain.Category {
	parentKey := int64(0)
	if cat.ParentID != nil {
		parentKey = *cat.ParentID
	}

	siblings := excludeID(a.childrenOf(parentKey), cat.ID)
	if len(siblings) > 0 || cat.ParentID == nil {
		return siblings
	}

	parent, ok := a.byID[*cat.ParentID]
	if !ok || parent.ParentID == nil {
		return nil
	}

	return excludeID(a.childrenOf(*parent.ParentID), cat.ID)
}

// validateParent проверяет, что новый родитель не лежит в поддереве категории:
// перенос под собственного потомка создал бы цикл.
func (a *categoryArena) validateParent(id int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if _, ok := a.byID[*parentID]; !ok {
		return e.ErrCategoryNotFound
	}

	for _, descID := range a.descendantIDs(id) {
		if descID == *parentID {
			return e.ErrCategoryCycle
		}
	}

	return nil
}

// ancestorIDs возвращает id категории и всех её предков (по арене, без
// обращений к репозиторию). Посещённые узлы отслеживаются на случай цикла.
func (a *categoryArena) ancestorIDs(id int64) []int64 {
	visited := make(map[int64]struct{})
	ids := make([]int64, 0)

	current, ok := a.byID[id]
	for ok {
		if _, seen := visited[current.ID]; seen {
			break
		}
		visited[current.ID] = struct{}{}
		ids = append(ids, current.ID)

		if current.ParentID == nil {
			break
		}
		current, ok = a.byID[*current.ParentID]
	}

	return ids
}

func excludeID(categories []domain.Category, id int64) []domain.Category {
	result := make([]domain.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.ID != id {
			result = append(result, cat)
		}
	}
	return result
}

// ancestors возвращает цепочку предков от корня до самой категории
// включительно, поднимаясь по родительским ссылкам через репозиторий.
func ancestors(ctx context.Context, repo CategoryRepository, cat *domain.Category) ([]domain.Category, error) {
	chain := []domain.Category{}
	visited := make(map[int64]struct{})

	current := cat
	for current != nil {
		if _, ok := visited[current.ID]; ok {
			break // защита от цикла в данных
		}
		visited[current.ID] = struct{}{}
		chain = append([]domain.Category{*current}, chain...)

		if current.ParentID == nil {
			break
		}

		parent, err := repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return nil, err
		}
		current = parent
	}

	return chain, nil
}
