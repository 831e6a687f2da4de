package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []ProductCard {
	return []ProductCard{
		{ID: 1, Name: "Лист стальной 5 мм Ст3сп"},
		{ID: 2, Name: "Лист стальной 2 мм"},
		{ID: 3, Name: "Лист оцинкованный 0.8 мм"},
		{ID: 4, Name: "Труба профильная"},
	}
}

func TestProductFilter_Apply(t *testing.T) {
	tests := []struct {
		name     string
		filter   ProductFilter
		wantIDs  []int64
	}{
		{
			name:    "без критериев — всё",
			filter:  ProductFilter{},
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "подстрока без учёта регистра",
			filter:  ProductFilter{Name: "лист"},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "нижняя граница толщины",
			filter:  ProductFilter{ThicknessMin: "2"},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "диапазон толщины",
			filter:  ProductFilter{ThicknessMin: "1", ThicknessMax: "3"},
			wantIDs: []int64{2},
		},
		{
			name:    "товары без толщины выпадают из диапазона",
			filter:  ProductFilter{ThicknessMax: "100"},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "некорректная граница игнорируется",
			filter:  ProductFilter{Name: "лист", ThicknessMin: "abc"},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "имя и толщина вместе",
			filter:  ProductFilter{Name: "оцинкованный", ThicknessMax: "1"},
			wantIDs: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.filter.Apply(filterFixture())
			ids := make([]int64, 0, len(result))
			for _, card := range result {
				ids = append(ids, card.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
