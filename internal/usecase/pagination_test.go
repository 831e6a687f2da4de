package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeCards(n int) []ProductCard {
	cards := make([]ProductCard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, ProductCard{ID: int64(i), Name: fmt.Sprintf("Товар %d", i)})
	}
	return cards
}

func TestPaginate(t *testing.T) {
	cards := makeCards(23)

	tests := []struct {
		name       string
		page       int
		wantNumber int
		wantLen    int
		wantFirst  int64
	}{
		{name: "первая страница", page: 1, wantNumber: 1, wantLen: 10, wantFirst: 1},
		{name: "последняя неполная", page: 3, wantNumber: 3, wantLen: 3, wantFirst: 21},
		{name: "нулевая прижимается к первой", page: 0, wantNumber: 1, wantLen: 10, wantFirst: 1},
		{name: "отрицательная прижимается к первой", page: -4, wantNumber: 1, wantLen: 10, wantFirst: 1},
		{name: "за пределами — к последней", page: 99, wantNumber: 3, wantLen: 3, wantFirst: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(cards, tt.page, ProductListPageSize)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 23, page.TotalItems)
			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Items[0].ID)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(nil, 5, ProductListPageSize)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{name: "мало страниц — все", current: 2, total: 3, expected: []int{1, 2, 3}},
		{name: "начало последовательности", current: 1, total: 20, expected: []int{1, 2, 3, 4, 5}},
		{name: "третья страница", current: 3, total: 20, expected: []int{1, 2, 3, 4, 5}},
		{name: "середина", current: 10, total: 20, expected: []int{8, 9, 10, 11, 12}},
		{name: "конец последовательности", current: 20, total: 20, expected: []int{16, 17, 18, 19, 20}},
		{name: "предпоследняя", current: 18, total: 20, expected: []int{16, 17, 18, 19, 20}},
		{name: "ровно пять", current: 5, total: 5, expected: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageWindow(tt.current, tt.total))
		})
	}
}
