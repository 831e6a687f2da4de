package usecase

const (
	// Размер страницы листинга товаров категории с фильтрами
	ProductListPageSize = 10
	// Размер страницы листинга всего поддерева на странице категории
	CategoryPageSize = 15
	// Максимальное число номеров страниц в навигации
	pageWindowSize = 5
)

// Page — одна страница листинга товаров.
type Page struct {
	Items      []ProductCard
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate режет листинг на страницы фиксированного размера.
// Номер страницы за пределами диапазона прижимается к ближайшей допустимой:
// 0 и отрицательные — к первой, слишком большие — к последней.
// Пустой листинг даёт пустую первую страницу, а не ошибку.
func Paginate(items []ProductCard, page, perPage int) Page {
	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// PageWindow возвращает ограниченное окно номеров страниц для навигации:
// не более пяти номеров, текущая страница по центру с двумя соседями с каждой
// стороны, с прижатием к границам последовательности.
func PageWindow(current, total int) []int {
	if total <= pageWindowSize {
		return pageRange(1, total)
	}

	switch {
	case current <= 3:
		return pageRange(1, pageWindowSize)
	case current >= total-2:
		return pageRange(total-pageWindowSize+1, total)
	default:
		return pageRange(current-2, current+2)
	}
}

func pageRange(from, to int) []int {
	if to < from {
		return nil
	}
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}
