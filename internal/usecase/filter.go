package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductFilter — критерии фильтрации листинга товаров.
// Значения приходят из query-параметров как есть; некорректное значение
// диапазона игнорируется (листинг остаётся неотфильтрованным по нему),
// это не жёсткая ошибка.
type ProductFilter struct {
	Name         string
	ThicknessMin string
	ThicknessMax string
}

// IsZero сообщает, задан ли хоть один критерий.
func (f ProductFilter) IsZero() bool {
	return f.Name == "" && f.ThicknessMin == "" && f.ThicknessMax == ""
}

// Apply последовательно применяет критерии к листингу.
func (f ProductFilter) Apply(cards []ProductCard) []ProductCard {
	if f.IsZero() {
		return cards
	}

	min, hasMin := parseThicknessBound(f.ThicknessMin)
	max, hasMax := parseThicknessBound(f.ThicknessMax)
	nameQuery := strings.ToLower(strings.TrimSpace(f.Name))

	result := make([]ProductCard, 0, len(cards))
	for _, card := range cards {
		if nameQuery != "" && !strings.Contains(strings.ToLower(card.Name), nameQuery) {
			continue
		}

		if hasMin || hasMax {
			value, ok := ParseProductName(card.Name).ThicknessValue()
			if !ok {
				continue // товары без распознанной толщины не попадают в диапазонный фильтр
			}
			if hasMin && value.LessThan(min) {
				continue
			}
			if hasMax && value.GreaterThan(max) {
				continue
			}
		}

		result = append(result, card)
	}

	return result
}

func parseThicknessBound(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return value, true
}
