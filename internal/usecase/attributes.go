package usecase

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NotSpecified — значение атрибута, не найденного в названии товара.
const NotSpecified = "Не указано"

// ProductAttributes — структурированные атрибуты, извлечённые из названия.
type ProductAttributes struct {
	Thickness   string // «5 мм»
	Mark        string // «Ст3сп»
	Gost        string // «ГОСТ 19903-74»
	ProductType string // «горячекатаная» | «холоднокатаная»
}

var (
	thicknessRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*мм`)
	// Суффиксы марок: сп/пс/кп, либо одиночные с/п/к.
	// Длинные альтернативы перечислены первыми, чтобы «Ст3сп» не обрезался до «Ст3с».
	markRe = regexp.MustCompile(`Ст\d+(?:сп|пс|кп|с|п|к)?`)
	gostRe = regexp.MustCompile(`ГОСТ\s*\d+-\d+`)
)

// ParseProductName извлекает толщину, марку стали, номер ГОСТа и тип проката
// из свободного текста названия товара. Чистая функция без побочных эффектов;
// ненайденные атрибуты получают значение NotSpecified.
func ParseProductName(name string) ProductAttributes {
	attrs := ProductAttributes{
		Thickness:   NotSpecified,
		Mark:        NotSpecified,
		Gost:        NotSpecified,
		ProductType: NotSpecified,
	}

	if m := thicknessRe.FindStringSubmatch(name); m != nil {
		attrs.Thickness = m[1] + " мм"
	}

	if m := markRe.FindString(name); m != "" {
		attrs.Mark = m
	}

	if m := gostRe.FindString(name); m != "" {
		attrs.Gost = m
	}

	// Горячекатаная проверяется первой и имеет приоритет,
	// если в названии встречаются оба типа.
	switch {
	case strings.Contains(name, "горячекатаная"):
		attrs.ProductType = "горячекатаная"
	case strings.Contains(name, "холоднокатаная"):
		attrs.ProductType = "холоднокатаная"
	}

	return attrs
}

// ThicknessValue возвращает численное значение толщины для сравнения
// диапазонов. Второе значение false, если толщина не распознана.
func (a ProductAttributes) ThicknessValue() (decimal.Decimal, bool) {
	if a.Thickness == NotSpecified {
		return decimal.Decimal{}, false
	}

	raw := strings.TrimSuffix(a.Thickness, " мм")
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return value, true
}
