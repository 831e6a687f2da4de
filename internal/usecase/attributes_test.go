package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductName(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		expected ProductAttributes
	}{
		{
			name:    "полное название листа",
			product: "Лист стальной 5 мм Ст3сп ГОСТ 19903-74 горячекатаная",
			expected: ProductAttributes{
				Thickness:   "5 мм",
				Mark:        "Ст3сп",
				Gost:        "ГОСТ 19903-74",
				ProductType: "горячекатаная",
			},
		},
		{
			name:    "дробная толщина без пробела",
			product: "Лист 0.8мм холоднокатаная",
			expected: ProductAttributes{
				Thickness:   "0.8 мм",
				Mark:        NotSpecified,
				Gost:        NotSpecified,
				ProductType: "холоднокатаная",
			},
		},
		{
			name:    "марка с двухбуквенным суффиксом не обрезается",
			product: "Круг Ст3пс",
			expected: ProductAttributes{
				Thickness:   NotSpecified,
				Mark:        "Ст3пс",
				Gost:        NotSpecified,
				ProductType: NotSpecified,
			},
		},
		{
			name:    "марка без суффикса",
			product: "Арматура Ст5 ГОСТ 5781-82",
			expected: ProductAttributes{
				Thickness:   NotSpecified,
				Mark:        "Ст5",
				Gost:        "ГОСТ 5781-82",
				ProductType: NotSpecified,
			},
		},
		{
			name:    "оба типа проката — приоритет горячекатаной",
			product: "Лист горячекатаная и холоднокатаная",
			expected: ProductAttributes{
				Thickness:   NotSpecified,
				Mark:        NotSpecified,
				Gost:        NotSpecified,
				ProductType: "горячекатаная",
			},
		},
		{
			name:    "никаких атрибутов",
			product: "Труба",
			expected: ProductAttributes{
				Thickness:   NotSpecified,
				Mark:        NotSpecified,
				Gost:        NotSpecified,
				ProductType: NotSpecified,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseProductName(tt.product))
		})
	}
}

func TestProductAttributes_ThicknessValue(t *testing.T) {
	attrs := ParseProductName("Лист 2.5 мм")
	value, ok := attrs.ThicknessValue()
	require.True(t, ok)
	assert.Equal(t, "2.5", value.String())

	_, ok = ParseProductName("Труба").ThicknessValue()
	assert.False(t, ok)
}
