package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "кириллица", input: "Листовой прокат", expected: "listovoi-prokat"},
		{name: "шипящие", input: "Щит", expected: "shchit"},
		{name: "цифры и единицы", input: "Лист 5 мм", expected: "list-5-mm"},
		{name: "латиница с диакритикой", input: "Décor", expected: "decor"},
		{name: "знаки препинания сворачиваются", input: "Труба, профильная!", expected: "truba-profilnaia"},
		{name: "ведущие и замыкающие разделители", input: "  Уголок  ", expected: "ugolok"},
		{name: "твёрдый и мягкий знаки выпадают", input: "Подъём", expected: "podem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}
