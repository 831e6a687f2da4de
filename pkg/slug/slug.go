// Package slug нормализует свободный текст в URL-безопасные идентификаторы.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translit — таблица транслитерации кириллицы в латиницу.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "iu", 'я': "ia",
}

// Make строит базовый слаг: нижний регистр, транслитерация, удаление
// диакритики, свёртка неалфавитных последовательностей в дефис.
func Make(name string) string {
	lowered := strings.ToLower(name)

	var sb strings.Builder
	for _, r := range lowered {
		if lat, ok := translit[r]; ok {
			sb.WriteString(lat)
			continue
		}
		sb.WriteRune(r)
	}

	stripped := stripDiacritics(sb.String())

	var out strings.Builder
	pendingSep := false
	for _, r := range stripped {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			if out.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			out.WriteByte('-')
			pendingSep = false
		}
		out.WriteRune(r)
	}

	return out.String()
}

// stripDiacritics удаляет комбинируемые диакритические знаки (é -> e).
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}
