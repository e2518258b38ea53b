// normalizer - пакет для нормализации текста секрета перед сохранением.
package normalizer

import (
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst - функция для приведения первого символа секрета к верхнему регистру.
// Остальная часть текста не изменяется.
func CapitalizeFirst(secret string) string {
	if secret == "" {
		return secret
	}

	// извлекаю первую руну с учетом того, что текст может быть не только латиницей
	r, size := utf8.DecodeRuneInString(secret)
	if r == utf8.RuneError && size <= 1 {
		return secret
	}

	upper := unicode.ToUpper(r)
	if upper == r {
		// первый символ уже в верхнем регистре или регистра не имеет
		return secret
	}

	return string(upper) + secret[size:]
}
