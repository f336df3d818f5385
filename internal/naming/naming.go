package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnakeCase converts a camelCase identifier to snake_case.
// An underscore is inserted before each uppercase letter that follows a
// lowercase letter or digit, then the whole string is lowercased.
// Example: "favoriteFood" -> "favorite_food"
// Example: "address2Line" -> "address2_line"
// Example: "APIClient" -> "apiclient"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s) + 4)

	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			result.WriteRune('_')
		}
		result.WriteRune(r)
		prev = r
	}

	// A Caser holds state, so each call builds its own.
	return cases.Lower(language.Und).String(result.String())
}

// ToSnakeCaseAll converts every name in names, preserving order.
func ToSnakeCaseAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ToSnakeCase(n)
	}
	return out
}
