// column_resolver.go
package rates

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/go_utils"
)

// interestColumnNames lists the known spellings of the interest rate column,
// highest priority first.
var interestColumnNames = []string{"interest_rate", "int_rate", "Rate", "APR", "apr", "Interest", "interest"}

// InterestColumnNames returns a copy of the candidate column names in priority order.
func InterestColumnNames() []string {
	out := make([]string, len(interestColumnNames))
	copy(out, interestColumnNames)
	return out
}

// ResolveInterestColumn returns the first candidate name present in header.
// Matching is exact and case-sensitive.
func ResolveInterestColumn(header []string) (string, bool) {
	if len(header) == 0 {
		return "", false
	}
	for _, name := range interestColumnNames {
		if go_utils.InArray(name, header) {
			return name, true
		}
	}
	return "", false
}

// columnIndex returns the position of name in header. A repeated name resolves
// to its last occurrence, the same cell a dict-per-row reader would keep.
func columnIndex(header []string, name string) int {
	for i := len(header) - 1; i >= 0; i-- {
		if header[i] == name {
			return i
		}
	}
	return -1
}

// SuggestInterestColumn lists header fields that look like an interest rate
// column once transliterated, trimmed and case folded. It never affects resolution.
func SuggestInterestColumn(header []string) []string {
	known := make(map[string]struct{}, len(interestColumnNames))
	for _, name := range interestColumnNames {
		known[foldHeaderName(name)] = struct{}{}
	}

	var suggestions []string
	for _, field := range header {
		if _, ok := known[foldHeaderName(field)]; ok {
			suggestions = append(suggestions, field)
		}
	}
	return suggestions
}

// foldHeaderName maps "Interest Rate", " INT-RATE" and "Intérest_Rate" to interest_rate.
func foldHeaderName(header string) string {
	header = unidecode.Unidecode(strings.TrimSpace(header))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range header {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimRight(b.String(), "_")
}
