package codegen

import (
	"strings"
	"unicode"
)

// exportName upper-cases the first letter of every "_"-separated part and joins them.
func exportName(s string) string {
	parts := strings.Split(s, "_")
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// enumIdent turns a wire literal such as "MARKET_START_TIME" into "MarketStartTime".
// Characters that cannot appear in an identifier separate words.
func enumIdent(literal string) string {
	words := strings.FieldsFunc(literal, func(r rune) bool {
		return !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	})
	var b strings.Builder
	for _, w := range words {
		if isUpperWord(w) {
			w = strings.ToLower(w)
		}
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}

func isUpperWord(w string) bool {
	return strings.ToUpper(w) == w
}

// splitLines breaks a description into comment lines.
func splitLines(comment string) []string {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil
	}
	return strings.Split(comment, "\n")
}
