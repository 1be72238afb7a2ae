package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching: CamelCase
// tokens are joined, case-folded and stripped of separators, so
// "UserService", "user_service" and "userService" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
//
//   - "UserID" -> ["user", "id"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "electric_heater" -> ["electric", "heater"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}
	flush()

	return tokens
}

// SimpleName returns the last segment of a qualified name:
// "example.com/app.Outer.Inner" -> "Inner".
func SimpleName(qualified string) string {
	if i := strings.LastIndexAny(qualified, "./"); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '$'
}

// startsToken reports whether runes[i] begins a CamelCase token: a lower to
// upper transition, or the last capital of an acronym followed by lowercase.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
