package format

import "strings"

// ConvertStringQuotes rewrites a string literal's quote characters to match
// style, or returns it unchanged if style is QuotePreserve or the
// conversion would change the string's meaning.
func ConvertStringQuotes(token string, style QuoteStyle) string {
	switch style {
	case QuoteDouble:
		return toDoubleQuotes(token)
	case QuoteSingle:
		return toSingleQuotes(token)
	default:
		return token
	}
}

// toDoubleQuotes converts a single-quoted literal to double quotes, unless
// its content itself contains a double quote or a backslash: either would
// change meaning once re-quoted with `"`, since double-quoted strings give
// both characters escape significance that single-quoted strings don't.
func toDoubleQuotes(token string) string {
	if strings.HasPrefix(token, `"`) {
		return token
	}
	content, ok := unwrap(token, '\'')
	if !ok {
		return token
	}
	if strings.ContainsAny(content, `"\`) {
		return token
	}
	return `"` + content + `"`
}

// toSingleQuotes converts a double-quoted literal to single quotes, unless
// its content contains a single quote or a backslash.
func toSingleQuotes(token string) string {
	if strings.HasPrefix(token, "'") {
		return token
	}
	content, ok := unwrap(token, '"')
	if !ok {
		return token
	}
	if strings.ContainsAny(content, `'\`) {
		return token
	}
	return "'" + content + "'"
}

// unwrap strips a single leading and trailing quote byte, reporting
// whether both were present.
func unwrap(token string, quote byte) (string, bool) {
	if len(token) < 2 || token[0] != quote || token[len(token)-1] != quote {
		return "", false
	}
	return token[1 : len(token)-1], true
}
