package engine

import "strings"

// ParseIngredients normalizes a free-text ingredient string into an ordered
// list of distinct, non-empty, lower-cased, trimmed tokens. It splits on
// commas and semicolons. An empty input yields an empty list, not an error.
//
// Every analyzer tokenizes through this function so that matching stays
// consistent across the engine.
func ParseIngredients(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	tokens := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		token := strings.ToLower(strings.TrimSpace(f))
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
