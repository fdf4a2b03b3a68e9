package args

import (
	"regexp"
	"strings"
)

// A quoted span wins over a bare word when both could start at the same
// position. A lone quote matches neither alternative and is dropped.
var tokenRegex = regexp.MustCompile(`"([^"]+)"|[^\s"]+`)

// Tokenize splits text into argument words. A double-quoted span becomes one
// token with the quotes stripped and inner whitespace kept.
func Tokenize(text string) []string {
	matches := tokenRegex.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			tokens = append(tokens, m[1])
		} else {
			tokens = append(tokens, m[0])
		}
	}
	return tokens
}

// SplitCommand separates the command word from the rest of the text. rest is
// empty when content holds no space.
func SplitCommand(content string) (name, rest string) {
	name, rest, _ = strings.Cut(content, " ")
	return name, rest
}
