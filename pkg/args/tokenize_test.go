package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"quoted tail", `this is a string "with quotes in it"`, []string{"this", "is", "a", "string", "with quotes in it"}},
		{"quoted middle", `say "hello   world" twice`, []string{"say", "hello   world", "twice"}},
		{"unmatched quote", `say "hello world`, []string{"say", "hello", "world"}},
		{"empty quotes", `a "" b`, []string{"a", "b"}},
		{"extra whitespace", "  a \t b\n", []string{"a", "b"}},
		{"mentions and punctuation", "<@123> #general 1.5", []string{"<@123>", "#general", "1.5"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenize_Restartable(t *testing.T) {
	in := `x "y z" w`
	assert.Equal(t, Tokenize(in), Tokenize(in))
}

func TestSplitCommand(t *testing.T) {
	name, rest := SplitCommand("stats get points 100")
	assert.Equal(t, "stats", name)
	assert.Equal(t, "get points 100", rest)

	name, rest = SplitCommand("stats")
	assert.Equal(t, "stats", name)
	assert.Equal(t, "", rest)
}
