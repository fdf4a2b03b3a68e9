package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree_Validation(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  error
	}{
		{
			name:  "required after optional",
			nodes: []Node{Arg("a", KindInteger, true), Arg("b", KindString, false), Arg("c", KindString, true)},
			want:  ErrRequiredAfterOptional,
		},
		{
			name: "required after optional in nested list",
			nodes: []Node{SubCommand("x", false, "x",
				Arg("a", KindInteger, false), Arg("b", KindInteger, true),
			)},
			want: ErrRequiredAfterOptional,
		},
		{
			name:  "duplicate sibling",
			nodes: []Node{Arg("a", KindInteger, true), Arg("a", KindString, true)},
			want:  ErrDuplicateName,
		},
		{
			name:  "empty name",
			nodes: []Node{Arg("", KindInteger, true)},
			want:  ErrInvalidNode,
		},
		{
			name:  "choices on boolean",
			nodes: []Node{Arg("b", KindBoolean, true).WithChoices(Choice{Name: "yes", Value: Boolean(true)})},
			want:  ErrInvalidNode,
		},
		{
			name:  "choice kind mismatch",
			nodes: []Node{Arg("n", KindInteger, true).WithChoices(Choice{Name: "one", Value: String("1")})},
			want:  ErrInvalidNode,
		},
		{
			name:  "leaf with handler",
			nodes: []Node{{Kind: LeafNode, Name: "a", Type: KindString, Handler: "h"}},
			want:  ErrInvalidNode,
		},
		{
			name:  "leaf without type",
			nodes: []Node{{Kind: LeafNode, Name: "a"}},
			want:  ErrInvalidNode,
		},
		{
			name:  "unknown node kind",
			nodes: []Node{{Name: "a"}},
			want:  ErrInvalidNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTree("h", tt.nodes...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewTree_Valid(t *testing.T) {
	tree, err := NewTree("grid",
		Arg("size", KindInteger, true).WithChoices(
			Choice{Name: "small", Value: Integer(1)},
			Choice{Name: "medium", Value: Integer(5)},
			Choice{Name: "large", Value: Integer(12)},
		),
		Arg("fill", KindString, false),
	)
	require.NoError(t, err)
	assert.Equal(t, HandlerID("grid"), tree.Handler)
	assert.Len(t, tree.Children, 2)
}

func TestMustTree_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustTree("", Arg("a", KindString, false), Arg("b", KindString, true))
	})
}

func TestUsage(t *testing.T) {
	assert.Equal(t, []string{
		"stats get points <user>",
		"stats get leaderboard [page:default]",
		"stats self",
	}, Usage("stats", statsTree(t)))

	assert.Equal(t, []string{"add <a> <b>"}, Usage("add", MustTree("add", Arg("a", KindInteger, true), Arg("b", KindInteger, true))))
	assert.Equal(t, []string{"ping"}, Usage("ping", MustTree("ping")))
}
