package args

import (
	"errors"
	"fmt"
)

var (
	ErrRequiredAfterOptional = errors.New("required argument after optional")
	ErrInvalidNode           = errors.New("invalid argument node")
	ErrDuplicateName         = errors.New("duplicate argument name")
)

// HandlerID identifies the function a resolved path should run. The engine
// only selects it; callers map it to code. The zero value means no handler.
type HandlerID string

// NodeKind discriminates the Node variants.
type NodeKind uint8

const (
	// LeafNode is a typed argument.
	LeafNode NodeKind = iota + 1
	// SubCommandNode is a single path, registered as a slash subcommand.
	SubCommandNode
	// SubCommandGroupNode groups paths, registered as a slash subcommand group.
	// It resolves exactly like SubCommandNode.
	SubCommandGroupNode
)

// Choice is a named literal offered for a String or Integer leaf.
type Choice struct {
	Name  string
	Value Value
}

// Node is one entry of a sibling list in the argument tree.
type Node struct {
	Kind        NodeKind
	Name        string
	Description string
	Required    bool

	// Leaf only.
	Type    Kind
	Choices []Choice

	// SubCommand and SubCommandGroup only.
	Handler  HandlerID
	Children []Node
}

// Arg declares a typed leaf argument.
func Arg(name string, kind Kind, required bool) Node {
	return Node{Kind: LeafNode, Name: name, Type: kind, Required: required}
}

// SubCommand declares a single path. handler may be empty.
func SubCommand(name string, required bool, handler HandlerID, children ...Node) Node {
	return Node{Kind: SubCommandNode, Name: name, Required: required, Handler: handler, Children: children}
}

// SubCommandGroup declares a group of paths. handler may be empty.
func SubCommandGroup(name string, required bool, handler HandlerID, children ...Node) Node {
	return Node{Kind: SubCommandGroupNode, Name: name, Required: required, Handler: handler, Children: children}
}

func (n Node) WithDescription(description string) Node {
	n.Description = description
	return n
}

func (n Node) WithChoices(choices ...Choice) Node {
	n.Choices = append([]Choice(nil), choices...)
	return n
}

// IsGroup reports whether n routes to further nodes rather than holding a value.
func (n Node) IsGroup() bool {
	return n.Kind == SubCommandNode || n.Kind == SubCommandGroupNode
}

// Tree is the root of a command's argument space. It behaves like a group
// without a name that is never matched against input.
//
// A Tree is immutable once built by NewTree and safe to share.
type Tree struct {
	Handler  HandlerID
	Children []Node
}

// NewTree builds and validates a tree. Within every sibling list no required
// node may follow an optional one; resolution relies on this and never
// checks it again.
func NewTree(handler HandlerID, children ...Node) (*Tree, error) {
	if err := validateSiblings("", children); err != nil {
		return nil, err
	}
	return &Tree{Handler: handler, Children: children}, nil
}

// MustTree is NewTree for package-level command declarations.
func MustTree(handler HandlerID, children ...Node) *Tree {
	t, err := NewTree(handler, children...)
	if err != nil {
		panic(err)
	}
	return t
}

func validateSiblings(path string, nodes []Node) error {
	optionalSeen := ""
	names := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		at := n.Name
		if path != "" {
			at = path + " " + n.Name
		}
		if n.Name == "" {
			return fmt.Errorf("%w: empty name under %q", ErrInvalidNode, path)
		}
		if _, ok := names[n.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, at)
		}
		names[n.Name] = struct{}{}

		if n.Required && optionalSeen != "" {
			return fmt.Errorf("%w: %q follows optional %q", ErrRequiredAfterOptional, at, optionalSeen)
		}
		if !n.Required && optionalSeen == "" {
			optionalSeen = n.Name
		}

		switch n.Kind {
		case LeafNode:
			if err := validateLeaf(at, n); err != nil {
				return err
			}
		case SubCommandNode, SubCommandGroupNode:
			if n.Type != 0 || len(n.Choices) > 0 {
				return fmt.Errorf("%w: %q is a subcommand and cannot carry a type or choices", ErrInvalidNode, at)
			}
			if err := validateSiblings(at, n.Children); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q has unknown node kind %d", ErrInvalidNode, at, n.Kind)
		}
	}
	return nil
}

func validateLeaf(at string, n Node) error {
	if n.Type < KindString || n.Type > KindRole {
		return fmt.Errorf("%w: %q has unknown type %s", ErrInvalidNode, at, n.Type)
	}
	if n.Handler != "" || len(n.Children) > 0 {
		return fmt.Errorf("%w: argument %q cannot carry a handler or children", ErrInvalidNode, at)
	}
	if len(n.Choices) == 0 {
		return nil
	}
	if n.Type != KindString && n.Type != KindInteger {
		return fmt.Errorf("%w: choices on %s argument %q", ErrInvalidNode, n.Type, at)
	}
	for _, c := range n.Choices {
		if c.Value.Kind() != n.Type {
			return fmt.Errorf("%w: choice %q of %q is %s, want %s", ErrInvalidNode, c.Name, at, c.Value.Kind(), n.Type)
		}
	}
	return nil
}
