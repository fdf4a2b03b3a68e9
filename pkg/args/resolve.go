package args

// Source is the input a command was invoked with. It is either
// OptionSource or TextSource.
type Source interface {
	isSource()
}

// OptionSource carries the structured options of a slash command interaction.
type OptionSource struct {
	Options []Option
}

// TextSource carries the text that followed the command word of a text
// command, without the prefix and the command word itself.
type TextSource struct {
	Text string
}

func (OptionSource) isSource() {}
func (TextSource) isSource()   {}

// Resolution is the handler to run and the arguments to run it with.
type Resolution struct {
	Handler HandlerID
	Args    Values
}

// Resolve selects the handler and arguments for src. It reports false when
// nothing in tree matches.
//
// When a required node cannot be satisfied, or the matched path carries no
// handler, the whole walk is discarded: the tree's own handler is returned
// with empty arguments if it has one, otherwise there is no match. Both
// sources follow this rule.
func Resolve(src Source, tree *Tree) (Resolution, bool) {
	if tree == nil {
		return Resolution{}, false
	}
	switch s := src.(type) {
	case OptionSource:
		return resolveOptions(s.Options, tree)
	case TextSource:
		return resolveText(s.Text, tree)
	}
	return Resolution{}, false
}

func rootOnly(tree *Tree) (Resolution, bool) {
	if tree.Handler == "" {
		return Resolution{}, false
	}
	return Resolution{Handler: tree.Handler, Args: Values{}}, true
}

func finish(tree *Tree, values Values, handler HandlerID, ok bool) (Resolution, bool) {
	if !ok || handler == "" {
		return rootOnly(tree)
	}
	return Resolution{Handler: handler, Args: values}, true
}
