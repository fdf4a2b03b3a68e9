package args

// tokenStream is a peekable cursor over tokens.
type tokenStream struct {
	tokens []string
	pos    int
}

func (s *tokenStream) peek() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.pos], true
}

func (s *tokenStream) next() { s.pos++ }

// resolveText walks tree against the text that followed the command word.
func resolveText(text string, tree *Tree) (Resolution, bool) {
	if len(tree.Children) == 0 {
		return rootOnly(tree)
	}

	s := &tokenStream{tokens: Tokenize(text)}
	values := make(Values)
	handler, ok := walkText(s, tree.Children, values, tree.Handler)
	return finish(tree, values, handler, ok)
}

// walkText matches one sibling list against the token stream. A leaf that
// fails to parse leaves its token for the next sibling to examine.
func walkText(s *tokenStream, nodes []Node, values Values, handler HandlerID) (HandlerID, bool) {
	for _, n := range nodes {
		tok, present := s.peek()

		if !n.IsGroup() {
			if !present {
				if n.Required {
					return "", false
				}
				continue
			}
			v, err := Parse(n.Type, tok)
			if err != nil {
				if n.Required {
					return "", false
				}
				continue
			}
			values[n.Name] = v
			s.next()
			continue
		}

		if !present || tok != n.Name {
			if n.Required {
				return "", false
			}
			continue
		}
		s.next()
		handler = n.Handler
		if len(n.Children) > 0 {
			var ok bool
			if handler, ok = walkText(s, n.Children, values, handler); !ok {
				return "", false
			}
		}
	}
	return handler, true
}
