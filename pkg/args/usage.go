package args

import "strings"

// Usage renders one line per resolvable path of tree, prefixed with name.
// Required arguments render as <arg>, optional ones as [arg], and arguments
// with choices list the choice names: <size:small|medium|large>.
func Usage(name string, tree *Tree) []string {
	if tree == nil {
		return []string{name}
	}
	var lines []string
	if tree.Handler != "" || len(tree.Children) == 0 {
		lines = append(lines, strings.TrimSpace(name+" "+leafUsage(tree.Children)))
	}
	return append(lines, pathUsage(name, tree.Children)...)
}

func pathUsage(prefix string, nodes []Node) []string {
	var lines []string
	for _, n := range nodes {
		if !n.IsGroup() {
			continue
		}
		path := prefix + " " + n.Name
		if n.Handler != "" {
			lines = append(lines, strings.TrimSpace(path+" "+leafUsage(n.Children)))
		}
		lines = append(lines, pathUsage(path, n.Children)...)
	}
	return lines
}

func leafUsage(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.IsGroup() {
			continue
		}
		label := n.Name
		if len(n.Choices) > 0 {
			names := make([]string, len(n.Choices))
			for i, c := range n.Choices {
				names[i] = c.Name
			}
			label += ":" + strings.Join(names, "|")
		}
		if n.Required {
			parts = append(parts, "<"+label+">")
		} else {
			parts = append(parts, "["+label+"]")
		}
	}
	return strings.Join(parts, " ")
}
