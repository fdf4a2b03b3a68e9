package args

import (
	"encoding/json"
	"math"
	"strconv"
)

// Option is one entry of a structured option tree as a platform delivers it.
// Value holds the decoded payload: string, bool, a number (float64 from JSON,
// or any Go integer type), or json.Number. Entity ids may arrive either as
// numbers or as decimal strings.
type Option struct {
	Name    string
	Value   any
	Options []Option
}

// Flatten lays an option tree out depth first: each option is followed by
// its children. The chosen subcommand path thus precedes its arguments.
func Flatten(options []Option) []Option {
	var out []Option
	for _, o := range options {
		out = appendFlat(out, o)
	}
	return out
}

func appendFlat(out []Option, o Option) []Option {
	out = append(out, Option{Name: o.Name, Value: o.Value})
	for _, child := range o.Options {
		out = appendFlat(out, child)
	}
	return out
}

// resolveOptions walks tree against structured options.
func resolveOptions(options []Option, tree *Tree) (Resolution, bool) {
	flat := Flatten(options)
	if len(flat) == 0 || len(tree.Children) == 0 {
		return rootOnly(tree)
	}

	w := &optionWalker{options: flat, values: make(Values)}
	handler, ok := w.walk(tree.Children, tree.Handler)
	return finish(tree, w.values, handler, ok)
}

type optionWalker struct {
	options []Option
	pos     int
	values  Values
}

// walk matches one sibling list against the option cursor. It returns the
// best handler found so far, or false when a required node is unmet.
func (w *optionWalker) walk(nodes []Node, handler HandlerID) (HandlerID, bool) {
	for _, n := range nodes {
		if w.pos >= len(w.options) {
			if n.Required {
				return "", false
			}
			continue
		}
		cur := w.options[w.pos]
		if cur.Name != n.Name {
			if n.Required {
				return "", false
			}
			continue
		}

		if !n.IsGroup() {
			v, ok := extract(n.Type, cur.Value)
			if !ok {
				if n.Required {
					return "", false
				}
				continue
			}
			w.values[n.Name] = v
			w.pos++
			continue
		}

		w.pos++
		handler = n.Handler
		if len(n.Children) > 0 {
			var ok bool
			if handler, ok = w.walk(n.Children, handler); !ok {
				return "", false
			}
		}
	}
	return handler, true
}

// extract converts a structured payload into a Value of kind.
func extract(kind Kind, raw any) (Value, bool) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, false
		}
		return String(s), true
	case KindInteger:
		i, ok := toInt64(raw)
		if !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return Value{}, false
		}
		return Integer(int32(i)), true
	case KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, false
		}
		return Boolean(b), true
	case KindUser, KindChannel, KindRole:
		id, ok := toID(raw)
		if !ok {
			return Value{}, false
		}
		switch kind {
		case KindUser:
			return User(UserID(id)), true
		case KindChannel:
			return Channel(ChannelID(id)), true
		default:
			return Role(RoleID(id)), true
		}
	}
	return Value{}, false
}

func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func toID(raw any) (uint64, bool) {
	switch n := raw.(type) {
	case string:
		id, err := strconv.ParseUint(n, 10, 64)
		return id, err == nil
	case uint64:
		return n, true
	case json.Number:
		id, err := strconv.ParseUint(n.String(), 10, 64)
		return id, err == nil
	}
	i, ok := toInt64(raw)
	if !ok || i < 0 {
		return 0, false
	}
	return uint64(i), true
}
