// Package args resolves command invocations against a static argument tree.
// Two sources are supported: structured options delivered by a slash command
// interaction, and raw text typed after a prefix. Both walks read the shared
// tree only and allocate a fresh Values map per call, so a Tree may be used
// from any number of goroutines at once.
package args

import (
	"fmt"
	"strconv"
)

// Kind is the type of a leaf argument and of the Value it produces.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInteger
	KindBoolean
	KindUser
	KindChannel
	KindRole
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindUser:
		return "user"
	case KindChannel:
		return "channel"
	case KindRole:
		return "role"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Platform entity ids.
type (
	UserID    uint64
	ChannelID uint64
	RoleID    uint64
)

// Value is an immutable typed argument. Values are comparable with ==;
// two values are equal when both the kind and the payload match.
type Value struct {
	kind    Kind
	text    string
	integer int32
	boolean bool
	id      uint64
}

func String(s string) Value        { return Value{kind: KindString, text: s} }
func Integer(i int32) Value        { return Value{kind: KindInteger, integer: i} }
func Boolean(b bool) Value         { return Value{kind: KindBoolean, boolean: b} }
func User(id UserID) Value         { return Value{kind: KindUser, id: uint64(id)} }
func Channel(id ChannelID) Value   { return Value{kind: KindChannel, id: uint64(id)} }
func Role(id RoleID) Value         { return Value{kind: KindRole, id: uint64(id)} }
func (v Value) Kind() Kind         { return v.kind }
func (v Value) IsZero() bool       { return v.kind == 0 }
func (v Value) Equal(o Value) bool { return v == o }

func (v Value) AsString() (string, bool) { return v.text, v.kind == KindString }
func (v Value) AsInt() (int32, bool)     { return v.integer, v.kind == KindInteger }
func (v Value) AsBool() (bool, bool)     { return v.boolean, v.kind == KindBoolean }
func (v Value) AsUser() (UserID, bool)   { return UserID(v.id), v.kind == KindUser }
func (v Value) AsRole() (RoleID, bool)   { return RoleID(v.id), v.kind == KindRole }

func (v Value) AsChannel() (ChannelID, bool) {
	return ChannelID(v.id), v.kind == KindChannel
}

// String renders the payload the way a user would type it.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.text
	case KindInteger:
		return strconv.FormatInt(int64(v.integer), 10)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindUser, KindChannel, KindRole:
		return strconv.FormatUint(v.id, 10)
	default:
		return ""
	}
}

// GoString is used by %#v and keeps test failure output readable.
func (v Value) GoString() string {
	if v.kind == 0 {
		return "args.Value{}"
	}
	return fmt.Sprintf("%s(%q)", v.kind, v.String())
}

// Values maps argument names to resolved values.
type Values map[string]Value

func (m Values) Get(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

func (m Values) String(name string) (string, bool) { return m[name].AsString() }
func (m Values) Int(name string) (int32, bool)     { return m[name].AsInt() }
func (m Values) Bool(name string) (bool, bool)     { return m[name].AsBool() }
func (m Values) User(name string) (UserID, bool)   { return m[name].AsUser() }
func (m Values) Role(name string) (RoleID, bool)   { return m[name].AsRole() }

func (m Values) Channel(name string) (ChannelID, bool) { return m[name].AsChannel() }
