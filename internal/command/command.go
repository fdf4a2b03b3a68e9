package command

import (
	"context"

	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"
)

// DiscordMeta is exposed by Discord commands so middleware and help can read
// Category/Permissions without depending on the concrete command type.
type DiscordMeta interface {
	Category() string
	UserPermissions() []int64
}

// HandlerFunc runs one resolved path of a Discord command.
type HandlerFunc func(ctx context.Context, c *Context, a args.Values) error

// Command is a Discord command: a named argument tree plus a handler per
// resolvable path.
type Command struct {
	CommandName        string
	CommandDescription string
	CategoryName       string
	Permissions        []int64
	Tree               *args.Tree
	Handlers           map[args.HandlerID]HandlerFunc
}

// Definition adapts c to cmd.Definition, routing the Discord context to
// the handlers. Invocations that do not carry a *Context are ignored.
func (c *Command) Definition() *Definition {
	handlers := make(map[args.HandlerID]cmd.HandlerFunc, len(c.Handlers))
	for id, h := range c.Handlers {
		h := h
		handlers[id] = func(ctx context.Context, inv *cmd.Invocation) error {
			dc, ok := FromInvocation(inv)
			if !ok {
				return nil
			}
			return h(ctx, dc, inv.Args)
		}
	}
	return &Definition{
		Definition: cmd.Definition{
			CommandName:        c.CommandName,
			CommandDescription: c.CommandDescription,
			Tree:               c.Tree,
			Handlers:           handlers,
		},
		category:    c.CategoryName,
		permissions: c.Permissions,
	}
}

// Definition is a cmd.Definition that also implements DiscordMeta.
type Definition struct {
	cmd.Definition
	category    string
	permissions []int64
}

func (d *Definition) Category() string         { return d.category }
func (d *Definition) UserPermissions() []int64 { return d.permissions }

// Register registers c with the universal registry and applies middlewares.
func Register(c *Command, mws ...cmd.Middleware) {
	RegisterTo(cmd.DefaultRegistry, c, mws...)
}

func RegisterTo(r *cmd.Registry, c *Command, mws ...cmd.Middleware) {
	r.Register(cmd.Apply(c.Definition(), mws...))
}

// CategoryOf returns the category of a registered command, looking through
// middleware wrappers.
func CategoryOf(c cmd.Command) string {
	if meta, ok := cmd.Root(c).(DiscordMeta); ok && meta.Category() != "" {
		return meta.Category()
	}
	return "General"
}
