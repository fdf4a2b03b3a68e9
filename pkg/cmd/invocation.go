// Package cmd provides a transport-agnostic command core: a command is something
// with a name, a description, an argument tree and Run(ctx, invocation). How it
// is registered and dispatched (Discord slash, text prefix, CLI) is defined by
// adapters that wrap this.
package cmd

import (
	"context"

	"github.com/keshon/slashy/pkg/args"
)

// Invocation carries what any command runner passes after resolution: the
// handler picked from the argument tree, its arguments, and an opaque
// payload. Adapters set Data to their context (e.g. *discordgo.Session +
// event, or a CLI writer).
type Invocation struct {
	ID      string
	Handler args.HandlerID
	Args    args.Values
	Data    interface{}
}

// Command is the universal contract: identity, argument tree and execution.
// Permissions and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Arguments() *args.Tree
	Run(ctx context.Context, inv *Invocation) error
}
