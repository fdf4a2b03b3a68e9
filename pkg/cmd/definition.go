package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/slashy/pkg/args"
)

// ErrUnknownHandler is returned when an invocation names a handler the
// command does not have.
var ErrUnknownHandler = errors.New("unknown handler")

// HandlerFunc runs one resolved path of a command.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Definition is a Command assembled from parts. Run routes inv.Handler
// through Handlers.
type Definition struct {
	CommandName        string
	CommandDescription string
	Tree               *args.Tree
	Handlers           map[args.HandlerID]HandlerFunc
}

func (d *Definition) Name() string          { return d.CommandName }
func (d *Definition) Description() string   { return d.CommandDescription }
func (d *Definition) Arguments() *args.Tree { return d.Tree }

func (d *Definition) Run(ctx context.Context, inv *Invocation) error {
	h, ok := d.Handlers[inv.Handler]
	if !ok {
		return fmt.Errorf("%s: %w %q", d.CommandName, ErrUnknownHandler, inv.Handler)
	}
	return h(ctx, inv)
}
