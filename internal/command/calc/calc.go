// Package calc holds small arithmetic and drawing commands.
package calc

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"
)

var addTree = args.MustTree("add",
	args.Arg("a", args.KindInteger, true).WithDescription("First number"),
	args.Arg("b", args.KindInteger, true).WithDescription("Second number"),
)

func Add() *command.Command {
	return &command.Command{
		CommandName:        "add",
		CommandDescription: "Add two whole numbers",
		CategoryName:       "🧮 Tools",
		Tree:               addTree,
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"add": runAdd,
		},
	}
}

func runAdd(_ context.Context, c *command.Context, a args.Values) error {
	x, okA := a.Int("a")
	y, okB := a.Int("b")
	if !okA || !okB {
		return c.ReplyEphemeral("Usage: `" + strings.Join(args.Usage("add", addTree), "`, `") + "`")
	}
	return c.Reply("", fmt.Sprintf("%d + %d = %d", x, y, int64(x)+int64(y)))
}

func Grid() *command.Command {
	return &command.Command{
		CommandName:        "grid",
		CommandDescription: "Draw a square grid",
		CategoryName:       "🧮 Tools",
		Tree: args.MustTree("grid",
			args.Arg("size", args.KindInteger, true).WithChoices(
				args.Choice{Name: "small", Value: args.Integer(1)},
				args.Choice{Name: "medium", Value: args.Integer(5)},
				args.Choice{Name: "large", Value: args.Integer(12)},
			).WithDescription("Grid size"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"grid": runGrid,
		},
	}
}

const maxGridSize = 12

// renderGrid draws size rows of size cells.
func renderGrid(size int) string {
	row := strings.TrimSuffix(strings.Repeat("■ ", size), " ")
	rows := make([]string, size)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func runGrid(_ context.Context, c *command.Context, a args.Values) error {
	size, _ := a.Int("size")
	if size < 1 || size > maxGridSize {
		return c.ReplyEphemeral(fmt.Sprintf("Size must be between 1 and %d.", maxGridSize))
	}
	return c.Reply(fmt.Sprintf("%d×%d", size, size), "```\n"+renderGrid(int(size))+"\n```")
}

func init() {
	command.Register(Add(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
	command.Register(Grid(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
