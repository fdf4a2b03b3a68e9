package core

import (
	"context"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"
)

func Ping() *command.Command {
	return &command.Command{
		CommandName:        "ping",
		CommandDescription: "Check that the bot answers",
		CategoryName:       "🛠️ Maintenance",
		Tree: args.MustTree("ping",
			args.Arg("text", args.KindString, false).WithDescription("Text to echo back"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"ping": runPing,
		},
	}
}

func runPing(_ context.Context, c *command.Context, a args.Values) error {
	reply := "pong"
	if text, ok := a.String("text"); ok {
		reply += " " + text
	}
	return c.Reply("", reply)
}

func init() {
	command.Register(Ping(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
