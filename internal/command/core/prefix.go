package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"

	"github.com/bwmarrin/discordgo"
)

const (
	prefixShow  args.HandlerID = "show"
	prefixSet   args.HandlerID = "set"
	prefixReset args.HandlerID = "reset"
)

func Prefix() *command.Command {
	return &command.Command{
		CommandName:        "prefix",
		CommandDescription: "Show or change the text command prefix",
		CategoryName:       "⚙️ Settings",
		Permissions:        []int64{discordgo.PermissionManageGuild},
		Tree: args.MustTree("",
			args.SubCommand("show", false, prefixShow).WithDescription("Show the prefixes in use"),
			args.SubCommand("set", false, prefixSet,
				args.Arg("prefix", args.KindString, true).WithDescription("New prefix, up to 8 characters"),
			).WithDescription("Replace the prefixes with a single one"),
			args.SubCommand("reset", false, prefixReset).WithDescription("Go back to the default prefixes"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			prefixShow:  showPrefix,
			prefixSet:   setPrefix,
			prefixReset: resetPrefix,
		},
	}
}

func showPrefix(_ context.Context, c *command.Context, _ args.Values) error {
	prefixes, err := c.Storage.GetPrefixes(c.GuildID())
	if err != nil {
		return fmt.Errorf("failed to get prefixes: %w", err)
	}
	source := "custom"
	if len(prefixes) == 0 {
		prefixes, source = c.Config.Prefixes, "default"
	}
	return c.Reply("Prefix", fmt.Sprintf("Current %s prefixes: `%s`", source, strings.Join(prefixes, "`, `")))
}

func setPrefix(_ context.Context, c *command.Context, a args.Values) error {
	prefix, _ := a.String("prefix")
	if err := c.Storage.SetPrefixes(c.GuildID(), []string{prefix}); err != nil {
		return c.ReplyEphemeral(fmt.Sprintf("Can't use that prefix: %v", err))
	}
	return c.Reply("Prefix", fmt.Sprintf("Prefix set to `%s`.", prefix))
}

func resetPrefix(_ context.Context, c *command.Context, _ args.Values) error {
	if err := c.Storage.ResetPrefixes(c.GuildID()); err != nil {
		return fmt.Errorf("failed to reset prefixes: %w", err)
	}
	return c.Reply("Prefix", fmt.Sprintf("Prefixes reset to `%s`.", strings.Join(c.Config.Prefixes, "`, `")))
}

func init() {
	command.Register(Prefix(),
		middleware.WithGuildOnly(),
		middleware.WithUserPermissionCheck(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
