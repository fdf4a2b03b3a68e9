package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"
)

func Help() *command.Command {
	return &command.Command{
		CommandName:        "help",
		CommandDescription: "Get a list of available commands",
		CategoryName:       "🕯️ Information",
		Tree: args.MustTree("help",
			args.Arg("command", args.KindString, false).WithDescription("Show usage of a single command"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"help": runHelp,
		},
	}
}

func runHelp(_ context.Context, c *command.Context, a args.Values) error {
	registry := c.Registry
	if registry == nil {
		registry = cmd.DefaultRegistry
	}
	lead := "/"
	if c.Source() == command.SourceText {
		lead = c.Prefix
	}

	if name, ok := a.String("command"); ok {
		found := registry.Get(strings.ToLower(name))
		if found == nil {
			return c.ReplyEphemeral(fmt.Sprintf("Unknown command `%s`.", name))
		}
		return c.Reply(found.Name(), found.Description()+"\n\n"+usageBlock(lead, found))
	}

	return c.Reply("Help", buildHelpByCategory(lead, registry.GetAll()))
}

func usageBlock(lead string, c cmd.Command) string {
	var sb strings.Builder
	for _, line := range args.Usage(c.Name(), c.Arguments()) {
		sb.WriteString(fmt.Sprintf("`%s%s`\n", lead, line))
	}
	return sb.String()
}

func buildHelpByCategory(lead string, all []cmd.Command) string {
	byCategory := make(map[string][]cmd.Command)
	for _, c := range all {
		cat := command.CategoryOf(c)
		byCategory[cat] = append(byCategory[cat], c)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		for _, c := range byCategory[cat] {
			sb.WriteString(fmt.Sprintf("`%s%s` - %s\n", lead, c.Name(), c.Description()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	command.Register(Help(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
