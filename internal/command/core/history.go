package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"

	"github.com/bwmarrin/discordgo"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

func History() *command.Command {
	return &command.Command{
		CommandName:        "history",
		CommandDescription: "Show recently used commands",
		CategoryName:       "🛡️ Moderation",
		Permissions:        []int64{discordgo.PermissionManageMessages},
		Tree: args.MustTree("history",
			args.Arg("user", args.KindUser, false).WithDescription("Only commands of this user"),
			args.Arg("limit", args.KindInteger, false).WithDescription("How many entries to show"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"history": runHistory,
		},
	}
}

func runHistory(_ context.Context, c *command.Context, a args.Values) error {
	records, err := c.Storage.FetchCommandHistory(c.GuildID())
	if err != nil {
		return fmt.Errorf("failed to fetch command history: %w", err)
	}

	limit := defaultHistoryLimit
	if n, ok := a.Int("limit"); ok {
		limit = min(max(int(n), 1), maxHistoryLimit)
	}
	user, byUser := a.User("user")

	var lines []string
	for i := len(records) - 1; i >= 0 && len(lines) < limit; i-- {
		r := records[i]
		if byUser && r.UserID != strconv.FormatUint(uint64(user), 10) {
			continue
		}
		line := fmt.Sprintf("`%s` **%s** used `%s`", r.Datetime.Format("2006-01-02 15:04"), r.Username, r.Command)
		if r.Param != "" {
			line += fmt.Sprintf(" `%s`", r.Param)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return c.ReplyEphemeral("No commands recorded yet.")
	}
	return c.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "Command history",
		Description: strings.Join(lines, "\n"),
	})
}

func init() {
	command.Register(History(),
		middleware.WithGuildOnly(),
		middleware.WithUserPermissionCheck(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
