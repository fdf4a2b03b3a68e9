package middleware

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"
)

// WithCommandLogger wraps a command to log its execution
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			dc, ok := command.FromInvocation(inv)
			if !ok || dc.Storage == nil || dc.GuildID() == "" {
				return err
			}

			user := dc.Author()
			channelName, guildName := lookupNames(dc)
			rec := storage.CommandHistoryRecord{
				InvocationID: inv.ID,
				ChannelID:    dc.ChannelID(),
				ChannelName:  channelName,
				GuildName:    guildName,
				UserID:       user.ID,
				Username:     user.Username,
				Command:      c.Name(),
				Handler:      string(inv.Handler),
				Param:        FormatArgs(inv.Args),
				Source:       dc.Source(),
				Datetime:     time.Now(),
			}
			if e := dc.Storage.AppendCommandToHistory(dc.GuildID(), rec); e != nil {
				log.Printf("[WARN] Failed to log command %s: %v", c.Name(), e)
			}
			return err
		})
	}
}

// FormatArgs renders values as "name=value" pairs sorted by name.
func FormatArgs(v args.Values) string {
	if len(v) == 0 {
		return ""
	}
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + v[name].String()
	}
	return strings.Join(parts, " ")
}

// lookupNames resolves channel and guild names from the session state only.
func lookupNames(dc *command.Context) (channelName, guildName string) {
	if dc.Session == nil || dc.Session.State == nil {
		return "", ""
	}
	if ch, err := dc.Session.State.Channel(dc.ChannelID()); err == nil && ch != nil {
		channelName = ch.Name
	}
	if g, err := dc.Session.State.Guild(dc.GuildID()); err == nil && g != nil {
		guildName = g.Name
	}
	return channelName, guildName
}
