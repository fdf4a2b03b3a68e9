package middleware

import (
	"context"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/pkg/cmd"
)

// WithGuildOnly wraps a command to enforce guild-only access
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if dc, ok := command.FromInvocation(inv); ok && dc.GuildID() == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
