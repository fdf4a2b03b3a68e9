package middleware

import (
	"context"
	"sync"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/pkg/cmd"

	"golang.org/x/time/rate"
)

// userLimiters hands out one token bucket per user.
type userLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (u *userLimiters) get(userID string, cfg *config.Config) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.limiters[userID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(cfg.CommandRate), cfg.CommandBurst)
		u.limiters[userID] = l
	}
	return l
}

// WithRateLimit throttles each user of the wrapped command to COMMAND_RATE
// invocations per second with bursts of COMMAND_BURST.
func WithRateLimit() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		limiters := &userLimiters{limiters: make(map[string]*rate.Limiter)}
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			dc, ok := command.FromInvocation(inv)
			if !ok || dc.Config == nil || dc.Config.CommandRate <= 0 {
				return c.Run(ctx, inv)
			}
			if !limiters.get(dc.Author().ID, dc.Config).Allow() {
				_ = dc.ReplyEphemeral("You're using this command too fast. Try again in a moment.")
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
