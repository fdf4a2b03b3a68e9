// Package stats ranks members by how many commands they ran recently.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"
)

const (
	pointsHandler      args.HandlerID = "points"
	leaderboardHandler args.HandlerID = "leaderboard"
	selfHandler        args.HandlerID = "self"

	pageSize = 10
)

func Stats() *command.Command {
	return &command.Command{
		CommandName:        "stats",
		CommandDescription: "Points earned by using commands",
		CategoryName:       "🎲 Gameplay",
		Tree: args.MustTree("",
			args.SubCommandGroup("get", false, "",
				args.SubCommand("points", false, pointsHandler,
					args.Arg("user", args.KindUser, true).WithDescription("Whose points to show"),
				).WithDescription("Get a user's points"),
				args.SubCommand("leaderboard", false, leaderboardHandler,
					args.Arg("page", args.KindInteger, false).WithDescription("Page number, starting at 1"),
				).WithDescription("Get the leaderboard"),
			).WithDescription("Look up points"),
			args.SubCommand("self", false, selfHandler).WithDescription("Show your own points"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			pointsHandler:      runPoints,
			leaderboardHandler: runLeaderboard,
			selfHandler:        runSelf,
		},
	}
}

type entry struct {
	UserID   string
	Username string
	Points   int
}

// tally counts one point per recorded command, highest first.
func tally(records []storage.CommandHistoryRecord) []entry {
	byUser := make(map[string]*entry)
	for _, r := range records {
		e, ok := byUser[r.UserID]
		if !ok {
			e = &entry{UserID: r.UserID}
			byUser[r.UserID] = e
		}
		e.Username = r.Username
		e.Points++
	}

	out := make([]entry, 0, len(byUser))
	for _, e := range byUser {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func pointsOf(c *command.Context, userID string) (int, error) {
	records, err := c.Storage.FetchCommandHistory(c.GuildID())
	if err != nil {
		return 0, fmt.Errorf("failed to fetch command history: %w", err)
	}
	n := 0
	for _, r := range records {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func runPoints(_ context.Context, c *command.Context, a args.Values) error {
	user, _ := a.User("user")
	id := strconv.FormatUint(uint64(user), 10)
	n, err := pointsOf(c, id)
	if err != nil {
		return err
	}
	return c.Reply("Points", fmt.Sprintf("<@%s> has **%d** points.", id, n))
}

func runSelf(_ context.Context, c *command.Context, _ args.Values) error {
	n, err := pointsOf(c, c.Author().ID)
	if err != nil {
		return err
	}
	return c.Reply("Points", fmt.Sprintf("You have **%d** points.", n))
}

func runLeaderboard(_ context.Context, c *command.Context, a args.Values) error {
	records, err := c.Storage.FetchCommandHistory(c.GuildID())
	if err != nil {
		return fmt.Errorf("failed to fetch command history: %w", err)
	}

	page := 1
	if p, ok := a.Int("page"); ok && p > 1 {
		page = int(p)
	}

	board := tally(records)
	start := (page - 1) * pageSize
	if start >= len(board) {
		return c.ReplyEphemeral(fmt.Sprintf("Page %d is empty.", page))
	}
	end := min(start+pageSize, len(board))

	var sb strings.Builder
	for i, e := range board[start:end] {
		sb.WriteString(fmt.Sprintf("%d. **%s** - %d\n", start+i+1, e.Username, e.Points))
	}
	return c.Reply(fmt.Sprintf("Leaderboard (page %d)", page), sb.String())
}

func init() {
	command.Register(Stats(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
