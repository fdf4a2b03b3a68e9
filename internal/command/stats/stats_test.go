package stats

import (
	"testing"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/command/commandtest"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T, users ...string) *commandtest.Env {
	t.Helper()
	env := commandtest.NewEnv(t)
	command.RegisterTo(env.Registry, Stats())
	for _, u := range users {
		require.NoError(t, env.Storage.AppendCommandToHistory("g1", storage.CommandHistoryRecord{
			UserID:   u,
			Username: "user-" + u,
			Command:  "ping",
		}))
	}
	return env
}

func TestStats_Points(t *testing.T) {
	env := newEnv(t, "100", "100", "200")

	matched, err := env.RunText(t, env.Message("g1", "1"), "stats", "get points 100")
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "<@100> has **2** points.", env.Recorder.Last(t).Embed.Description)

	matched, err = env.RunOptions(t, env.Slash("g1", "1"), "stats",
		args.Option{Name: "get", Options: []args.Option{
			{Name: "points", Options: []args.Option{{Name: "user", Value: "200"}}},
		}},
	)
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "<@200> has **1** points.", env.Recorder.Last(t).Embed.Description)
}

func TestStats_Self(t *testing.T) {
	env := newEnv(t, "7", "7", "7")

	_, err := env.RunText(t, env.Message("g1", "7"), "stats", "get self")
	require.NoError(t, err)
	assert.Equal(t, "You have **3** points.", env.Recorder.Last(t).Embed.Description)
}

func TestStats_Leaderboard(t *testing.T) {
	env := newEnv(t, "1", "2", "2", "3", "3", "3")

	_, err := env.RunText(t, env.Message("g1", "1"), "stats", "get leaderboard")
	require.NoError(t, err)
	reply := env.Recorder.Last(t)
	assert.Equal(t, "Leaderboard (page 1)", reply.Embed.Title)
	assert.Equal(t, "1. **user-3** - 3\n2. **user-2** - 2\n3. **user-1** - 1\n", reply.Embed.Description)

	_, err = env.RunText(t, env.Message("g1", "1"), "stats", "get leaderboard 2")
	require.NoError(t, err)
	assert.True(t, env.Recorder.Last(t).Ephemeral)
}

func TestStats_NoMatch(t *testing.T) {
	env := newEnv(t)

	for _, text := range []string{"", "get", "get points", "get points someone"} {
		matched, err := env.RunText(t, env.Message("g1", "1"), "stats", text)
		require.NoError(t, err)
		assert.False(t, matched, text)
	}
}
