package core

import (
	"testing"
	"time"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/command/commandtest"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T) *commandtest.Env {
	t.Helper()
	env := commandtest.NewEnv(t)
	for _, c := range []*command.Command{Ping(), Help(), Prefix(), History()} {
		command.RegisterTo(env.Registry, c)
	}
	return env
}

func TestPing(t *testing.T) {
	env := newEnv(t)

	matched, err := env.RunText(t, env.Message("g1", "u1"), "ping", "")
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "pong", env.Recorder.Last(t).Embed.Description)

	_, err = env.RunText(t, env.Message("g1", "u1"), "ping", `"hello there"`)
	require.NoError(t, err)
	assert.Equal(t, "pong hello there", env.Recorder.Last(t).Embed.Description)

	_, err = env.RunOptions(t, env.Slash("g1", "u1"), "ping", args.Option{Name: "text", Value: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "pong hi", env.Recorder.Last(t).Embed.Description)
}

func TestHelp_ListsCommands(t *testing.T) {
	env := newEnv(t)

	_, err := env.RunText(t, env.Message("g1", "u1"), "help", "")
	require.NoError(t, err)

	desc := env.Recorder.Last(t).Embed.Description
	assert.Contains(t, desc, "`!ping` - Check that the bot answers")
	assert.Contains(t, desc, "`!prefix`")
	assert.Contains(t, desc, "**⚙️ Settings**")
}

func TestHelp_SingleCommand(t *testing.T) {
	env := newEnv(t)

	_, err := env.RunOptions(t, env.Slash("g1", "u1"), "help", args.Option{Name: "command", Value: "prefix"})
	require.NoError(t, err)

	desc := env.Recorder.Last(t).Embed.Description
	assert.Contains(t, desc, "`/prefix show`")
	assert.Contains(t, desc, "`/prefix set <prefix>`")
	assert.Contains(t, desc, "`/prefix reset`")

	_, err = env.RunText(t, env.Message("g1", "u1"), "help", "nope")
	require.NoError(t, err)
	reply := env.Recorder.Last(t)
	assert.True(t, reply.Ephemeral)
	assert.Contains(t, reply.Embed.Description, "Unknown command")
}

func TestPrefix(t *testing.T) {
	env := newEnv(t)
	ctx := env.Message("g1", "u1")

	_, err := env.RunText(t, ctx, "prefix", "show")
	require.NoError(t, err)
	assert.Contains(t, env.Recorder.Last(t).Embed.Description, "default prefixes: `!`")

	_, err = env.RunText(t, ctx, "prefix", "set ?")
	require.NoError(t, err)
	got, err := env.Storage.GetPrefixes("g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"?"}, got)

	_, err = env.RunText(t, ctx, "prefix", "set waytoolongprefix")
	require.NoError(t, err)
	assert.True(t, env.Recorder.Last(t).Ephemeral)

	_, err = env.RunText(t, ctx, "prefix", "reset")
	require.NoError(t, err)
	got, err = env.Storage.GetPrefixes("g1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrefix_SetWithoutValueDoesNotMatch(t *testing.T) {
	env := newEnv(t)

	matched, err := env.RunText(t, env.Message("g1", "u1"), "prefix", "set")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestHistory(t *testing.T) {
	env := newEnv(t)
	now := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	for i, user := range []string{"1", "2", "1"} {
		require.NoError(t, env.Storage.AppendCommandToHistory("g1", storage.CommandHistoryRecord{
			UserID:   user,
			Username: "user-" + user,
			Command:  "ping",
			Param:    "",
			Datetime: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	_, err := env.RunText(t, env.Message("g1", "u1"), "history", "1 1")
	require.NoError(t, err)
	desc := env.Recorder.Last(t).Embed.Description
	assert.Equal(t, "`2026-01-02 03:06` **user-1** used `ping`", desc)

	_, err = env.RunText(t, env.Message("g2", "u1"), "history", "")
	require.NoError(t, err)
	assert.True(t, env.Recorder.Last(t).Ephemeral)
}
