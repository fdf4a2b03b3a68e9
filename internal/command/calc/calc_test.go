package calc

import (
	"testing"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/command/commandtest"
	"github.com/keshon/slashy/pkg/args"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T) *commandtest.Env {
	t.Helper()
	env := commandtest.NewEnv(t)
	command.RegisterTo(env.Registry, Add())
	command.RegisterTo(env.Registry, Grid())
	return env
}

func TestAdd(t *testing.T) {
	env := newEnv(t)

	matched, err := env.RunText(t, env.Message("g1", "1"), "add", "2147483647 1")
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "2147483647 + 1 = 2147483648", env.Recorder.Last(t).Embed.Description)

	// A missing operand falls back to the bare root handler.
	matched, err = env.RunText(t, env.Message("g1", "1"), "add", "2")
	require.NoError(t, err)
	require.True(t, matched)
	reply := env.Recorder.Last(t)
	assert.True(t, reply.Ephemeral)
	assert.Equal(t, "Usage: `add <a> <b>`", reply.Embed.Description)
}

func TestGrid(t *testing.T) {
	env := newEnv(t)

	_, err := env.RunOptions(t, env.Slash("g1", "1"), "grid", args.Option{Name: "size", Value: float64(1)})
	require.NoError(t, err)
	assert.Equal(t, "```\n■\n```", env.Recorder.Last(t).Embed.Description)

	_, err = env.RunText(t, env.Message("g1", "1"), "grid", "40")
	require.NoError(t, err)
	assert.True(t, env.Recorder.Last(t).Ephemeral)
}

func TestRenderGrid(t *testing.T) {
	assert.Equal(t, "■ ■\n■ ■", renderGrid(2))
}
