package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/command/calc"
	"github.com/keshon/slashy/internal/command/stats"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, a ...string) (string, error) {
	t.Helper()
	r := cmd.NewRegistry()
	command.RegisterTo(r, stats.Stats())
	command.RegisterTo(r, calc.Add())
	command.RegisterTo(r, calc.Grid())

	root := NewRootCmd(r)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(a)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "Add two whole numbers")
	assert.Contains(t, out, "stats")
}

func TestUsage(t *testing.T) {
	out, err := run(t, "usage", "grid")
	require.NoError(t, err)
	assert.Equal(t, "grid <size:small|medium|large>\n", out)

	_, err = run(t, "usage", "nope")
	assert.ErrorContains(t, err, `unknown command "nope"`)
}

func TestPayload(t *testing.T) {
	out, err := run(t, "payload", "add")
	require.NoError(t, err)

	var payload struct {
		Name    string `json:"name"`
		Options []struct {
			Name     string `json:"name"`
			Type     int    `json:"type"`
			Required bool   `json:"required"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "add", payload.Name)
	require.Len(t, payload.Options, 2)
	assert.Equal(t, "a", payload.Options[0].Name)
	assert.Equal(t, 4, payload.Options[0].Type)
	assert.True(t, payload.Options[0].Required)
}

func TestResolve(t *testing.T) {
	out, err := run(t, "resolve", "stats", "get", "points", "100")
	require.NoError(t, err)
	assert.Equal(t, "handler: points\nargs: user=100\n", out)

	_, err = run(t, "resolve", "stats", "get")
	assert.ErrorContains(t, err, "no match for stats")
}

func TestResolveOptions(t *testing.T) {
	out, err := run(t, "resolve-options", "stats",
		`[{"name":"get","options":[{"name":"leaderboard","options":[{"name":"page","value":2}]}]}]`)
	require.NoError(t, err)
	assert.Equal(t, "handler: leaderboard\nargs: page=2\n", out)

	_, err = run(t, "resolve-options", "stats", `not json`)
	assert.ErrorContains(t, err, "parse options")
}
