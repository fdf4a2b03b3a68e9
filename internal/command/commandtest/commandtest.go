// Package commandtest provides helpers for running bundled commands without
// a Discord session.
package commandtest

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// Reply is one embed sent through a Recorder.
type Reply struct {
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

// Recorder is a command.Responder that keeps every reply.
type Recorder struct {
	mu      sync.Mutex
	Replies []Reply
}

func (r *Recorder) RespondEmbed(_ *command.Context, embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Replies = append(r.Replies, Reply{Embed: embed})
	return nil
}

func (r *Recorder) RespondEmbedEphemeral(_ *command.Context, embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Replies = append(r.Replies, Reply{Embed: embed, Ephemeral: true})
	return nil
}

func (r *Recorder) EmbedColor() int { return 0x5865f2 }

// Last returns the most recent reply; it fails the test if there is none.
func (r *Recorder) Last(t *testing.T) Reply {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.Replies, "no reply recorded")
	return r.Replies[len(r.Replies)-1]
}

// Env bundles what a command context needs in tests.
type Env struct {
	Storage  *storage.Storage
	Config   *config.Config
	Registry *cmd.Registry
	Recorder *Recorder
}

// NewEnv returns an Env backed by a temporary datastore.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg, err := config.FromMap(map[string]string{"DISCORD_TOKEN": "test", "DEVELOPER_ID": "dev"})
	require.NoError(t, err)

	return &Env{
		Storage:  store,
		Config:   cfg,
		Registry: cmd.NewRegistry(),
		Recorder: &Recorder{},
	}
}

// Message builds a text-command context from guildID, authored by userID.
func (e *Env) Message(guildID, userID string) *command.Context {
	return &command.Context{
		Message: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   guildID,
			ChannelID: "channel",
			Author:    &discordgo.User{ID: userID, Username: "user-" + userID},
			Member:    &discordgo.Member{},
		}},
		Storage:   e.Storage,
		Config:    e.Config,
		Registry:  e.Registry,
		Responder: e.Recorder,
		Prefix:    "!",
	}
}

// Slash builds a slash-command context from guildID, invoked by userID.
func (e *Env) Slash(guildID, userID string) *command.Context {
	return &command.Context{
		Interaction: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			GuildID:   guildID,
			ChannelID: "channel",
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID, Username: "user-" + userID}},
		}},
		Storage:   e.Storage,
		Config:    e.Config,
		Registry:  e.Registry,
		Responder: e.Recorder,
	}
}

// RunText resolves text against the command registered as name and runs it.
func (e *Env) RunText(t *testing.T, c *command.Context, name, text string) (bool, error) {
	t.Helper()
	found := e.Registry.Get(name)
	require.NotNil(t, found, "command %q not registered", name)
	return cmd.Dispatch(context.Background(), found, args.TextSource{Text: text}, c)
}

// RunOptions is RunText for structured options.
func (e *Env) RunOptions(t *testing.T, c *command.Context, name string, opts ...args.Option) (bool, error) {
	t.Helper()
	found := e.Registry.Get(name)
	require.NotNil(t, found, "command %q not registered", name)
	return cmd.Dispatch(context.Background(), found, args.OptionSource{Options: opts}, c)
}
