package command

import (
	"errors"

	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

const (
	SourceSlash = "slash"
	SourceText  = "text"
)

var errNoTarget = errors.New("context has neither interaction nor message")

// Responder is injected into command contexts so commands never import discord directly.
type Responder interface {
	RespondEmbed(c *Context, embed *discordgo.MessageEmbed) error
	RespondEmbedEphemeral(c *Context, embed *discordgo.MessageEmbed) error
	EmbedColor() int
}

// Context is what the Discord adapter passes as Invocation.Data. Exactly one
// of Interaction and Message is set.
type Context struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Message     *discordgo.MessageCreate

	Storage   *storage.Storage
	Config    *config.Config
	Registry  *cmd.Registry
	Responder Responder

	// Prefix is the text prefix the message matched; empty for slash commands.
	Prefix string
}

// FromInvocation extracts the Discord context from an invocation.
func FromInvocation(inv *cmd.Invocation) (*Context, bool) {
	if inv == nil {
		return nil, false
	}
	c, ok := inv.Data.(*Context)
	return c, ok && c != nil
}

func (c *Context) Source() string {
	if c.Interaction != nil {
		return SourceSlash
	}
	return SourceText
}

func (c *Context) GuildID() string {
	switch {
	case c.Interaction != nil:
		return c.Interaction.GuildID
	case c.Message != nil:
		return c.Message.GuildID
	}
	return ""
}

func (c *Context) ChannelID() string {
	switch {
	case c.Interaction != nil:
		return c.Interaction.ChannelID
	case c.Message != nil:
		return c.Message.ChannelID
	}
	return ""
}

// Author returns the invoking user, never nil.
func (c *Context) Author() *discordgo.User {
	if c.Interaction != nil {
		if m := c.Interaction.Member; m != nil && m.User != nil {
			return m.User
		}
		if c.Interaction.User != nil {
			return c.Interaction.User
		}
	}
	if c.Message != nil && c.Message.Author != nil {
		return c.Message.Author
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}

func (c *Context) Color() int {
	if c.Responder == nil {
		return 0
	}
	return c.Responder.EmbedColor()
}

// Reply sends a public embed with the given description.
func (c *Context) Reply(title, description string) error {
	return c.ReplyEmbed(&discordgo.MessageEmbed{Title: title, Description: description})
}

// ReplyEphemeral replies visibly to the invoking user only, where the
// transport allows it.
func (c *Context) ReplyEphemeral(description string) error {
	if c.Responder == nil {
		return errNoTarget
	}
	return c.Responder.RespondEmbedEphemeral(c, &discordgo.MessageEmbed{
		Description: description,
		Color:       c.Color(),
	})
}

func (c *Context) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	if c.Responder == nil {
		return errNoTarget
	}
	if embed.Color == 0 {
		embed.Color = c.Color()
	}
	return c.Responder.RespondEmbed(c, embed)
}
