package discord

import (
	"github.com/keshon/slashy/internal/command"

	"github.com/bwmarrin/discordgo"
)

const EmbedColor = 0x5865f2

// responder implements command.Responder so commands can reply without importing
// the discord package directly (avoids import cycles).
type responder struct{}

func (responder) RespondEmbed(c *command.Context, embed *discordgo.MessageEmbed) error {
	if c.Interaction != nil {
		return RespondEmbed(c.Session, c.Interaction, embed)
	}
	return ReplyEmbed(c.Session, c.Message, embed)
}

// RespondEmbedEphemeral falls back to a normal reply for text commands.
func (responder) RespondEmbedEphemeral(c *command.Context, embed *discordgo.MessageEmbed) error {
	if c.Interaction != nil {
		return RespondEmbedEphemeral(c.Session, c.Interaction, embed)
	}
	return ReplyEmbed(c.Session, c.Message, embed)
}

func (responder) EmbedColor() int { return EmbedColor }

// DefaultResponder is injected into command contexts so commands never import discord directly.
var DefaultResponder command.Responder = responder{}

// RespondEmbed sends a public embed response to an interaction.
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

// RespondEmbedEphemeral sends an ephemeral embed response to an interaction.
func RespondEmbedEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:  discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// ReplyEmbed answers a channel message with an embed.
func ReplyEmbed(s *discordgo.Session, m *discordgo.MessageCreate, embed *discordgo.MessageEmbed) error {
	_, err := s.ChannelMessageSendEmbedReply(m.ChannelID, embed, m.Reference())
	return err
}
