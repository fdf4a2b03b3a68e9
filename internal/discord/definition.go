package discord

import (
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

var optionTypes = map[args.Kind]discordgo.ApplicationCommandOptionType{
	args.KindString:  discordgo.ApplicationCommandOptionString,
	args.KindInteger: discordgo.ApplicationCommandOptionInteger,
	args.KindBoolean: discordgo.ApplicationCommandOptionBoolean,
	args.KindUser:    discordgo.ApplicationCommandOptionUser,
	args.KindChannel: discordgo.ApplicationCommandOptionChannel,
	args.KindRole:    discordgo.ApplicationCommandOptionRole,
}

// CommandDefinition builds the slash command payload for a registered
// command from its argument tree.
func CommandDefinition(c cmd.Command) *discordgo.ApplicationCommand {
	def := &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: describe(c.Description(), c.Name()),
		Type:        discordgo.ChatApplicationCommand,
	}
	if tree := c.Arguments(); tree != nil {
		def.Options = buildOptions(tree.Children)
	}
	return def
}

// buildCommandDefinitions returns ApplicationCommand definitions for all registered commands.
func buildCommandDefinitions(r *cmd.Registry) []*discordgo.ApplicationCommand {
	all := r.GetAll()
	defs := make([]*discordgo.ApplicationCommand, 0, len(all))
	for _, c := range all {
		defs = append(defs, CommandDefinition(c))
	}
	return defs
}

func buildOptions(nodes []args.Node) []*discordgo.ApplicationCommandOption {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandOption, 0, len(nodes))
	for _, n := range nodes {
		opt := &discordgo.ApplicationCommandOption{
			Name:        n.Name,
			Description: describe(n.Description, n.Name),
		}
		switch n.Kind {
		case args.SubCommandNode:
			opt.Type = discordgo.ApplicationCommandOptionSubCommand
			opt.Options = buildOptions(n.Children)
		case args.SubCommandGroupNode:
			opt.Type = discordgo.ApplicationCommandOptionSubCommandGroup
			opt.Options = buildOptions(n.Children)
		default:
			opt.Type = optionTypes[n.Type]
			opt.Required = n.Required
			opt.Choices = buildChoices(n.Choices)
		}
		out = append(out, opt)
	}
	return out
}

func buildChoices(choices []args.Choice) []*discordgo.ApplicationCommandOptionChoice {
	if len(choices) == 0 {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(choices))
	for _, ch := range choices {
		var value interface{}
		if s, ok := ch.Value.AsString(); ok {
			value = s
		} else if i, ok := ch.Value.AsInt(); ok {
			value = i
		} else {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: ch.Name, Value: value})
	}
	return out
}

// describe falls back to name since Discord rejects empty descriptions.
func describe(desc, name string) string {
	if desc != "" {
		return desc
	}
	return name
}
