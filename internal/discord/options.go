package discord

import (
	"github.com/keshon/slashy/pkg/args"

	"github.com/bwmarrin/discordgo"
)

// convertOptions maps interaction options onto the resolver's option tree.
// Values are passed through as decoded by discordgo: strings, bools and
// float64 numbers; user, channel and role ids arrive as strings.
func convertOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) []args.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]args.Option, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		out = append(out, args.Option{
			Name:    o.Name,
			Value:   o.Value,
			Options: convertOptions(o.Options),
		})
	}
	return out
}
