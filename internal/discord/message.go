package discord

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// onMessageCreate runs prefixed text commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	prefix, body, ok := matchPrefix(m.Content, b.prefixesFor(m.GuildID))
	if !ok {
		return
	}
	name, rest := args.SplitCommand(body)
	if name == "" {
		return
	}

	c := b.registry.Get(strings.ToLower(name))
	if c == nil {
		b.suggest(s, m, prefix, name)
		return
	}

	dc := b.newContext(s)
	dc.Message = m
	dc.Prefix = prefix

	matched, err := cmd.Dispatch(b.ctx, c, args.TextSource{Text: rest}, dc)
	if err != nil {
		log.Printf("[ERR] Error running text command %s: %v", c.Name(), err)
		_ = ReplyEmbed(s, m, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running command: %v", err),
			Color:       EmbedColor,
		})
		return
	}
	if !matched && b.cfg.ReplyInvalidArgs {
		_ = ReplyEmbed(s, m, &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Invalid arguments for command %s", c.Name()),
			Description: usageText(prefix, c),
			Color:       EmbedColor,
		})
	}
}

// prefixesFor returns the guild's custom prefixes, or the configured defaults.
func (b *Bot) prefixesFor(guildID string) []string {
	if guildID != "" {
		custom, err := b.storage.GetPrefixes(guildID)
		if err != nil {
			log.Printf("[WARN] Failed to load prefixes for guild %s: %v", guildID, err)
		}
		if len(custom) > 0 {
			return custom
		}
	}
	return b.cfg.Prefixes
}

func (b *Bot) suggest(s *discordgo.Session, m *discordgo.MessageCreate, prefix, name string) {
	if !b.cfg.SuggestCommands {
		return
	}
	candidates := suggestCommands(name, b.registry.Names())
	if len(candidates) == 0 {
		return
	}
	for i, c := range candidates {
		candidates[i] = "`" + prefix + c + "`"
	}
	_ = ReplyEmbed(s, m, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Unknown command `%s`. Did you mean %s?", name, strings.Join(candidates, ", ")),
		Color:       EmbedColor,
	})
}

// matchPrefix strips the first prefix content starts with.
func matchPrefix(content string, prefixes []string) (prefix, rest string, ok bool) {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(content, p) {
			return p, content[len(p):], true
		}
	}
	return "", "", false
}

// suggestCommands ranks names by similarity to word. Subsequence matches
// come first; typos within two edits are the fallback.
func suggestCommands(word string, names []string) []string {
	word = strings.ToLower(word)
	ranks := fuzzy.RankFindFold(word, names)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	if len(out) == 0 {
		for _, n := range names {
			if fuzzy.LevenshteinDistance(word, n) <= 2 {
				out = append(out, n)
			}
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func usageText(prefix string, c cmd.Command) string {
	lines := args.Usage(c.Name(), c.Arguments())
	for i, l := range lines {
		lines[i] = "`" + prefix + l + "`"
	}
	return "Usage:\n" + strings.Join(lines, "\n")
}

// newContext returns a command context wired to the bot's dependencies.
func (b *Bot) newContext(s *discordgo.Session) *command.Context {
	return &command.Context{
		Session:   s,
		Storage:   b.storage,
		Config:    b.cfg,
		Registry:  b.registry,
		Responder: DefaultResponder,
	}
}
