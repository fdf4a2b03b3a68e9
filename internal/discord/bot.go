package discord

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	storage  *storage.Storage
	cfg      *config.Config
	registry *cmd.Registry

	syncOnce sync.Once
	ctx      context.Context
}

// New returns a bot serving the commands of registry.
func New(cfg *config.Config, store *storage.Storage, registry *cmd.Registry) *Bot {
	if registry == nil {
		registry = cmd.DefaultRegistry
	}
	return &Bot{
		cfg:      cfg,
		storage:  store,
		registry: registry,
		ctx:      context.Background(),
	}
}

// Run connects to Discord and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.ctx = ctx

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents asks for guild and DM messages and their content, which
// prefixed commands need.
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	for _, g := range r.Guilds {
		b.leaveIfBlacklisted(s, g.ID, g.Name)
	}

	b.syncOnce.Do(func() {
		go func() {
			defs := buildCommandDefinitions(b.registry)
			syncer := newCommandSyncer(s, b.storage, r.User.ID)
			if err := syncer.syncAll(b.ctx, b.cfg, defs); err != nil {
				log.Println("[ERR] Error registering slash commands:", err)
				return
			}
			log.Printf("[INFO] %d slash commands in sync", len(defs))
		}()
	})

	log.Printf("[INFO] ✅ Discord bot %v is running.", r.User.Username)
}

// onGuildCreate is called when a guild is created
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.leaveIfBlacklisted(s, g.Guild.ID, g.Guild.Name)
}

func (b *Bot) leaveIfBlacklisted(s *discordgo.Session, guildID, name string) {
	if !config.IsGuildBlacklisted(b.cfg, guildID) {
		return
	}
	log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", guildID, name)
	if err := s.GuildLeave(guildID); err != nil {
		log.Printf("[ERR] Failed to leave guild %s: %v", guildID, err)
	}
}

// onInteractionCreate runs slash commands.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.CommandType != discordgo.ChatApplicationCommand {
		return
	}

	c := b.registry.Get(data.Name)
	if c == nil {
		// Discord may still list a command that was removed locally.
		log.Printf("[WARN] Unknown command: %s", data.Name)
		return
	}

	dc := b.newContext(s)
	dc.Interaction = i

	matched, err := cmd.Dispatch(b.ctx, c, args.OptionSource{Options: convertOptions(data.Options)}, dc)
	if err != nil {
		log.Printf("[ERR] Error running slash command %s: %v", c.Name(), err)
		_ = RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running slash command: %v", err),
			Color:       EmbedColor,
		})
		return
	}
	if !matched {
		_ = RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Invalid arguments for command %s", c.Name()),
			Description: usageText("/", c),
			Color:       EmbedColor,
		})
	}
}
