package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/internal/storage"
	"github.com/keshon/slashy/pkg/retrylimit"
	"github.com/keshon/slashy/pkg/util"

	"github.com/bwmarrin/discordgo"
)

const guildSyncWorkers = 4

// commandAPI is the part of *discordgo.Session used to register commands.
type commandAPI interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// commandSyncer keeps Discord's registered commands in line with the
// local registry, one scope (global or a guild) at a time.
type commandSyncer struct {
	api     commandAPI
	storage *storage.Storage
	appID   string
	limiter *retrylimit.AdaptiveLimiter
	retry   retrylimit.Config
}

func newCommandSyncer(api commandAPI, store *storage.Storage, appID string) *commandSyncer {
	return &commandSyncer{
		api:     api,
		storage: store,
		appID:   appID,
		limiter: retrylimit.NewAdaptiveLimiter(20, 1, 40, 1, 0.5),
		retry:   retryConfig(),
	}
}

func retryConfig() retrylimit.Config {
	cfg := retrylimit.DefaultConfig()
	cfg.StatusCode = restStatus
	return cfg
}

// restStatus returns the HTTP status of a failed Discord REST call.
func restStatus(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}
	return 0
}

// syncAll registers globally when AUTO_REGISTER is set, then every
// REGISTER_GUILDS guild that is not blacklisted.
func (s *commandSyncer) syncAll(ctx context.Context, cfg *config.Config, defs []*discordgo.ApplicationCommand) error {
	if cfg.AutoRegister {
		if err := s.sync(ctx, "", defs, cfg.AutoDelete); err != nil {
			return err
		}
	} else {
		log.Println("[INFO] Registering global slash commands skipped")
	}

	var guilds []string
	for _, g := range cfg.RegisterGuilds {
		if config.IsGuildBlacklisted(cfg, g) {
			continue
		}
		guilds = append(guilds, g)
	}
	return util.Parallel(ctx, guilds, guildSyncWorkers, func(ctx context.Context, guildID string) error {
		return s.sync(ctx, guildID, defs, true)
	})
}

// sync deletes obsolete commands (when deleteObsolete) and creates commands
// whose definition hash changed or that are missing remotely. guildID ""
// is the global scope.
func (s *commandSyncer) sync(ctx context.Context, guildID string, defs []*discordgo.ApplicationCommand, deleteObsolete bool) error {
	scope := guildID
	if scope == "" {
		scope = storage.GlobalScope
	}

	remote, err := s.api.ApplicationCommands(s.appID, guildID)
	if err != nil {
		return fmt.Errorf("failed to list commands for %s: %w", scope, err)
	}
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = c
	}

	hashes, err := s.storage.CommandHashes(scope)
	if err != nil {
		return err
	}

	local := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		local[d.Name] = struct{}{}
	}

	if deleteObsolete {
		for name, rc := range remoteByName {
			if _, ok := local[name]; ok {
				continue
			}
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", scope, name)
			err := retrylimit.Do(ctx, s.limiter, s.retry, func() error {
				return s.api.ApplicationCommandDelete(s.appID, guildID, rc.ID)
			})
			if err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", scope, name, err)
				continue
			}
			delete(hashes, name)
		}
	}

	for _, d := range defs {
		h := hashCommand(d)
		if _, registered := remoteByName[d.Name]; registered && hashes[d.Name] == h {
			continue
		}
		err := retrylimit.Do(ctx, s.limiter, s.retry, func() error {
			_, err := s.api.ApplicationCommandCreate(s.appID, guildID, d)
			return err
		})
		if ctx.Err() != nil {
			break
		}
		if err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", scope, d.Name, err)
			continue
		}
		hashes[d.Name] = h
		log.Printf("[DONE] [%s] Registered: %s", scope, d.Name)
	}

	if err := s.storage.SetCommandHashes(scope, hashes); err != nil {
		return err
	}
	return ctx.Err()
}
