// /internal/config/config.go
package config

import (
	"fmt"
	"log"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	Prefixes       []string `env:"COMMAND_PREFIXES" envDefault:"!" envSeparator:","`
	AutoRegister   bool     `env:"AUTO_REGISTER" envDefault:"true"`
	AutoDelete     bool     `env:"AUTO_DELETE" envDefault:"true"`
	RegisterGuilds []string `env:"REGISTER_GUILDS" envSeparator:","`

	DiscordGuildBlacklist []string `env:"GUILD_BLACKLIST" envSeparator:","`
	DeveloperID           string   `env:"DEVELOPER_ID"`

	ReplyInvalidArgs bool `env:"REPLY_INVALID_ARGS" envDefault:"true"`
	SuggestCommands  bool `env:"SUGGEST_COMMANDS" envDefault:"true"`

	CommandRate  float64 `env:"COMMAND_RATE" envDefault:"1"`
	CommandBurst int     `env:"COMMAND_BURST" envDefault:"3"`

	LogFile string `env:"LOG_FILE"`
}

// New loads .env (if present) and the process environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
	return parse(env.Options{})
}

// FromMap builds a Config from the given variables only. Used by tests and
// the offline CLI.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Prefixes) == 0 {
		return nil, fmt.Errorf("failed to parse config: COMMAND_PREFIXES is empty")
	}
	if cfg.CommandBurst < 1 {
		cfg.CommandBurst = 1
	}
	return cfg, nil
}

// IsDeveloper reports whether userID is the configured developer.
func IsDeveloper(cfg *Config, userID string) bool {
	return cfg != nil && cfg.DeveloperID != "" && cfg.DeveloperID == userID
}

// IsGuildBlacklisted reports whether the bot should stay out of guildID.
func IsGuildBlacklisted(cfg *Config, guildID string) bool {
	return cfg != nil && slices.Contains(cfg.DiscordGuildBlacklist, guildID)
}
