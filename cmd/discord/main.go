// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/keshon/slashy/internal/command/calc"
	_ "github.com/keshon/slashy/internal/command/core"
	_ "github.com/keshon/slashy/internal/command/roll"
	_ "github.com/keshon/slashy/internal/command/stats"

	"github.com/keshon/slashy/internal/config"
	"github.com/keshon/slashy/internal/discord"
	"github.com/keshon/slashy/internal/logging"
	"github.com/keshon/slashy/internal/storage"
	v "github.com/keshon/slashy/internal/version"
	"github.com/keshon/slashy/pkg/cmd"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	logs := logging.Setup(cfg.LogFile, logging.DefaultRotation)
	defer logs.Close()

	log.Printf("[INFO] Starting %v bot %v...", v.AppName, v.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	defer store.Close()

	bot := discord.New(cfg, store, cmd.DefaultRegistry)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
