package cmd

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"fortbot/bot"
	"fortbot/config"
	"fortbot/fortniteapi"
	"fortbot/keepalive"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cfg)

	log.Info("Starting Fortnite bot...")

	// Initialize Fortnite API client
	fetcher := fortniteapi.NewClient(nil, cfg.FortniteAPIBaseURL, cfg.FortniteAPIKey, cfg.FortniteAPITimeout)
	log.Infof("Fortnite API client targeting %s", cfg.FortniteAPIBaseURL)

	// Initialize Discord bot
	log.Info("Connecting to Discord...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}
	discordBot, err := bot.New(botConfig, fetcher)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Botが正常に起動しました。")

	g, gctx := errgroup.WithContext(ctx)

	if cfg.KeepAliveEnabled() {
		server := keepalive.NewServer(cfg.KeepAliveAddr)
		g.Go(func() error {
			return server.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down bot...")
		if err := discordBot.Close(); err != nil {
			return fmt.Errorf("error closing Discord bot: %w", err)
		}
		return nil
	})

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Shutdown completed")
	return nil
}

func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
