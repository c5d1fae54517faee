package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"fortbot/bot/features/fortnite"
	"fortbot/fortniteapi"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string // Register commands to this guild only; empty registers globally
}

// Bot manages the Discord session and routes commands to features
type Bot struct {
	config   Config
	session  *discordgo.Session
	fortnite *fortnite.Feature

	registerOnce sync.Once
}

// New creates the bot, connects to Discord and waits for Ready to register commands
func New(config Config, fetcher fortniteapi.Fetcher) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:   config,
		session:  dg,
		fortnite: fortnite.NewFeature(fetcher),
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleReady syncs the command set once per process
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as %s", r.User.String())

	b.registerOnce.Do(func() {
		if err := b.registerCommands(s, r.User.ID); err != nil {
			log.Errorf("Error registering commands: %v", err)
		}
	})
}

// handleCommands routes slash commands to the feature that owns them
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	switch {
	case b.fortnite.Handles(name):
		b.fortnite.HandleCommand(s, i)
	default:
		log.Warnf("No handler for command %q", name)
	}
}
