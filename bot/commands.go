package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"fortbot/bot/features/fortnite"
)

// CommandRegistrar is the part of the Discord API used to sync commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// registerCommands replaces the registered slash commands with the current set
func (b *Bot) registerCommands(registrar CommandRegistrar, appID string) error {
	return syncCommands(registrar, appID, b.config.GuildID)
}

func syncCommands(registrar CommandRegistrar, appID, guildID string) error {
	commands := fortnite.ApplicationCommands()

	created, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	if err != nil {
		return fmt.Errorf("cannot sync %d commands: %w", len(commands), err)
	}

	scope := "globally"
	if guildID != "" {
		scope = "in guild " + guildID
	}
	log.Infof("Synced %d commands %s", len(created), scope)
	return nil
}
