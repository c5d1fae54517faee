package fortnite

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"fortbot/bot/common"
	"fortbot/fortniteapi"
)

// Feature serves every Fortnite slash command
type Feature struct {
	translator *Translator
}

// NewFeature creates the feature backed by the given fetcher
func NewFeature(fetcher fortniteapi.Fetcher) *Feature {
	return &Feature{
		translator: NewTranslator(fetcher),
	}
}

// Handles reports whether name is one of the feature's commands
func (f *Feature) Handles(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// HandleCommand handles a slash command interaction
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	inv := Invocation{
		Command: data.Name,
		Args:    optionArgs(data.Options),
		UserID:  interactionUserID(i),
		GuildID: i.GuildID,
	}

	f.Execute(context.Background(), inv, common.NewInteractionReplier(s, i))
}

func optionArgs(options []*discordgo.ApplicationCommandInteractionDataOption) Args {
	args := Args{}
	for _, opt := range options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		args[opt.Name] = opt.StringValue()
	}
	return args
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
