package common

import (
	"github.com/bwmarrin/discordgo"

	"fortbot/models"
)

// Replier sends the single reply of a command invocation
type Replier interface {
	RespondWithPayload(payload *models.DisplayPayload) error
	RespondWithError(message string, ephemeral bool) error
}

// InteractionReplier replies to a Discord interaction
type InteractionReplier struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewInteractionReplier binds a replier to one interaction
func NewInteractionReplier(s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionReplier {
	return &InteractionReplier{
		session:     s,
		interaction: i.Interaction,
	}
}

// RespondWithPayload sends the payload as an embed
func (r *InteractionReplier) RespondWithPayload(payload *models.DisplayPayload) error {
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{BuildEmbed(payload)},
		},
	})
}

// RespondWithError sends a plain text error message
func (r *InteractionReplier) RespondWithError(message string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content: message,
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// BuildEmbed converts a display payload into a Discord embed
func BuildEmbed(payload *models.DisplayPayload) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       TruncateText(payload.Title, MaxEmbedTitleLength),
		Description: TruncateText(payload.Description, MaxEmbedDescriptionLength),
		Color:       ColorPrimary,
	}

	for _, field := range payload.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   TruncateText(field.Name, MaxEmbedFieldNameLength),
			Value:  TruncateText(field.Value, MaxEmbedFieldValueLength),
			Inline: field.Inline,
		})
	}

	if payload.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: payload.ImageURL}
	}
	if payload.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: payload.ThumbnailURL}
	}

	return embed
}
