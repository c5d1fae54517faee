package fortnite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"fortbot/bot/common"
)

const msgUnexpectedError = "処理中にエラーが発生しました。"

// Invocation is one incoming command with its arguments
type Invocation struct {
	Command string
	Args    Args
	UserID  string
	GuildID string
}

// Execute runs one invocation and sends exactly one reply through replier
func (f *Feature) Execute(ctx context.Context, inv Invocation, replier common.Replier) {
	logger := log.WithFields(log.Fields{
		"command":  inv.Command,
		"user_id":  inv.UserID,
		"guild_id": inv.GuildID,
	})

	def, ok := Lookup(inv.Command)
	if !ok {
		respondWithError(logger, replier, common.NewUserError(msgUnexpectedError, "unknown command"))
		return
	}

	// Discord enforces required options client-side; re-check before any upstream call
	if missingParams := def.MissingParams(inv.Args); len(missingParams) > 0 {
		respondWithError(logger, replier, common.NewUserError(
			fmt.Sprintf(msgMissingParamFmt, strings.Join(missingParams, ", ")),
			"required parameters missing",
		))
		return
	}

	payload, err := f.translator.Translate(ctx, def, inv.Args)
	if err != nil {
		respondWithError(logger, replier, err)
		return
	}

	if err := replier.RespondWithPayload(payload); err != nil {
		logger.Errorf("Error responding to command: %v", err)
		return
	}
	logger.WithField("fields", len(payload.Fields)).Debug("Command completed")
}

// respondWithError logs err and sends its user message
func respondWithError(logger *log.Entry, replier common.Replier, err error) {
	var botErr *common.BotError
	if !errors.As(err, &botErr) {
		logger.WithField("error", err.Error()).Error("Unexpected error in command")
		botErr = common.NewUserError(msgUnexpectedError, "unexpected error")
	} else {
		logger.WithFields(log.Fields{
			"error":        botErr.Error(),
			"user_message": botErr.UserMessage,
		}).Warn(botErr.LogMessage)
	}

	if err := replier.RespondWithError(botErr.UserMessage, botErr.Ephemeral); err != nil {
		logger.Errorf("Error sending error response: %v", err)
	}
}
