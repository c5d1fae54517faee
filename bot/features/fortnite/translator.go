package fortnite

import (
	"context"
	"fmt"

	"fortbot/bot/common"
	"fortbot/fortniteapi"
	"fortbot/models"
)

// Translator turns one command invocation into one display payload
type Translator struct {
	fetcher fortniteapi.Fetcher
}

// NewTranslator creates a translator backed by the given fetcher
func NewTranslator(fetcher fortniteapi.Fetcher) *Translator {
	return &Translator{fetcher: fetcher}
}

// Translate makes exactly one upstream call for def and projects the result.
// Every failure comes back as a BotError carrying the command's localized message.
func (t *Translator) Translate(ctx context.Context, def Definition, args Args) (*models.DisplayPayload, error) {
	resp, err := t.fetcher.Get(ctx, def.BuildRequest(args))
	if err != nil {
		return nil, common.NewUpstreamError(err, def.FailureMessage,
			fmt.Sprintf("fetching %s failed", def.Path))
	}

	if !resp.OK() {
		return nil, common.NewUpstreamError(nil, def.FailureMessage,
			fmt.Sprintf("%s returned status %d: %s", def.Path, resp.Status, resp.Error))
	}

	if !resp.HasData() {
		return nil, common.NewUpstreamError(nil, def.FailureMessage,
			fmt.Sprintf("%s returned no data", def.Path))
	}

	payload, err := def.Project(args, resp)
	if err != nil {
		return nil, common.NewUpstreamError(err, def.FailureMessage,
			fmt.Sprintf("projecting %s response failed", def.Path))
	}

	return payload, nil
}
