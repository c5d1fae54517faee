package fortnite

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"fortbot/bot/common"
	"fortbot/fortniteapi"
	"fortbot/models"
)

// ErrMissingField is returned when a field the display rule depends on is absent
var ErrMissingField = errors.New("required field missing from payload")

// Projection maps a successful upstream response to a display payload.
// It only runs after the envelope status and data presence were checked.
type Projection func(args Args, resp *fortniteapi.Response) (*models.DisplayPayload, error)

func decode[T any](resp *fortniteapi.Response) (T, error) {
	var v T
	err := resp.DecodeData(&v)
	return v, err
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func projectShop(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.ShopData](resp)
	if err != nil {
		return nil, err
	}
	if data.Featured == nil {
		return nil, missing("featured")
	}

	payload := &models.DisplayPayload{Title: titleShop}
	for _, entry := range common.Truncate(data.Featured.Entries, common.MaxListFields) {
		if len(entry.Items) == 0 {
			payload.AddField(common.PlaceholderUnknown, common.PlaceholderUnknown, true)
			continue
		}
		item := entry.Items[0]
		payload.AddField(
			common.OrPlaceholder(item.Name, common.PlaceholderUnknown),
			common.FormatIconLink(item.Images.Icon),
			true,
		)
	}
	return payload, nil
}

func projectCosmetic(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	item, err := decode[models.Cosmetic](resp)
	if err != nil {
		return nil, err
	}

	return &models.DisplayPayload{
		Title:        common.OrPlaceholder(item.Name, common.PlaceholderUnknown),
		Description:  common.OrPlaceholder(item.Description, common.PlaceholderDescription),
		ThumbnailURL: item.Images.Icon,
	}, nil
}

func projectNews(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	entries, err := decode[[]models.NewsEntry](resp)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, missing("news entries")
	}

	news := entries[0]
	return &models.DisplayPayload{
		Title:       common.OrPlaceholder(news.Title, common.PlaceholderUnknown),
		Description: common.OrPlaceholder(news.Body, common.PlaceholderDescription),
		ImageURL:    news.Image,
	}, nil
}

func projectMap(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.MapData](resp)
	if err != nil {
		return nil, err
	}
	if data.Images.POIs == "" {
		return nil, missing("images.pois")
	}

	return &models.DisplayPayload{
		Title:    titleMap,
		ImageURL: data.Images.POIs,
	}, nil
}

func projectStats(args Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.PlayerStats](resp)
	if err != nil {
		return nil, err
	}
	if data.Stats == nil || data.Stats.All == nil || data.Stats.All.Overall == nil {
		return nil, missing("stats.all.overall")
	}

	overall := data.Stats.All.Overall
	payload := &models.DisplayPayload{Title: fmt.Sprintf(titleStatsFmt, args["name"])}
	payload.AddField(labelKills, formatNumber(overall.Kills), true)
	payload.AddField(labelWins, formatNumber(overall.Wins), true)
	payload.AddField(labelMatches, formatNumber(overall.Matches), true)
	payload.AddField(labelKD, formatNumber(overall.KD), true)
	return payload, nil
}

func projectCreative(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	island, err := decode[models.Island](resp)
	if err != nil {
		return nil, err
	}

	return &models.DisplayPayload{
		Title:       common.OrPlaceholder(island.Name, common.PlaceholderUnknown),
		Description: common.OrPlaceholder(island.Description, common.PlaceholderDescription),
		ImageURL:    island.Images.Banner,
	}, nil
}

func projectChallenges(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.ChallengesData](resp)
	if err != nil {
		return nil, err
	}
	if data.Featured == nil {
		return nil, missing("featured")
	}

	payload := &models.DisplayPayload{Title: titleChallenges}
	for _, challenge := range common.Truncate(data.Featured, common.MaxListFields) {
		payload.AddField(
			common.OrPlaceholder(challenge.Title, common.PlaceholderUnknown),
			common.OrPlaceholder(challenge.Description, common.PlaceholderDescription),
			false,
		)
	}
	return payload, nil
}

func projectBattlePass(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.BattlePassData](resp)
	if err != nil {
		return nil, err
	}
	if data.Levels == nil {
		return nil, missing("levels")
	}

	payload := &models.DisplayPayload{Title: titleBattlePass}
	for _, lvl := range common.Truncate(data.Levels, common.MaxListFields) {
		reward := common.PlaceholderUnknown
		if lvl.Reward != nil {
			reward = common.OrPlaceholder(lvl.Reward.Name, common.PlaceholderUnknown)
		}
		payload.AddField(fmt.Sprintf(labelLevelFmt, formatNumber(lvl.Level)), reward, true)
	}
	return payload, nil
}

func projectEvents(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	events, err := decode[[]models.GameEvent](resp)
	if err != nil {
		return nil, err
	}

	payload := &models.DisplayPayload{Title: titleEvents}
	for _, event := range common.Truncate(events, common.MaxListFields) {
		payload.AddField(
			common.OrPlaceholder(event.Title, common.PlaceholderUnknown),
			common.OrPlaceholder(event.Description, common.PlaceholderDescription),
			false,
		)
	}
	return payload, nil
}

func projectGameModes(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	data, err := decode[models.GameModesData](resp)
	if err != nil {
		return nil, err
	}
	if data.Modes == nil {
		return nil, missing("modes")
	}

	payload := &models.DisplayPayload{Title: titleGameModes}
	for _, mode := range common.Truncate(data.Modes, common.MaxListFields) {
		payload.AddField(
			common.OrPlaceholder(mode.Name, common.PlaceholderUnknown),
			fmt.Sprintf(labelGameModeFmt, common.OrPlaceholder(mode.ID, common.PlaceholderUnknown)),
			true,
		)
	}
	return payload, nil
}

func projectStatus(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	services, err := decode[[]models.ServiceStatus](resp)
	if err != nil {
		return nil, err
	}

	payload := &models.DisplayPayload{Title: titleStatus}
	for _, service := range common.Truncate(services, common.MaxListFields) {
		payload.AddField(
			common.OrPlaceholder(service.Name, common.PlaceholderUnknown),
			common.OrPlaceholder(service.Status, common.PlaceholderUnknown),
			false,
		)
	}
	return payload, nil
}

func projectStore(_ Args, resp *fortniteapi.Response) (*models.DisplayPayload, error) {
	items, err := decode[[]models.StoreItem](resp)
	if err != nil {
		return nil, err
	}

	payload := &models.DisplayPayload{Title: titleStore}
	for _, item := range common.Truncate(items, common.MaxListFields) {
		payload.AddField(
			common.OrPlaceholder(item.Title, common.PlaceholderUnknown),
			common.OrPlaceholder(item.Description, common.PlaceholderDescription),
			false,
		)
	}
	return payload, nil
}

func formatNumber(n json.Number) string {
	return common.OrPlaceholder(n.String(), common.PlaceholderUnknown)
}
