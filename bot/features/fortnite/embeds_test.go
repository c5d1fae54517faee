package fortnite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortbot/bot/common"
	"fortbot/models"
)

func TestProjections_Golden(t *testing.T) {
	tests := []struct {
		command  string
		args     Args
		data     string
		expected *models.DisplayPayload
	}{
		{
			command: CommandShop,
			data: `{"featured":{"entries":[
				{"items":[{"name":"Renegade Raider","images":{"icon":"https://img/rr.png"}},{"name":"ignored"}]},
				{"items":[{"name":"Peely","images":{"icon":"https://img/peely.png"}}]}
			]}}`,
			expected: &models.DisplayPayload{
				Title: "Fortnite Current Item Shop",
				Fields: []models.DisplayField{
					{Name: "Renegade Raider", Value: "[Icon](https://img/rr.png)", Inline: true},
					{Name: "Peely", Value: "[Icon](https://img/peely.png)", Inline: true},
				},
			},
		},
		{
			command: CommandCosmetic,
			args:    Args{"name": "Peely"},
			data:    `{"name":"Peely","description":"A banana.","images":{"icon":"https://img/peely.png"}}`,
			expected: &models.DisplayPayload{
				Title:        "Peely",
				Description:  "A banana.",
				ThumbnailURL: "https://img/peely.png",
			},
		},
		{
			command: CommandNews,
			data:    `[{"title":"New Season","body":"Drop in now.","image":"https://img/news.png"},{"title":"Older"}]`,
			expected: &models.DisplayPayload{
				Title:       "New Season",
				Description: "Drop in now.",
				ImageURL:    "https://img/news.png",
			},
		},
		{
			command: CommandMap,
			data:    `{"images":{"blank":"https://img/blank.png","pois":"https://img/pois.png"}}`,
			expected: &models.DisplayPayload{
				Title:    "Current Fortnite Map POIs",
				ImageURL: "https://img/pois.png",
			},
		},
		{
			command: CommandStats,
			args:    Args{"name": "Ninja", "platform": "pc"},
			data:    `{"stats":{"all":{"overall":{"kills":1200,"wins":45,"matches":300,"kd":4.62}}}}`,
			expected: &models.DisplayPayload{
				Title: "Ninjaのプレイヤーステータス",
				Fields: []models.DisplayField{
					{Name: "キル数", Value: "1200", Inline: true},
					{Name: "勝利数", Value: "45", Inline: true},
					{Name: "試合数", Value: "300", Inline: true},
					{Name: "キル/死", Value: "4.62", Inline: true},
				},
			},
		},
		{
			command: CommandCreative,
			args:    Args{"code": "1234-5678-9012"},
			data:    `{"name":"Box Fight","description":"2v2 boxes","images":{"banner":"https://img/banner.png"}}`,
			expected: &models.DisplayPayload{
				Title:       "Box Fight",
				Description: "2v2 boxes",
				ImageURL:    "https://img/banner.png",
			},
		},
		{
			command: CommandChallenges,
			data:    `{"featured":[{"title":"Land at a POI","description":"Visit 3 POIs"},{"title":"Eliminate"}]}`,
			expected: &models.DisplayPayload{
				Title: "最新チャレンジ",
				Fields: []models.DisplayField{
					{Name: "Land at a POI", Value: "Visit 3 POIs", Inline: false},
					{Name: "Eliminate", Value: "説明なし", Inline: false},
				},
			},
		},
		{
			command: CommandBattlePass,
			data:    `{"levels":[{"level":1,"reward":{"name":"Banner"}},{"level":2,"reward":{"name":"Spray"}}]}`,
			expected: &models.DisplayPayload{
				Title: "現シーズンのバトルパス報酬",
				Fields: []models.DisplayField{
					{Name: "レベル 1", Value: "Banner", Inline: true},
					{Name: "レベル 2", Value: "Spray", Inline: true},
				},
			},
		},
		{
			command: CommandEvents,
			data:    `[{"title":"Live Event","description":"Saturday"},{"title":"Cup"}]`,
			expected: &models.DisplayPayload{
				Title: "現在のゲーム内イベント",
				Fields: []models.DisplayField{
					{Name: "Live Event", Value: "Saturday", Inline: false},
					{Name: "Cup", Value: "説明なし", Inline: false},
				},
			},
		},
		{
			command: CommandGameModes,
			data:    `{"modes":[{"name":"Solo","id":"playlist_defaultsolo"},{"name":"Duos","id":"playlist_defaultduo"}]}`,
			expected: &models.DisplayPayload{
				Title: "現在のゲームモード",
				Fields: []models.DisplayField{
					{Name: "Solo", Value: "ID: playlist_defaultsolo", Inline: true},
					{Name: "Duos", Value: "ID: playlist_defaultduo", Inline: true},
				},
			},
		},
		{
			command: CommandStatus,
			data:    `[{"name":"Fortnite","status":"UP"},{"name":"Login","status":"DOWN"}]`,
			expected: &models.DisplayPayload{
				Title: "Epic Games サーバーステータス",
				Fields: []models.DisplayField{
					{Name: "Fortnite", Value: "UP", Inline: false},
					{Name: "Login", Value: "DOWN", Inline: false},
				},
			},
		},
		{
			command: CommandStore,
			data:    `[{"title":"Fortnite Crew","description":"Monthly"},{"title":"V-Bucks"}]`,
			expected: &models.DisplayPayload{
				Title: "Epic Games ストア商品一覧",
				Fields: []models.DisplayField{
					{Name: "Fortnite Crew", Value: "Monthly", Inline: false},
					{Name: "V-Bucks", Value: "説明なし", Inline: false},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			def, ok := Lookup(tt.command)
			require.True(t, ok)

			payload, err := def.Project(tt.args, okResponse(tt.data))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload)
		})
	}
}

func TestProjections_CoverEveryCommand(t *testing.T) {
	for _, def := range Definitions() {
		assert.NotNil(t, def.Project, "command %s has no projection", def.Name)
		assert.NotEmpty(t, def.FailureMessage, "command %s has no failure message", def.Name)
	}
}

func TestProjections_TruncateLists(t *testing.T) {
	shopEntries := make([]string, 40)
	levels := make([]string, 40)
	generic := make([]string, 40)
	for i := range shopEntries {
		shopEntries[i] = fmt.Sprintf(`{"items":[{"name":"Item %d","images":{"icon":"https://img/%d.png"}}]}`, i, i)
		levels[i] = fmt.Sprintf(`{"level":%d,"reward":{"name":"Reward %d"}}`, i+1, i+1)
		generic[i] = fmt.Sprintf(`{"title":"T%d","description":"D%d","name":"N%d","status":"UP","id":"id%d"}`, i, i, i, i)
	}
	list := "[" + strings.Join(generic, ",") + "]"

	tests := []struct {
		command string
		data    string
	}{
		{CommandShop, `{"featured":{"entries":[` + strings.Join(shopEntries, ",") + `]}}`},
		{CommandBattlePass, `{"levels":[` + strings.Join(levels, ",") + `]}`},
		{CommandChallenges, `{"featured":` + list + `}`},
		{CommandEvents, list},
		{CommandGameModes, `{"modes":` + list + `}`},
		{CommandStatus, list},
		{CommandStore, list},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			def, _ := Lookup(tt.command)

			payload, err := def.Project(Args{}, okResponse(tt.data))

			require.NoError(t, err)
			assert.Len(t, payload.Fields, common.MaxListFields)
		})
	}

	def, _ := Lookup(CommandBattlePass)
	payload, err := def.Project(Args{}, okResponse(`{"levels":[`+strings.Join(levels, ",")+`]}`))
	require.NoError(t, err)
	assert.Equal(t, "レベル 1", payload.Fields[0].Name)
	assert.Equal(t, "レベル 10", payload.Fields[9].Name)
}

func TestProjections_LongDescriptionFitsEmbed(t *testing.T) {
	long := strings.Repeat("あ", 2000)
	def, _ := Lookup(CommandEvents)

	payload, err := def.Project(Args{}, okResponse(`[{"title":"Live Event","description":"`+long+`"}]`))
	require.NoError(t, err)

	embed := common.BuildEmbed(payload)

	require.Len(t, embed.Fields, 1)
	assert.LessOrEqual(t, len([]rune(embed.Fields[0].Value)), common.MaxEmbedFieldValueLength)
	assert.True(t, strings.HasPrefix(embed.Fields[0].Value, "あああ"))
}

func TestProjections_MissingOptionalFieldsUsePlaceholders(t *testing.T) {
	t.Run("shop entry without items or icon", func(t *testing.T) {
		def, _ := Lookup(CommandShop)
		payload, err := def.Project(Args{}, okResponse(`{"featured":{"entries":[{"items":[]},{"items":[{"name":"Peely"}]}]}}`))

		require.NoError(t, err)
		assert.Equal(t, []models.DisplayField{
			{Name: "不明", Value: "不明", Inline: true},
			{Name: "Peely", Value: "不明", Inline: true},
		}, payload.Fields)
	})

	t.Run("cosmetic without description or images", func(t *testing.T) {
		def, _ := Lookup(CommandCosmetic)
		payload, err := def.Project(Args{"name": "x"}, okResponse(`{"name":"Peely"}`))

		require.NoError(t, err)
		assert.Equal(t, "Peely", payload.Title)
		assert.Equal(t, "説明なし", payload.Description)
		assert.Empty(t, payload.ThumbnailURL)
	})

	t.Run("stats with missing numbers", func(t *testing.T) {
		def, _ := Lookup(CommandStats)
		payload, err := def.Project(Args{"name": "Ninja"}, okResponse(`{"stats":{"all":{"overall":{"kills":5}}}}`))

		require.NoError(t, err)
		require.Len(t, payload.Fields, 4)
		assert.Equal(t, "5", payload.Fields[0].Value)
		assert.Equal(t, "不明", payload.Fields[1].Value)
		assert.Equal(t, "不明", payload.Fields[3].Value)
	})

	t.Run("battlepass level without reward", func(t *testing.T) {
		def, _ := Lookup(CommandBattlePass)
		payload, err := def.Project(Args{}, okResponse(`{"levels":[{"level":3}]}`))

		require.NoError(t, err)
		assert.Equal(t, []models.DisplayField{{Name: "レベル 3", Value: "不明", Inline: true}}, payload.Fields)
	})

	t.Run("island without description", func(t *testing.T) {
		def, _ := Lookup(CommandCreative)
		payload, err := def.Project(Args{"code": "x"}, okResponse(`{"name":"Box Fight","images":{}}`))

		require.NoError(t, err)
		assert.Equal(t, "説明なし", payload.Description)
		assert.Empty(t, payload.ImageURL)
	})
}

func TestProjections_MissingRequiredContainers(t *testing.T) {
	tests := []struct {
		command string
		data    string
	}{
		{CommandShop, `{"daily":{}}`},
		{CommandMap, `{"images":{"blank":"https://img/blank.png"}}`},
		{CommandStats, `{"account":{"name":"Ninja"}}`},
		{CommandStats, `{"stats":{"all":{}}}`},
		{CommandChallenges, `{"season":"1"}`},
		{CommandBattlePass, `{"season":"1"}`},
		{CommandGameModes, `{"season":"1"}`},
		{CommandNews, `{"motds":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			def, _ := Lookup(tt.command)

			payload, err := def.Project(Args{"name": "Ninja"}, okResponse(tt.data))

			assert.Nil(t, payload)
			assert.Error(t, err)
		})
	}
}
