package fortnite

import (
	"github.com/bwmarrin/discordgo"

	"fortbot/bot/common"
)

// Command names
const (
	CommandShop       = "shop"
	CommandCosmetic   = "cosmetic"
	CommandNews       = "news"
	CommandMap        = "map"
	CommandStats      = "stats"
	CommandCreative   = "creative"
	CommandChallenges = "challenges"
	CommandBattlePass = "battlepass"
	CommandEvents     = "events"
	CommandGameModes  = "gamemodes"
	CommandStatus     = "status"
	CommandStore      = "store"
)

// Param is one string option of a command
type Param struct {
	Name        string
	Description string
	Required    bool
}

// Definition ties a command to its upstream endpoint and display rule
type Definition struct {
	Name           string
	Description    string
	Params         []Param
	Path           string
	FailureMessage string
	Project        Projection
}

// definitions is the static command table, in registration order
var definitions = []Definition{
	{
		Name:           CommandShop,
		Description:    "現在のBRアイテムショップを表示",
		Path:           "/shop/br",
		FailureMessage: msgShopFailed,
		Project:        projectShop,
	},
	{
		Name:        CommandCosmetic,
		Description: "名前でコスメ情報を検索",
		Params: []Param{
			{Name: "name", Description: "Name", Required: true},
		},
		Path:           "/cosmetics/br/search",
		FailureMessage: msgCosmeticNotFound,
		Project:        projectCosmetic,
	},
	{
		Name:           CommandNews,
		Description:    "最新のBRニュースを表示",
		Path:           "/news/br",
		FailureMessage: msgNewsFailed,
		Project:        projectNews,
	},
	{
		Name:           CommandMap,
		Description:    "現在のマップPOI画像を表示",
		Path:           "/map",
		FailureMessage: msgMapFailed,
		Project:        projectMap,
	},
	{
		Name:        CommandStats,
		Description: "名前でプレイヤーステータスを取得",
		Params: []Param{
			{Name: "name", Description: "プレイヤー名", Required: true},
			{Name: "platform", Description: "プラットフォーム (pc, xbox, psn)", Required: true},
		},
		Path:           "/stats/br/v2",
		FailureMessage: msgPlayerNotFound,
		Project:        projectStats,
	},
	{
		Name:        CommandCreative,
		Description: "クリエイティブコードで島情報を検索",
		Params: []Param{
			{Name: "code", Description: "クリエイティブコード", Required: true},
		},
		Path:           "/creative/search",
		FailureMessage: msgIslandNotFound,
		Project:        projectCreative,
	},
	{
		Name:           CommandChallenges,
		Description:    "最新チャレンジを取得",
		Path:           "/challenges",
		FailureMessage: msgChallengesFailed,
		Project:        projectChallenges,
	},
	{
		Name:           CommandBattlePass,
		Description:    "現シーズンのバトルパス報酬を表示",
		Path:           "/battlepass",
		FailureMessage: msgBattlePassFailed,
		Project:        projectBattlePass,
	},
	{
		Name:           CommandEvents,
		Description:    "現在のゲーム内イベント情報を表示",
		Path:           "/events",
		FailureMessage: msgEventsFailed,
		Project:        projectEvents,
	},
	{
		Name:           CommandGameModes,
		Description:    "現在のゲームモード情報を表示",
		Path:           "/gamemode",
		FailureMessage: msgGameModesFailed,
		Project:        projectGameModes,
	},
	{
		Name:           CommandStatus,
		Description:    "Epic Gamesサーバーステータスを表示",
		Path:           "/status",
		FailureMessage: msgStatusFailed,
		Project:        projectStatus,
	},
	{
		Name:           CommandStore,
		Description:    "Epic Gamesストア商品一覧を表示",
		Path:           "/store",
		FailureMessage: msgStoreFailed,
		Project:        projectStore,
	},
}

// Definitions returns a copy of the command table
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}

// Lookup finds a definition by command name
func Lookup(name string) (Definition, bool) {
	for _, def := range definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// ApplicationCommand converts the definition to a Discord slash command
func (d Definition) ApplicationCommand() *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
	}

	for _, p := range d.Params {
		cmd.Options = append(cmd.Options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        p.Name,
			Description: p.Description,
			Required:    p.Required,
			MaxLength:   common.MaxOptionLength,
		})
	}

	return cmd
}

// ApplicationCommands returns every command ready for registration
func ApplicationCommands() []*discordgo.ApplicationCommand {
	defs := Definitions()
	commands := make([]*discordgo.ApplicationCommand, 0, len(defs))
	for _, def := range defs {
		commands = append(commands, def.ApplicationCommand())
	}
	return commands
}
