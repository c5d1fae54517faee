package fortnite

// Embed titles
const (
	titleShop       = "Fortnite Current Item Shop"
	titleMap        = "Current Fortnite Map POIs"
	titleStatsFmt   = "%sのプレイヤーステータス"
	titleChallenges = "最新チャレンジ"
	titleBattlePass = "現シーズンのバトルパス報酬"
	titleEvents     = "現在のゲーム内イベント"
	titleGameModes  = "現在のゲームモード"
	titleStatus     = "Epic Games サーバーステータス"
	titleStore      = "Epic Games ストア商品一覧"
)

// Field labels
const (
	labelKills       = "キル数"
	labelWins        = "勝利数"
	labelMatches     = "試合数"
	labelKD          = "キル/死"
	labelLevelFmt    = "レベル %s"
	labelGameModeFmt = "ID: %s"
)

// User-facing failure messages, one per command
const (
	msgShopFailed       = "ショップ情報の取得に失敗しました。"
	msgCosmeticNotFound = "コスメが見つかりません。"
	msgNewsFailed       = "ニュースの取得に失敗しました。"
	msgMapFailed        = "マップの取得に失敗しました。"
	msgPlayerNotFound   = "プレイヤーが見つかりません。"
	msgIslandNotFound   = "島が見つかりません。"
	msgChallengesFailed = "チャレンジ情報の取得に失敗しました。"
	msgBattlePassFailed = "バトルパス情報の取得に失敗しました。"
	msgEventsFailed     = "イベント情報の取得に失敗しました。"
	msgGameModesFailed  = "ゲームモード情報の取得に失敗しました。"
	msgStatusFailed     = "サーバーステータスの取得に失敗しました。"
	msgStoreFailed      = "ストア情報の取得に失敗しました。"

	msgMissingParamFmt = "必須パラメータが指定されていません: %s"
)
