package models

import (
	"github.com/goccy/go-json"
)

// Upstream payloads from the Fortnite API. Every field is optional: the
// projections decide what a missing value turns into.

// ShopData is the data field of /shop/br
type ShopData struct {
	Featured *ShopSection `json:"featured"`
}

// ShopSection is one section of the item shop
type ShopSection struct {
	Entries []ShopEntry `json:"entries"`
}

// ShopEntry is a purchasable bundle of one or more cosmetics
type ShopEntry struct {
	Items []Cosmetic `json:"items"`
}

// Cosmetic is a battle royale cosmetic item
type Cosmetic struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Images      CosmeticImages `json:"images"`
}

// CosmeticImages holds the artwork URLs of a cosmetic
type CosmeticImages struct {
	Icon string `json:"icon"`
}

// NewsEntry is one battle royale news message
type NewsEntry struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// MapData is the data field of /map
type MapData struct {
	Images MapImages `json:"images"`
}

// MapImages holds the map renders
type MapImages struct {
	POIs string `json:"pois"`
}

// PlayerStats is the data field of /stats/br/v2
type PlayerStats struct {
	Stats *StatsByInput `json:"stats"`
}

// StatsByInput groups stats by input method
type StatsByInput struct {
	All *StatsByMode `json:"all"`
}

// StatsByMode groups stats by game mode
type StatsByMode struct {
	Overall *OverallStats `json:"overall"`
}

// OverallStats are the lifetime totals of a player. Numbers keep their
// upstream text form so they render exactly as received.
type OverallStats struct {
	Kills   json.Number `json:"kills"`
	Wins    json.Number `json:"wins"`
	Matches json.Number `json:"matches"`
	KD      json.Number `json:"kd"`
}

// Island is a creative island
type Island struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Images      IslandImages `json:"images"`
}

// IslandImages holds the artwork URLs of an island
type IslandImages struct {
	Banner string `json:"banner"`
}

// ChallengesData is the data field of /challenges
type ChallengesData struct {
	Featured []Challenge `json:"featured"`
}

// Challenge is one in-game challenge
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BattlePassData is the data field of /battlepass
type BattlePassData struct {
	Levels []BattlePassLevel `json:"levels"`
}

// BattlePassLevel is one reward tier
type BattlePassLevel struct {
	Level  json.Number       `json:"level"`
	Reward *BattlePassReward `json:"reward"`
}

// BattlePassReward is the item granted at a tier
type BattlePassReward struct {
	Name string `json:"name"`
}

// GameEvent is one in-game event
type GameEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GameModesData is the data field of /gamemode
type GameModesData struct {
	Modes []GameMode `json:"modes"`
}

// GameMode is one playlist
type GameMode struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ServiceStatus is the state of one Epic Games service
type ServiceStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// StoreItem is one Epic Games store listing
type StoreItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
