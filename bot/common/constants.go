package common

// ColorPrimary is the embed color, Discord blurple
const ColorPrimary = 0x5865F2

// Display limits
const (
	// MaxListFields bounds how many list entries become embed fields
	MaxListFields = 10

	// Discord rejects an embed exceeding any of these, counted in characters
	MaxEmbedTitleLength       = 256
	MaxEmbedDescriptionLength = 4096
	MaxEmbedFieldNameLength   = 256
	MaxEmbedFieldValueLength  = 1024

	// MaxOptionLength caps user-typed string options
	MaxOptionLength = 100
)

// Placeholders used when an optional upstream field is missing
const (
	PlaceholderDescription = "説明なし"
	PlaceholderUnknown     = "不明"
)
