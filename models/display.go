package models

// DisplayField is one name/value row of a display payload
type DisplayField struct {
	Name   string
	Value  string
	Inline bool
}

// DisplayPayload is the message content built for one command invocation
type DisplayPayload struct {
	Title        string
	Description  string
	Fields       []DisplayField
	ImageURL     string
	ThumbnailURL string
}

// AddField appends a field to the payload
func (p *DisplayPayload) AddField(name, value string, inline bool) {
	p.Fields = append(p.Fields, DisplayField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
}
