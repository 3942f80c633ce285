package discord

// Message is the JSON body accepted by a Discord webhook endpoint.
type Message struct {
	Content         string           `json:"content"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// AllowedMentions restricts which mention types in the content actually
// ping. Listing the role explicitly keeps an injected `@everyone` inert.
type AllowedMentions struct {
	Parse []string `json:"parse"`
	Roles []string `json:"roles,omitempty"`
}

type Embed struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Color       int             `json:"color,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"`
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type EmbedAuthor struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type EmbedThumbnail struct {
	URL string `json:"url"`
}

// Clamp applies the platform field limits to every part of the message.
func (m *Message) Clamp() {
	m.Content = Truncate(m.Content, MaxContentLength)
	for i := range m.Embeds {
		e := &m.Embeds[i]
		e.Title = Truncate(e.Title, MaxTitleLength)
		e.Description = Truncate(e.Description, MaxDescriptionLength)
		for j := range e.Fields {
			e.Fields[j].Name = Truncate(e.Fields[j].Name, MaxFieldNameLength)
			e.Fields[j].Value = Truncate(e.Fields[j].Value, MaxFieldValueLength)
		}
	}
}
