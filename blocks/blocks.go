package blocks

import "encoding/json"

// Type identifies a Slack block kind.
type Type string

const (
	TypeHeader  Type = "header"
	TypeSection Type = "section"
	TypeDivider Type = "divider"
	TypeTable   Type = "table"
)

// TextType identifies a Slack text object kind.
type TextType string

const (
	TextPlain    TextType = "plain_text"
	TextMarkdown TextType = "mrkdwn"
)

// Size ceilings enforced by Slack for the supported blocks.
const (
	MaxHeaderLength  = 150
	MaxSectionLength = 3000
	MaxTableRows     = 100
	MaxTableColumns  = 20
	MaxBlockIDLength = 255
)

// Block is a single Slack Block Kit block.
type Block interface {
	BlockType() Type
	// Map returns the block as plain key/value data ready for JSON encoding.
	Map() map[string]any
}

// Text is a Slack text composition object.
type Text struct {
	Type TextType `json:"type"`
	Text string   `json:"text"`
}

func (t Text) Map() map[string]any {
	return map[string]any{
		"type": string(t.Type),
		"text": t.Text,
	}
}

// Header is a plain-text header block.
type Header struct {
	Text Text
}

// NewHeader creates a header block carrying plain text.
func NewHeader(text string) *Header {
	return &Header{Text: Text{Type: TextPlain, Text: text}}
}

func (h *Header) BlockType() Type { return TypeHeader }

func (h *Header) Map() map[string]any {
	return map[string]any{
		"type": string(TypeHeader),
		"text": h.Text.Map(),
	}
}

func (h *Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Map())
}

// Section is a block carrying mrkdwn text.
type Section struct {
	Text Text
	// Expand is omitted from the output when nil.
	Expand *bool
}

// NewSection creates a section block carrying mrkdwn text.
func NewSection(text string, expand *bool) *Section {
	section := &Section{Text: Text{Type: TextMarkdown, Text: text}}
	if expand != nil {
		value := *expand
		section.Expand = &value
	}
	return section
}

func (s *Section) BlockType() Type { return TypeSection }

func (s *Section) Map() map[string]any {
	m := map[string]any{
		"type": string(TypeSection),
		"text": s.Text.Map(),
	}
	if s.Expand != nil {
		m["expand"] = *s.Expand
	}
	return m
}

func (s *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// Divider is a horizontal rule block.
type Divider struct{}

// NewDivider creates a divider block.
func NewDivider() *Divider {
	return &Divider{}
}

func (d *Divider) BlockType() Type { return TypeDivider }

func (d *Divider) Map() map[string]any {
	return map[string]any{
		"type": string(TypeDivider),
	}
}

func (d *Divider) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// Maps converts every block to its map form.
func Maps(list []Block) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, block := range list {
		out = append(out, block.Map())
	}
	return out
}
