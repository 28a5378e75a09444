package slackconverter

import "fmt"

// UnknownPolicy controls behavior for markdown block nodes without a rendering rule.
type UnknownPolicy string

const (
	UnknownError       UnknownPolicy = "error"
	UnknownSkip        UnknownPolicy = "skip"
	UnknownPlaceholder UnknownPolicy = "placeholder"
)

// Config configures Markdown to Slack block conversion.
type Config struct {
	// Expand sets the expand flag of every section block. Nil leaves it out.
	Expand *bool `json:"expand,omitempty" yaml:"expand,omitempty"`
	// UnknownNodes decides what happens to block nodes no rule covers.
	UnknownNodes UnknownPolicy `json:"unknownNodes,omitempty" yaml:"unknownNodes,omitempty"`
	// TableAlignment emits column_settings derived from GFM column alignment.
	TableAlignment bool `json:"tableAlignment,omitempty" yaml:"tableAlignment,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.UnknownNodes == "" {
		c.UnknownNodes = UnknownPlaceholder
	}

	return c
}

func (c Config) clone() Config {
	cloned := c
	if c.Expand != nil {
		expand := *c.Expand
		cloned.Expand = &expand
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.UnknownNodes != UnknownError && c.UnknownNodes != UnknownSkip && c.UnknownNodes != UnknownPlaceholder {
		return fmt.Errorf("invalid unknownNodes policy %q", c.UnknownNodes)
	}

	return nil
}

// Bool returns a pointer to v, for use with Config.Expand.
func Bool(v bool) *bool {
	return &v
}
