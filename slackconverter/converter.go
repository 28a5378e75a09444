package slackconverter

import (
	"fmt"
	"sync"

	"github.com/rgonek/slack-blocks-converter/blocks"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Converter converts GFM markdown to Slack Block Kit blocks.
//
// A Converter is immutable after New and may be shared between goroutines;
// every call renders into its own state.
type Converter struct {
	config Config
	parser goldmark.Markdown
}

// state is the accumulator owned by a single render call.
type state struct {
	config   Config
	source   []byte
	blocks   []blocks.Block
	warnings []Warning
}

var statePool = sync.Pool{
	New: func() any {
		return &state{}
	},
}

func acquireState(config Config, source []byte) *state {
	s := statePool.Get().(*state)
	s.reset()
	s.config = config
	s.source = source
	return s
}

func releaseState(s *state) {
	s.reset()
	statePool.Put(s)
}

// reset drops references instead of truncating, the slices are handed out in Result.
func (s *state) reset() {
	s.config = Config{}
	s.source = nil
	s.blocks = nil
	s.warnings = nil
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// With creates a Converter, hands it to fn and releases it once fn returns.
func With(config Config, fn func(*Converter) error) error {
	conv, err := New(config)
	if err != nil {
		return err
	}
	defer conv.release()

	return fn(conv)
}

func (c *Converter) release() {
	c.parser = nil
}

// Convert parses a markdown document and renders it to blocks.
func (c *Converter) Convert(markdown string) (Result, error) {
	if c.parser == nil {
		return Result{}, ErrReleased
	}

	source := []byte(markdown)
	root := c.parser.Parser().Parse(text.NewReader(source))
	return c.Render(root, source)
}

// Render renders an already parsed goldmark tree. source must be the
// buffer the tree was parsed from.
func (c *Converter) Render(root ast.Node, source []byte) (Result, error) {
	s := acquireState(c.config, source)
	defer releaseState(s)

	if err := s.renderDocument(root); err != nil {
		return Result{}, err
	}

	return Result{
		Blocks:   s.blocks,
		Warnings: s.warnings,
	}, nil
}

// MarkdownToBlocks converts markdown with the default config and returns
// the blocks in their plain map form.
func MarkdownToBlocks(markdown string) ([]map[string]any, error) {
	var maps []map[string]any
	err := With(Config{}, func(conv *Converter) error {
		result, err := conv.Convert(markdown)
		if err != nil {
			return fmt.Errorf("failed to convert markdown: %w", err)
		}
		maps = result.Maps()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return maps, nil
}

func (s *state) appendBlock(block blocks.Block) {
	s.blocks = append(s.blocks, block)
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}
