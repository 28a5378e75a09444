package cli

import (
	"fmt"
	"strings"

	"github.com/rgonek/slack-blocks-converter/slackconverter"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetReadable = "readable"
	presetLossy    = "lossy"
)

func presetConfig(preset string) (slackconverter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return slackconverter.Config{}, nil
	case presetStrict:
		return slackconverter.Config{
			UnknownNodes: slackconverter.UnknownError,
		}, nil
	case presetReadable:
		return slackconverter.Config{
			Expand:         slackconverter.Bool(true),
			TableAlignment: true,
		}, nil
	case presetLossy:
		return slackconverter.Config{
			UnknownNodes: slackconverter.UnknownSkip,
		}, nil
	default:
		return slackconverter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, readable, lossy)", preset)
	}
}

// mergeConfig overlays the fields set in override onto base.
func mergeConfig(base, override slackconverter.Config) slackconverter.Config {
	if override.Expand != nil {
		base.Expand = slackconverter.Bool(*override.Expand)
	}
	if override.UnknownNodes != "" {
		base.UnknownNodes = override.UnknownNodes
	}
	if override.TableAlignment {
		base.TableAlignment = true
	}
	return base
}
