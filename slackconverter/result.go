package slackconverter

import (
	"encoding/json"
	"fmt"

	"github.com/rgonek/slack-blocks-converter/blocks"
)

// Result holds the output of a conversion.
type Result struct {
	Blocks   []blocks.Block `json:"blocks"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// Maps returns every block in its plain map form.
func (r Result) Maps() []map[string]any {
	return blocks.Maps(r.Blocks)
}

// JSON returns the blocks wrapped as a chat.postMessage style payload: {"blocks": [...]}.
func (r Result) JSON() ([]byte, error) {
	payload := map[string]any{
		"blocks": r.Maps(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal blocks JSON: %w", err)
	}
	return data, nil
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownNode    WarningType = "unknown_node"
	WarningTruncated      WarningType = "truncated"
	WarningDroppedFeature WarningType = "dropped_feature"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
