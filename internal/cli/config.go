package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgonek/slack-blocks-converter/slackconverter"
)

// fileConfig is the layout of an sbc YAML config file.
type fileConfig struct {
	Preset                string `yaml:"preset,omitempty"`
	slackconverter.Config `yaml:",inline"`
}

func loadConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (fileConfig, error) {
	var cfg fileConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
