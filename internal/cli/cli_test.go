package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/slack-blocks-converter/slackconverter"
)

func testInfo() BuildInfo {
	return BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(testInfo())
	require.NotNil(t, cmd)
	assert.Equal(t, "sbc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"convert", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestConvertCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(testInfo())
	convertCmd, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)

	for _, flag := range []string{"config", "preset", "output", "expand", "strict", "compact", "payload"} {
		assert.NotNil(t, convertCmd.Flags().Lookup(flag), flag)
	}
}

func TestConvertStdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "# Title\n\nHello **world**\n", "convert", "--compact")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"header","text":{"type":"plain_text","text":"Title"}},
		{"type":"section","text":{"type":"mrkdwn","text":"Hello *world*"}}
	]`, out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestConvertFileWithPayload(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "doc.md", "---\n")
	out, err := execute(t, "", "convert", path, "--payload")
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocks":[{"type":"divider"}]}`, out)
	assert.Contains(t, out, "\n  ")
}

func TestConvertExpandFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"absent", nil, `[{"type":"section","text":{"type":"mrkdwn","text":"hi"}}]`},
		{"true", []string{"--expand"}, `[{"type":"section","text":{"type":"mrkdwn","text":"hi"},"expand":true}]`},
		{"false", []string{"--expand=false"}, `[{"type":"section","text":{"type":"mrkdwn","text":"hi"},"expand":false}]`},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "hi", append([]string{"convert", "-"}, tt.args...)...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, out)
		})
	}
}

func TestConvertOutputFile(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "blocks.json")
	out, err := execute(t, "text", "convert", "--output", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "section", decoded[0]["type"])
}

func TestConvertMissingFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "convert", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertConfigFile(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "sbc.yaml", "expand: true\n")
	out, err := execute(t, "hi", "convert", "--config", configPath)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"section","text":{"type":"mrkdwn","text":"hi"},"expand":true}]`, out)

	out, err = execute(t, "hi", "convert", "--config", configPath, "--expand=false")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"section","text":{"type":"mrkdwn","text":"hi"},"expand":false}]`, out)
}

func TestConvertRejectsUnknownConfigField(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "sbc.yaml", "expnad: true\n")
	_, err := execute(t, "hi", "convert", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expnad")
}

func TestConvertUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "hi", "convert", "--preset", "fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fancy")
}

func TestPresetConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset   string
		expected slackconverter.Config
	}{
		{"", slackconverter.Config{}},
		{"balanced", slackconverter.Config{}},
		{"Strict", slackconverter.Config{UnknownNodes: slackconverter.UnknownError}},
		{"readable", slackconverter.Config{Expand: slackconverter.Bool(true), TableAlignment: true}},
		{" lossy ", slackconverter.Config{UnknownNodes: slackconverter.UnknownSkip}},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.preset, func(t *testing.T) {
			t.Parallel()

			cfg, err := presetConfig(tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig([]byte("preset: strict\nunknownNodes: skip\ntableAlignment: true\nexpand: false\n"))
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Preset)
	assert.Equal(t, slackconverter.UnknownSkip, cfg.UnknownNodes)
	assert.True(t, cfg.TableAlignment)
	require.NotNil(t, cfg.Expand)
	assert.False(t, *cfg.Expand)

	empty, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, empty)
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	base := slackconverter.Config{UnknownNodes: slackconverter.UnknownError}
	merged := mergeConfig(base, slackconverter.Config{Expand: slackconverter.Bool(false), TableAlignment: true})

	assert.Equal(t, slackconverter.UnknownError, merged.UnknownNodes)
	assert.True(t, merged.TableAlignment)
	require.NotNil(t, merged.Expand)
	assert.False(t, *merged.Expand)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
}
