package slackconverter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()

	assert.Nil(t, cfg.Expand)
	assert.Equal(t, UnknownPlaceholder, cfg.UnknownNodes)
	assert.False(t, cfg.TableAlignment)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := (Config{UnknownNodes: UnknownError, Expand: Bool(false)}).applyDefaults()

	assert.Equal(t, UnknownError, cfg.UnknownNodes)
	require.NotNil(t, cfg.Expand)
	assert.False(t, *cfg.Expand)
}

func TestValidate(t *testing.T) {
	for _, policy := range []UnknownPolicy{UnknownError, UnknownSkip, UnknownPlaceholder} {
		require.NoError(t, Config{UnknownNodes: policy}.Validate(), policy)
	}

	err := Config{UnknownNodes: "explode"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{UnknownNodes: UnknownPolicy("invalid")})
	require.Error(t, err)
}

func TestCloneDetachesExpand(t *testing.T) {
	original := Config{Expand: Bool(true)}
	cloned := original.clone()

	*original.Expand = false
	require.NotNil(t, cloned.Expand)
	assert.True(t, *cloned.Expand)
}

func TestConfigJSONTags(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"expand":false,"unknownNodes":"skip","tableAlignment":true}`), &cfg))

	require.NotNil(t, cfg.Expand)
	assert.False(t, *cfg.Expand)
	assert.Equal(t, UnknownSkip, cfg.UnknownNodes)
	assert.True(t, cfg.TableAlignment)
}
