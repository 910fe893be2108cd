package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	t.Run("empty settings keep base", func(t *testing.T) {
		cfg, err := DecodeConfig(nil, ChatConfig())
		require.NoError(t, err)
		assert.Equal(t, ChatConfig(), cfg)
	})

	t.Run("override single flag", func(t *testing.T) {
		cfg, err := DecodeConfig(map[string]interface{}{
			"allow_images": true,
		}, ChatConfig())
		require.NoError(t, err)
		assert.True(t, cfg.AllowImages)
		assert.True(t, cfg.AllowLinks)
		assert.True(t, cfg.AllowBasicFormatting)
	})

	t.Run("disable base flag", func(t *testing.T) {
		cfg, err := DecodeConfig(map[string]interface{}{
			"allow_links": false,
		}, ChatConfig())
		require.NoError(t, err)
		assert.False(t, cfg.AllowLinks)
		assert.True(t, cfg.AllowTables)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := DecodeConfig(map[string]interface{}{
			"allow_everything": true,
		}, DefaultConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode options")
	})
}

func TestAllowListExpansion(t *testing.T) {
	rules := ChatConfig().allowList()

	assert.Contains(t, rules.Tags, "p")
	assert.Contains(t, rules.Tags, "a")
	assert.Contains(t, rules.Tags, "table")
	assert.Contains(t, rules.Tags, "code")
	assert.NotContains(t, rules.Tags, "img")
	assert.Equal(t, []string{"href", "title", "rel", "target"}, rules.Attrs["a"])

	rules = DefaultConfig().allowList()
	assert.NotContains(t, rules.Tags, "a")
	assert.NotContains(t, rules.Tags, "table")

	// Forbidden tags and schemes are config independent.
	assert.Contains(t, rules.ForbiddenTags, "script")
	assert.Contains(t, rules.ForbiddenTags, "iframe")
	assert.Equal(t, []string{"http", "https", "mailto", "tel", "ftp"}, rules.URLSchemes)
}
