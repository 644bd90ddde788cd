package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofixit/pkg/config"
)

func TestGenerateTemplate(t *testing.T) {
	t.Run("minimal template parses as config", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "fixit", cfg.Suffix)
	})

	t.Run("full template carries defaults", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "fixit", cfg.Suffix)
		assert.True(t, cfg.DetectLanguage)
		assert.True(t, cfg.Backups.Enabled)
		assert.Equal(t, "sidecar", cfg.Backups.Mode)
		assert.Equal(t, config.FormatText, cfg.Format)
		assert.Contains(t, cfg.Ignore, "vendor/**")
	})

	t.Run("json template is valid JSON", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, "fixit", parsed["suffix"])
	})
}
