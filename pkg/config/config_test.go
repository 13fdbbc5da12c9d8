package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/goals/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.VariantStyled, cfg.Variant)
	assert.Equal(t, config.IDStrategyUUID, cfg.IDStrategy)
	assert.True(t, cfg.ShouldConfirm())
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
variant: plain
id_strategy: counter
event_buffer: 8
fade_in: 250ms
`))
	require.NoError(t, err)
	assert.Equal(t, config.VariantPlain, cfg.Variant)
	assert.Equal(t, config.IDStrategyCounter, cfg.IDStrategy)
	assert.Equal(t, 8, cfg.EventBuffer)
	assert.Equal(t, 250*time.Millisecond, cfg.FadeIn)
	assert.False(t, cfg.ShouldConfirm())
}

func TestParse_ConfirmOverride(t *testing.T) {
	cfg, err := config.Parse([]byte("variant: plain\nconfirm_removal: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.ShouldConfirm())

	cfg, err = config.Parse([]byte("variant: styled\nconfirm_removal: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.ShouldConfirm())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"variant", "variant: fancy", config.ErrInvalidVariant},
		{"strategy", "id_strategy: random", config.ErrInvalidIDStrategy},
		{"buffer", "event_buffer: -1", config.ErrInvalidValue},
		{"fade", "fade_in: -1s", config.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := config.Parse([]byte("variant: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: plain\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.VariantPlain, cfg.Variant)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
