package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpanel/internal/domain"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, domain.TabAll, cfg.Tab())
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.SeedQuery = "Randa"
	cfg.DefaultTab = "people"
	cfg.UISettings.Mouse = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, domain.TabPeople, loaded.Tab())
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("seed_query = \"kr\"\n[ui]\nalt_screen = false\n"))
	require.NoError(t, err)

	assert.Equal(t, "kr", cfg.SeedQuery)
	assert.Equal(t, "all", cfg.DefaultTab)
	assert.False(t, cfg.UISettings.AltScreen)
	assert.True(t, cfg.UISettings.Mouse)
	assert.True(t, cfg.UISettings.HighlightMatches)
}

func TestParseInvalidTab(t *testing.T) {
	_, err := Parse([]byte(`default_tab = "chats"`))
	assert.ErrorIs(t, err, ErrInvalidTab)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`filters = { files = false }`))
	assert.Error(t, err)
}

func TestLoadFromPathWrapsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0644))

	_, err := NewConfigService(path).Load()
	assert.ErrorContains(t, err, path)
	assert.ErrorContains(t, err, "failed to parse config")
}
