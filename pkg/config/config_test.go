// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test layered configuration loading

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/emplace/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Link.AllowSoftlinks)
	assert.False(t, cfg.Link.AlwaysCopy)
	assert.False(t, cfg.Link.Force)
	assert.Equal(t, "private_envs", cfg.Registry.Filename)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[link]\nalways_copy = true\n"), 0644))

	cfg, err := config.Load(configFile)
	require.NoError(t, err)

	assert.True(t, cfg.Link.AlwaysCopy)
	assert.True(t, cfg.Link.AllowSoftlinks, "untouched keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("EMPLACE_LINK_FORCE", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Link.Force)
}

func TestLoad_MissingConfigFileIsIgnored(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Link.AllowSoftlinks)
}
