package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/config"
)

func TestLoadModregFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadModregFile(t.TempDir())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("defaults filled in", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ModregFileName), []byte(""), 0644))

		mf, err := config.LoadModregFile(dir)
		require.NoError(t, err)
		assert.Equal(t, ".modreg", mf.Registry.Dir)
		assert.Equal(t, filepath.Join(".modreg", "targets.yaml"), mf.Targets.Manifest)
	})

	t.Run("full file", func(t *testing.T) {
		dir := t.TempDir()
		content := `
orchestrator = "0x00000000000000000000000000000000000000CE"

[registry]
dir = "state"

[targets]
manifest = "deploy/targets.yaml"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ModregFileName), []byte(content), 0644))

		mf, err := config.LoadModregFile(dir)
		require.NoError(t, err)
		assert.Equal(t, "0x00000000000000000000000000000000000000CE", mf.Orchestrator)
		assert.Equal(t, "state", mf.Registry.Dir)
		assert.Equal(t, "deploy/targets.yaml", mf.Targets.Manifest)
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ModregFileName), []byte("[registry\n"), 0644))

		_, err := config.LoadModregFile(dir)
		assert.Error(t, err)
	})
}
