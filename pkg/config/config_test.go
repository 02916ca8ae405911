package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_TOML(t *testing.T) {
	path := writeFile(t, "pokedex.toml", `
[database]
path = "/var/lib/pokedex.db"
read_only = false

[server]
addr = ":9090"

[display]
language = "fr"
`)

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/pokedex.db", cfg.DB.Path)
	assert.False(t, cfg.DB.ReadOnly)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "fr", cfg.Display.Language)
	// untouched keys keep their defaults
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, 25, cfg.Server.PageLimit)
	assert.Equal(t, "data", cfg.Import.Dir)
}

func TestRead_YAML(t *testing.T) {
	path := writeFile(t, "pokedex.yaml", `
database:
  path: dex.db
server:
  page_limit: 10
import:
  dir: csv
`)

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "dex.db", cfg.DB.Path)
	assert.True(t, cfg.DB.ReadOnly)
	assert.Equal(t, 10, cfg.Server.PageLimit)
	assert.Equal(t, "csv", cfg.Import.Dir)
}

func TestRead_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[database\npath = 1")
		_, err := Read(path)
		require.Error(t, err)
	})
}

func TestRead_EnvOverrides(t *testing.T) {
	t.Setenv("POKEDEX_DB_PATH", "/tmp/env.db")
	t.Setenv("POKEDEX_ADDR", ":7070")

	path := writeFile(t, "pokedex.toml", "[database]\npath = \"file.db\"\n")
	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DB.Path)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestRead_Example(t *testing.T) {
	cfg, err := Read(filepath.Join("..", "..", "pokedex.example.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}
