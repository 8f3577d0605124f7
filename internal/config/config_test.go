package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.HTTP.Port)
		assert.Equal(t, "perfume_shop", cfg.Database.Database)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 9090
database:
  host: db.internal
log:
  level: debug
`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		// untouched keys keep their defaults
		assert.Equal(t, 5432, cfg.Database.Port)
	})

	t.Run("Environment overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http:\n  port: 9090\n"), 0o644))

		t.Setenv("PERFUME_HTTP_PORT", "7070")
		t.Setenv("PERFUME_DATABASE_PASSWORD", "secret")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.HTTP.Port)
		assert.Equal(t, "secret", cfg.Database.Password)
	})

	t.Run("Malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http: [broken"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
