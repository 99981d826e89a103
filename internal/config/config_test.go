package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "telegram:\n  token: \"123:abc\"\n")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", c.Telegram.Token)
	assert.True(t, c.Telegram.ForwardToAdmins)
	assert.Equal(t, 30, c.Telegram.PollTimeoutSec)
	assert.Equal(t, "file", c.Storage.Backend)
	assert.Equal(t, "data/managers.json", c.Storage.File.ManagersPath)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.True(t, c.Metrics.Enabled)

	assert.Contains(t, c.Catalogs.FrescoMaterials, "Кракелюр")
	assert.Contains(t, c.Catalogs.BackgroundMaterials, "Велюр")
	assert.Equal(t, []int{200, 220, 240, 260, 280, 300, 315}, c.Catalogs.BackgroundHeightsVelour)
	assert.Len(t, c.Catalogs.Designer, 18)
	assert.Equal(t, "Нижний Новгород", c.Catalogs.DefaultCity)

	assert.False(t, c.Flow.CommentStep)
	assert.EqualValues(t, 20, c.Flow.MaxAttachmentMB)
}

func TestLoadRequiresToken(t *testing.T) {
	path := writeConfig(t, "app:\n  env: dev\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram.token")
}

func TestLoadTokenFromLegacyEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "env-token")
	path := writeConfig(t, "app:\n  env: dev\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", c.Telegram.Token)
}

func TestLoadAdminIDsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_IDS", "10, 20,30")
	path := writeConfig(t, "telegram:\n  token: t\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, c.Telegram.AdminIDs)
}

func TestLoadAdminIDsBadValue(t *testing.T) {
	t.Setenv("ADMIN_IDS", "10,oops")
	path := writeConfig(t, "telegram:\n  token: t\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_IDS")
}

func TestLoadForwardToAdminsEnvOverride(t *testing.T) {
	t.Setenv("FORWARD_TO_ADMINS", "false")
	path := writeConfig(t, "telegram:\n  token: t\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.Telegram.ForwardToAdmins)
}

func TestLoadPostgresBackendNeedsDSN(t *testing.T) {
	path := writeConfig(t, "telegram:\n  token: t\nstorage:\n  backend: postgres\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.postgres.dsn")
}
