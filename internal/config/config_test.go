package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("VOICE_EXPENSE_TEST_VALUE=from-dotenv\n"), 0600))

	t.Setenv("VOICE_EXPENSE_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("VOICE_EXPENSE_TEST_VALUE"))

	loaded := loadEnvFile(filepath.Join(dir, "missing.env"), envFile)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("VOICE_EXPENSE_TEST_VALUE"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("VOICE_EXPENSE_TEST_VALUE=from-dotenv\n"), 0600))

	t.Setenv("VOICE_EXPENSE_TEST_VALUE", "from-shell")

	loadEnvFile(envFile)
	assert.Equal(t, "from-shell", os.Getenv("VOICE_EXPENSE_TEST_VALUE"))
}

func TestLoadEnvFile_NoneFound(t *testing.T) {
	assert.Empty(t, loadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("VOICE_EXPENSE_TEST_GETENV", "set")
	assert.Equal(t, "set", GetEnv("VOICE_EXPENSE_TEST_GETENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("VOICE_EXPENSE_TEST_UNSET_VARIABLE", "fallback"))
}
