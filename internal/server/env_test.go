package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetForTest clears key for the duration of the test and restores it afterwards
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFiles_DotEnvOnly(t *testing.T) {
	dir := t.TempDir()
	dotEnv := writeEnvFile(t, dir, ".env", "SUMMARY_TEST_SECRET=from-dotenv\n")
	unsetForTest(t, "SUMMARY_TEST_SECRET")

	loaded := LoadEnvFiles(filepath.Join(dir, "local.env"), dotEnv)

	assert.Equal(t, []string{dotEnv}, loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("SUMMARY_TEST_SECRET"))
}

func TestLoadEnvFiles_EarlierFileWins(t *testing.T) {
	dir := t.TempDir()
	local := writeEnvFile(t, dir, "local.env", "SUMMARY_TEST_SECRET=from-local\n")
	dotEnv := writeEnvFile(t, dir, ".env", "SUMMARY_TEST_SECRET=from-dotenv\nSUMMARY_TEST_MODEL=llama\n")
	unsetForTest(t, "SUMMARY_TEST_SECRET")
	unsetForTest(t, "SUMMARY_TEST_MODEL")

	loaded := LoadEnvFiles(local, dotEnv)

	assert.Equal(t, []string{local, dotEnv}, loaded)
	assert.Equal(t, "from-local", os.Getenv("SUMMARY_TEST_SECRET"))
	assert.Equal(t, "llama", os.Getenv("SUMMARY_TEST_MODEL"))
}

func TestLoadEnvFiles_ExistingEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	dotEnv := writeEnvFile(t, dir, ".env", "SUMMARY_TEST_SECRET=from-dotenv\n")
	t.Setenv("SUMMARY_TEST_SECRET", "from-shell")

	LoadEnvFiles(dotEnv)

	assert.Equal(t, "from-shell", os.Getenv("SUMMARY_TEST_SECRET"))
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, LoadEnvFiles(filepath.Join(dir, "local.env"), filepath.Join(dir, ".env")))
}
