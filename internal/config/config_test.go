package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_DEV", "FUSION_RULE", "FUSION_OUTPUT", "FUSION_PRECISION"} {
		t.Setenv(k, "")
	}

	assert.Equal(t, "info", LogLevel())
	assert.False(t, DevLogging())
	assert.Equal(t, "pcr5", DefaultRule())
	assert.Equal(t, "text", OutputFormat())
	assert.Equal(t, 4, Precision())
}

func TestOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("FUSION_RULE", "dempster")
	t.Setenv("FUSION_OUTPUT", "JSON")
	t.Setenv("FUSION_PRECISION", "6")

	assert.Equal(t, "debug", LogLevel())
	assert.True(t, DevLogging())
	assert.Equal(t, "dempster", DefaultRule())
	assert.Equal(t, "json", OutputFormat())
	assert.Equal(t, 6, Precision())
}

func TestPrecisionRejectsGarbage(t *testing.T) {
	t.Setenv("FUSION_PRECISION", "-2")
	assert.Equal(t, 4, Precision())

	t.Setenv("FUSION_PRECISION", "lots")
	assert.Equal(t, 4, Precision())
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "fusion.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FUSION_RULE=dempster\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("FUSION_PRECISION=7\n"), 0o600))

	t.Setenv("FUSION_ENV", envFile)
	// godotenv never overrides variables that are already set, so clear
	// them through t.Setenv to get them restored afterwards.
	t.Setenv("FUSION_RULE", "")
	t.Setenv("FUSION_PRECISION", "")
	require.NoError(t, os.Unsetenv("FUSION_RULE"))
	require.NoError(t, os.Unsetenv("FUSION_PRECISION"))

	require.NoError(t, Load())
	assert.Equal(t, "dempster", DefaultRule())
	assert.Equal(t, 7, Precision())
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("FUSION_ENV", filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, Load())
}
