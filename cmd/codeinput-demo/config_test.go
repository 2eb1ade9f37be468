package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codeinput.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseOptions_Defaults(t *testing.T) {
	opts, _, err := parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, opts.Length)
	assert.Equal(t, "digits", opts.Policy)
	assert.Empty(t, opts.configPath)
}

func TestParseOptions_FileThenFlags(t *testing.T) {
	path := writeConfig(t, "length: 8\npolicy: hex\nmask: \"*\"\n")

	opts, _, err := parseOptions([]string{"--config", path, "--policy", "alphanumeric"})
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Length)
	assert.Equal(t, "alphanumeric", opts.Policy)
	assert.Equal(t, "*", opts.Mask)
	assert.Equal(t, " ", opts.Gap, "keys missing from the file keep defaults")
}

func TestParseOptions_RejectsExtraArgs(t *testing.T) {
	_, _, err := parseOptions([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected argument")
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), defaultFileConfig())
	require.Error(t, err)

	_, err = loadConfigFile(writeConfig(t, "length: [\n"), defaultFileConfig())
	require.Error(t, err)

	_, err = loadConfigFile(writeConfig(t, "length: 0\n"), defaultFileConfig())
	require.Error(t, err)
}
