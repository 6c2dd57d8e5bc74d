package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "https://toto.dola", cfg.Endpoint)
	assert.Equal(t, "customPattern", cfg.Pattern)
	assert.Equal(t, "csv", cfg.Extension)
	assert.Equal(t, []string{"12345", "67890", "abcde"}, cfg.FileIDs)
	assert.False(t, cfg.Compress)
}

func TestConfig_loadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pattern: report
extension: pdf
file_ids: [a1, b2]
compress: true
`), 0644))

	cfg := Default()
	require.NoError(t, cfg.loadFile(path))
	assert.Equal(t, "report", cfg.Pattern)
	assert.Equal(t, "pdf", cfg.Extension)
	assert.Equal(t, []string{"a1", "b2"}, cfg.FileIDs)
	assert.True(t, cfg.Compress)
	// untouched keys keep their default
	assert.Equal(t, "https://toto.dola", cfg.Endpoint)
}

func TestLoad_emptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().FileIDs, cfg.FileIDs)
	assert.Equal(t, "customPattern", cfg.Pattern)
}

func TestConfig_loadFile_missing(t *testing.T) {
	cfg := Default()
	err := cfg.loadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Open config [")
	}
}

func TestConfig_loadFile_malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file_ids: {"), 0644))

	cfg := Default()
	assert.Error(t, cfg.loadFile(path))
}

func TestConfig_applyEnv(t *testing.T) {
	env := map[string]string{
		"SUBSTORAGE_ENDPOINT":  "http://localhost:8080",
		"SUBSTORAGE_OUTPUT":    "/tmp/out",
		"SUBSTORAGE_FILE_IDS":  "x, y ,z",
		"SUBSTORAGE_COMPRESS":  "true",
		"SUBSTORAGE_EXTENSION": "txt",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, "http://localhost:8080", cfg.Endpoint)
	assert.Equal(t, "/tmp/out", cfg.Output)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.FileIDs)
	assert.True(t, cfg.Compress)
	assert.Equal(t, "txt", cfg.Extension)
	assert.Equal(t, "customPattern", cfg.Pattern)
}

func TestConfig_applyEnv_badBool(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == "SUBSTORAGE_COMPRESS" {
			return "maybe", true
		}
		return "", false
	})
	assert.Error(t, err)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("SUBSTORAGE_PATTERN", "fromEnv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fromEnv", cfg.Pattern)
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"12345", "67890", "abcde"}, SplitIDs("12345,67890 abcde"))
	assert.Empty(t, SplitIDs(" , ,"))
}
