package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("OLLAMA_HOST")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":5001", cfg.Listen)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.SynthesisModel)
	assert.Equal(t, "llama3:8b", cfg.Ollama.Model)
}

func TestLoadFile(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("OLLAMA_HOST")

	path := filepath.Join(t.TempDir(), "assist.yaml")
	content := []byte("listen: \":8080\"\nopenai:\n  apiKey: file-key\n  model: gpt-test\n")
	require.NoError(t, ioutil.WriteFile(path, content, 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "file-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-test", cfg.OpenAI.Model)
	// Untouched sections keep their defaults.
	assert.Equal(t, int64(4), cfg.MaxInFlight)
}

func TestEnvOverrides(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "env-key")
	os.Setenv("OLLAMA_HOST", "http://models:11434")
	defer os.Unsetenv("OPENAI_API_KEY")
	defer os.Unsetenv("OLLAMA_HOST")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "http://models:11434", cfg.Ollama.Endpoint)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assist.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("listen: [unclosed"), 0600))

	_, err := Load(path)

	assert.Error(t, err)
}
