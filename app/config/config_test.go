package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	writeConfig(t, "{}\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "phi4-mini:latest", cfg.LLM.Model)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 30, cfg.Fetch.TimeoutSeconds)
}

func TestLoadExplicitValues(t *testing.T) {
	writeConfig(t, `
server:
  addr: "0.0.0.0:9000"
llm:
  provider: openai
  base_url: "https://openrouter.ai/api/v1"
  token: "sk-test"
  model: "gpt-3.5-turbo"
  temperature: 0.2
fetch:
  user_agent: "websum/1.0"
  timeout_seconds: 10
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, "websum/1.0", cfg.Fetch.UserAgent)
	assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	writeConfig(t, `
llm:
  provider: bard
`)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}
