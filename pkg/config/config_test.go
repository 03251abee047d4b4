package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

llm:
  provider: openai
  endpoint: http://localhost:11434/v1
  api_key: secret
  model: llama3
  temperature: 0.5

embedding:
  provider: openai
  model: nomic-embed-text

sources:
  donki: false
  feeds:
    - name: spacenews
      url: https://spacenews.com/feed/

schedule:
  enrichment: "0 5 * * *"
  analyze: "-"

enrichment:
  max_per_run: 3
  ttl: 72h
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
		assert.True(t, cfg.LLMEnabled())
		assert.Equal(t, "nomic-embed-text", cfg.Embedding.Model)

		assert.True(t, cfg.Sources.Webb, "toggles stay on unless disabled")
		assert.True(t, cfg.Sources.APOD)
		assert.False(t, cfg.Sources.DONKI)
		require.Len(t, cfg.Sources.Feeds, 1)
		assert.Equal(t, "spacenews", cfg.Sources.Feeds[0].Name)

		assert.Equal(t, "0 5 * * *", cfg.Schedule.Enrichment)
		assert.Equal(t, "-", cfg.Schedule.Analyze)
		assert.Equal(t, 3, cfg.Enrichment.MaxPerRun)
		assert.Equal(t, 72*time.Hour, cfg.Enrichment.TTL)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
		assert.NotEmpty(t, cfg.LLM.Model)
		assert.False(t, cfg.LLMEnabled(), "no api key means degraded mode")
		assert.Equal(t, ProviderNone, cfg.Embedding.Provider)
		assert.Equal(t, "https://html.duckduckgo.com/html/", cfg.Search.Endpoint)
		assert.Equal(t, 3, cfg.Search.Retries)
		assert.Equal(t, "DEMO_KEY", cfg.Sources.NASAAPIKey)
		assert.Equal(t, 50, cfg.Launches.UpcomingLimit)
		assert.Equal(t, "0 6 * * *", cfg.Schedule.Enrichment)
		assert.Equal(t, 7, cfg.Schedule.AnalyzeDays)
		assert.Equal(t, 5, cfg.Enrichment.MaxPerRun)
		assert.Equal(t, 7*24*time.Hour, cfg.Enrichment.TTL)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("SPACESCOPE_TEST_KEY", "from-env")
		cfg, err := Load(writeConfig(t, "llm:\n  api_key: ${SPACESCOPE_TEST_KEY}\n"))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "bad llm provider", modify: func(c *Config) { c.LLM.Provider = "mistral" }, errMsg: "llm.provider"},
		{name: "bad temperature", modify: func(c *Config) { c.LLM.Temperature = 3 }, errMsg: "llm.temperature"},
		{name: "bad embedding provider", modify: func(c *Config) { c.Embedding.Provider = "cohere" }, errMsg: "embedding.provider"},
		{name: "negative retries", modify: func(c *Config) { c.Search.Retries = -1 }, errMsg: "search.retries"},
		{name: "short ttl", modify: func(c *Config) { c.Enrichment.TTL = time.Second }, errMsg: "enrichment.ttl"},
		{name: "feed without url", modify: func(c *Config) { c.Sources.Feeds = []FeedConfig{{Name: "x"}} }, errMsg: "sources.feeds[0].url"},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SetDefaults()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		cfg := &Config{}
		cfg.SetDefaults()
		assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := &Config{}
		cfg.SetDefaults()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("embedding model required", func(t *testing.T) {
		cfg := &Config{}
		cfg.SetDefaults()
		cfg.Embedding.Provider = ProviderGenAI
		cfg.Embedding.Model = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding.model")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	assert.Contains(t, schema.Definitions, "Config")
	assert.Contains(t, schema.Definitions, "LLMConfig")
}
