package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL used for RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:spacescope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM used for synthesis and pattern analysis and chat"`
	Embedding  EmbeddingConfig  `yaml:"embedding" json:"embedding" jsonschema:"description=Embedding provider for the semantic index"`
	Search     SearchConfig     `yaml:"search" json:"search" jsonschema:"description=Web research settings"`
	Sources    SourcesConfig    `yaml:"sources" json:"sources" jsonschema:"description=News providers"`
	Launches   LaunchesConfig   `yaml:"launches" json:"launches" jsonschema:"description=Upcoming launch feed"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule" jsonschema:"description=Cron schedule of background jobs"`
	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment" jsonschema:"description=Daily enrichment settings"`
}

// llm providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGenAI     = "genai"
	ProviderNone      = "none"
)

// LLMConfig holds LLM client settings. Empty APIKey disables LLM features.
type LLMConfig struct {
	Provider          string        `yaml:"provider" json:"provider" jsonschema:"default=anthropic,enum=openai,enum=anthropic,description=LLM provider"`
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Custom API endpoint (OpenAI-compatible or Anthropic base URL)"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Temperature       float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute" json:"requests_per_minute" jsonschema:"default=30,description=Client side request pacing (0 disables)"`
}

// EmbeddingConfig holds embedding provider settings
type EmbeddingConfig struct {
	Provider string `yaml:"provider" json:"provider" jsonschema:"default=none,enum=openai,enum=genai,enum=none,description=Embedding provider (none uses lexical ranking)"`
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible embeddings endpoint"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string `yaml:"model" json:"model" jsonschema:"description=Embedding model name"`
}

// SearchConfig holds web research settings
type SearchConfig struct {
	Endpoint        string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://html.duckduckgo.com/html/,description=HTML search endpoint"`
	Retries         int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts per query on rate limiting"`
	Backoff         time.Duration `yaml:"backoff" json:"backoff" jsonschema:"default=2s,description=Sleep between rate-limited attempts"`
	InterQueryDelay time.Duration `yaml:"inter_query_delay" json:"inter_query_delay" jsonschema:"default=1s,description=Delay between consecutive research queries"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Search request timeout"`
}

// FeedConfig is an extra RSS/Atom source
type FeedConfig struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Source name stored with items"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
}

// SourcesConfig holds news provider settings
type SourcesConfig struct {
	NASAAPIKey     string        `yaml:"nasa_api_key" json:"nasa_api_key" jsonschema:"default=DEMO_KEY,description=api.nasa.gov key for APOD and DONKI"`
	Webb           bool          `yaml:"webb" json:"webb" jsonschema:"default=true,description=Collect Webb telescope news releases"`
	Images         bool          `yaml:"images" json:"images" jsonschema:"default=true,description=Collect NASA image library items"`
	APOD           bool          `yaml:"apod" json:"apod" jsonschema:"default=true,description=Collect astronomy picture of the day"`
	DONKI          bool          `yaml:"donki" json:"donki" jsonschema:"default=true,description=Collect space weather notifications"`
	PageSize       int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,description=Items requested per provider"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Provider request timeout"`
	Feeds          []FeedConfig  `yaml:"feeds" json:"feeds" jsonschema:"description=Extra RSS/Atom feeds"`
	ExtractContent bool          `yaml:"extract_content" json:"extract_content" jsonschema:"default=false,description=Extract full article text for feed items without content"`
}

// LaunchesConfig holds the launch feed settings
type LaunchesConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://ll.thespacedevs.com/2.2.0,description=Launch Library 2 base URL"`
	UpcomingLimit int           `yaml:"upcoming_limit" json:"upcoming_limit" jsonschema:"default=50,description=Upcoming launches fetched per enrichment run"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ScheduleConfig holds cron expressions of background jobs, "-" disables a job
type ScheduleConfig struct {
	Enrichment  string `yaml:"enrichment" json:"enrichment" jsonschema:"default=0 6 * * *,description=Daily enrichment cron"`
	Collect     string `yaml:"collect" json:"collect" jsonschema:"default=0 */6 * * *,description=News collection cron"`
	Analyze     string `yaml:"analyze" json:"analyze" jsonschema:"default=30 */12 * * *,description=Pattern analysis cron"`
	AnalyzeDays int    `yaml:"analyze_days" json:"analyze_days" jsonschema:"default=7,description=Analysis window in days"`
}

// EnrichmentConfig holds daily enrichment settings
type EnrichmentConfig struct {
	MaxPerRun int           `yaml:"max_per_run" json:"max_per_run" jsonschema:"default=5,minimum=1,description=Enrichment attempts per daily run"`
	TTL       time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=168h,description=Lifetime of enriched content"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	// provider toggles are on unless the file turns them off
	var cfg Config
	cfg.Sources.Webb, cfg.Sources.Images, cfg.Sources.APOD, cfg.Sources.DONKI = true, true, true, true
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset values
func (c *Config) SetDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://" + c.Server.Listen
		if strings.HasPrefix(c.Server.Listen, ":") {
			c.Server.BaseURL = "http://localhost" + c.Server.Listen
		}
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:spacescope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderAnthropic
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel(c.LLM.Provider)
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2000
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.RequestsPerMinute == 0 {
		c.LLM.RequestsPerMinute = 30
	}

	if c.Embedding.Provider == "" {
		c.Embedding.Provider = ProviderNone
	}
	if c.Embedding.Model == "" {
		switch c.Embedding.Provider {
		case ProviderOpenAI:
			c.Embedding.Model = "text-embedding-3-small"
		case ProviderGenAI:
			c.Embedding.Model = "text-embedding-004"
		}
	}

	if c.Search.Endpoint == "" {
		c.Search.Endpoint = "https://html.duckduckgo.com/html/"
	}
	if c.Search.Retries == 0 {
		c.Search.Retries = 3
	}
	if c.Search.Backoff == 0 {
		c.Search.Backoff = 2 * time.Second
	}
	if c.Search.InterQueryDelay == 0 {
		c.Search.InterQueryDelay = time.Second
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 15 * time.Second
	}

	if c.Sources.NASAAPIKey == "" {
		c.Sources.NASAAPIKey = "DEMO_KEY"
	}
	if c.Sources.PageSize == 0 {
		c.Sources.PageSize = 20
	}
	if c.Sources.Timeout == 0 {
		c.Sources.Timeout = 30 * time.Second
	}

	if c.Launches.Endpoint == "" {
		c.Launches.Endpoint = "https://ll.thespacedevs.com/2.2.0"
	}
	if c.Launches.UpcomingLimit == 0 {
		c.Launches.UpcomingLimit = 50
	}
	if c.Launches.Timeout == 0 {
		c.Launches.Timeout = 30 * time.Second
	}

	if c.Schedule.Enrichment == "" {
		c.Schedule.Enrichment = "0 6 * * *"
	}
	if c.Schedule.Collect == "" {
		c.Schedule.Collect = "0 */6 * * *"
	}
	if c.Schedule.Analyze == "" {
		c.Schedule.Analyze = "30 */12 * * *"
	}
	if c.Schedule.AnalyzeDays == 0 {
		c.Schedule.AnalyzeDays = 7
	}

	if c.Enrichment.MaxPerRun == 0 {
		c.Enrichment.MaxPerRun = 5
	}
	if c.Enrichment.TTL == 0 {
		c.Enrichment.TTL = 7 * 24 * time.Hour
	}
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "claude-3-5-sonnet-20241022"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("llm.provider must be one of openai, anthropic, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.MaxTokens < 1 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if cfg.LLM.RequestsPerMinute < 0 {
		return fmt.Errorf("llm.requests_per_minute must be non-negative")
	}

	switch cfg.Embedding.Provider {
	case ProviderOpenAI, ProviderGenAI, ProviderNone:
	default:
		return fmt.Errorf("embedding.provider must be one of openai, genai, none, got %q", cfg.Embedding.Provider)
	}

	if cfg.Search.Retries < 1 {
		return fmt.Errorf("search.retries must be at least 1")
	}
	if cfg.Enrichment.MaxPerRun < 1 {
		return fmt.Errorf("enrichment.max_per_run must be at least 1")
	}
	if cfg.Enrichment.TTL < time.Minute {
		return fmt.Errorf("enrichment.ttl must be at least 1 minute")
	}
	if cfg.Schedule.AnalyzeDays < 1 {
		return fmt.Errorf("schedule.analyze_days must be at least 1")
	}

	for i, f := range cfg.Sources.Feeds {
		if f.URL == "" {
			return fmt.Errorf("sources.feeds[%d].url is required", i)
		}
		if f.Name == "" {
			return fmt.Errorf("sources.feeds[%d].name is required", i)
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// LLMEnabled reports whether an LLM credential is configured
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}
