package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Serper    SerperConfig    `yaml:"serper" mapstructure:"serper"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Scrape    ScrapeConfig    `yaml:"scrape" mapstructure:"scrape"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Filter    FilterConfig    `yaml:"filter" mapstructure:"filter"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SerperConfig holds Serper search API settings.
type SerperConfig struct {
	Key               string  `yaml:"key" mapstructure:"key"`
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	Locale            string  `yaml:"locale" mapstructure:"locale"`
	PageSize          int     `yaml:"page_size" mapstructure:"page_size"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// AnthropicConfig holds Anthropic API settings for summarization. An empty
// key is allowed; summaries degrade to a placeholder.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// FetchConfig configures the shared page fetcher.
type FetchConfig struct {
	UserAgent         string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs       int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxAttempts       int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ScrapeConfig configures the per-site scrape phase.
type ScrapeConfig struct {
	Keywords    []string `yaml:"keywords" mapstructure:"keywords"`
	MaxParallel int      `yaml:"max_parallel" mapstructure:"max_parallel"`
}

// SearchConfig holds discovery defaults.
type SearchConfig struct {
	Terms      []string `yaml:"terms" mapstructure:"terms"`
	Country    string   `yaml:"country" mapstructure:"country"`
	MaxResults int      `yaml:"max_results" mapstructure:"max_results"`
}

// FilterConfig points at an optional YAML file overriding the built-in
// domain blacklist and aggregator word lists.
type FilterConfig struct {
	ListsPath string `yaml:"lists_path" mapstructure:"lists_path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Credential keys get an empty default so env-only values
	// survive Unmarshal.
	v.SetDefault("serper.key", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("filter.lists_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("serper.locale", "en")
	v.SetDefault("serper.page_size", 10)
	v.SetDefault("serper.requests_per_second", 2)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 750)
	v.SetDefault("fetch.timeout_secs", 20)
	v.SetDefault("fetch.max_attempts", 3)
	v.SetDefault("fetch.requests_per_second", 4)
	v.SetDefault("scrape.max_parallel", 4)
	v.SetDefault("search.terms", []string{
		"Luxury wood furniture manufacturer",
		"Premium wood manufacturing",
		"Custom wood furniture manufacturer",
	})
	v.SetDefault("search.country", "Italy")
	v.SetDefault("search.max_results", 5)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable for the given mode.
// Modes: "discover", "company", "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "discover", "company":
		if c.Serper.Key == "" {
			problems = append(problems, "serper.key is required")
		}
	case "serve":
		if c.Serper.Key == "" {
			problems = append(problems, "serper.key is required")
		}
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Fetch.MaxAttempts < 0 {
		problems = append(problems, "fetch.max_attempts must be >= 0")
	}
	if c.Search.MaxResults < 0 {
		problems = append(problems, "search.max_results must be >= 0")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
