package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig `mapstructure:"environment"`
	HTTPServer  HTTPServerConfig  `mapstructure:"http_server"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Search      SearchConfig      `mapstructure:"search"`
}

type EnvironmentConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// RateLimitPerMin applies per client IP to the agent routes; 0 disables it.
	RateLimitPerMin int        `mapstructure:"rate_limit_per_min"`
	CORS            CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Mode         string `mapstructure:"mode"`
	Encoding     string `mapstructure:"encoding"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

// LLMConfig configures the provider chain shared by every agent.
// Durations are Go duration strings; empty means unset.
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      string           `mapstructure:"retry_delay"`
	MaxTotalTimeout string           `mapstructure:"max_total_timeout"`
	Temperature     float64          `mapstructure:"temperature"`
}

// ProviderConfig is one vendor. Lower Priority is tried first.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// SearchConfig selects and configures the web search backend.
type SearchConfig struct {
	Provider   string             `mapstructure:"provider"` // "tavily" or "google"
	MaxResults int                `mapstructure:"max_results"`
	Timeout    string             `mapstructure:"timeout"`
	Tavily     TavilyConfig       `mapstructure:"tavily"`
	Google     GoogleSearchConfig `mapstructure:"google"`
}

type TavilyConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type GoogleSearchConfig struct {
	APIKey          string `mapstructure:"api_key"`
	EngineID        string `mapstructure:"engine_id"`
	CredentialsPath string `mapstructure:"credentials_path"`
}

// Load reads config.yaml from ./config, . or /etc/app/, after loading a
// .env file from the working directory into the process environment.
// Nested keys can be overridden with env vars such as HTTP_SERVER_PORT.
func Load() (*Config, error) {
	// A missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	cfg.HTTPServer.CORS.AllowedOrigins = trimList(cfg.HTTPServer.CORS.AllowedOrigins)
	applyShortEnv(cfg)

	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}
	// Without a providers section the service talks to OpenAI with OPENAI_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{DefaultProvider()}
	}
	cfg.Search.Tavily.APIKey = expandEnvVar(cfg.Search.Tavily.APIKey)
	cfg.Search.Google.APIKey = expandEnvVar(cfg.Search.Google.APIKey)

	return cfg, nil
}

// applyShortEnv honours the flat variable names used by container
// platforms and the .env file.
func applyShortEnv(cfg *Config) {
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	for env, dst := range map[string]*string{
		"tavily_api_key":          &cfg.Search.Tavily.APIKey,
		"google_search_api_key":   &cfg.Search.Google.APIKey,
		"google_search_engine_id": &cfg.Search.Google.EngineID,
	} {
		if v := viper.GetString(env); v != "" {
			*dst = v
		}
	}
}

// DefaultProvider is the provider used when none is configured.
func DefaultProvider() ProviderConfig {
	return ProviderConfig{
		Name:     "openai",
		Enabled:  true,
		Priority: 1,
		APIKey:   expandEnvVar("${OPENAI_API_KEY}"),
		Model:    "o4-mini-2025-04-16",
		Timeout:  "60s",
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("http_server.cors.enabled", true)
	viper.SetDefault("http_server.cors.allowed_origins", "*")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// One attempt, no fallback, no global timeout
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "")
	viper.SetDefault("llm.temperature", 1.0)

	viper.SetDefault("search.provider", "tavily")
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.timeout", "30s")
	viper.SetDefault("search.tavily.api_key", "${TAVILY_API_KEY}")
	viper.SetDefault("search.tavily.base_url", "")
	viper.SetDefault("search.google.api_key", "")
	viper.SetDefault("search.google.engine_id", "")
	viper.SetDefault("search.google.credentials_path", "")
}

// Validate reports configuration problems that do not prevent startup,
// such as missing credentials. The failures surface per request instead.
func (c *Config) Validate() []string {
	return append(c.LLM.warnings(), c.Search.warnings()...)
}

// expandEnvVar resolves a whole-value ${VAR_NAME} placeholder. An
// unresolved placeholder yields "" so the credential counts as unset.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	for _, key := range []string{name, strings.ToLower(name)} {
		if v := viper.GetString(key); v != "" {
			return v
		}
	}
	return os.Getenv(name)
}

func (c *LLMConfig) warnings() []string {
	if len(c.Providers) == 0 {
		return []string{"no LLM providers configured"}
	}

	var warnings []string
	enabled := 0
	seen := make(map[int]bool)
	for i, p := range c.Providers {
		if p.Name == "" {
			warnings = append(warnings, fmt.Sprintf("provider %d: name is required", i))
			continue
		}
		if !p.Enabled {
			continue
		}
		enabled++

		switch {
		case p.Priority <= 0:
			warnings = append(warnings, fmt.Sprintf("provider %s: priority must be positive", p.Name))
		case seen[p.Priority]:
			warnings = append(warnings, fmt.Sprintf("provider %s: duplicate priority %d", p.Name, p.Priority))
		}
		seen[p.Priority] = true

		if p.APIKey == "" {
			warnings = append(warnings, fmt.Sprintf("provider %s has no API key configured", p.Name))
		}
	}
	if enabled == 0 {
		warnings = append(warnings, "no enabled LLM providers")
	}
	return warnings
}

func (c *SearchConfig) warnings() []string {
	switch c.Provider {
	case "tavily":
		if c.Tavily.APIKey == "" {
			return []string{"TAVILY_API_KEY not set, web search will fail"}
		}
	case "google":
		if c.Google.EngineID == "" {
			return []string{"google search engine_id not set, web search will fail"}
		}
		if c.Google.APIKey == "" && c.Google.CredentialsPath == "" {
			return []string{"google search has neither api_key nor credentials_path, falling back to application default credentials"}
		}
	default:
		return []string{fmt.Sprintf("unknown search provider %q, web search will fail", c.Provider)}
	}
	return nil
}

// trimList splits comma-joined entries and drops blanks, so both a YAML
// list and "a, b" from an env var work.
func trimList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
