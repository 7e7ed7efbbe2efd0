// Package config loads PathFinder settings from an optional file, the
// environment, and a .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PATHFINDER_SERVER_PORT.
const EnvPrefix = "PATHFINDER"

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Client    ClientConfig    `mapstructure:"client"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	FrontendURL    string        `mapstructure:"frontend_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ClientConfig configures the terminal front end's connection to the API.
type ClientConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LLMConfig configures the Gemini client.
type LLMConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
}

// RedisConfig configures the result cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig configures per-client request limits on the HTTP API.
// Whitelisted clients are never limited; blacklisted clients always are.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	AnalyzeLimit    int           `mapstructure:"analyze_limit"`
	AnalyzeWindow   time.Duration `mapstructure:"analyze_window"`
	AnalyzeBurst    int           `mapstructure:"analyze_burst"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.frontend_url", "http://localhost:3000")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("client.api_url", "http://localhost:8000")
	v.SetDefault("client.timeout", 30*time.Second)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_output_tokens", 300)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 300)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.analyze_limit", 30)
	v.SetDefault("rate_limit.analyze_window", time.Hour)
	v.SetDefault("rate_limit.analyze_burst", 5)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration. path may be empty; otherwise it names a YAML or
// JSON file. Environment variables override both file and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads the first .env file found among paths. Missing files are
// not an error.
func LoadEnvFile(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return "", fmt.Errorf("failed to load %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'server.port' must be in 1..65535, got %d", c.Server.Port))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("config error: 'server.request_timeout' must be positive"))
	}
	if c.Client.Timeout <= 0 {
		errs = append(errs, errors.New("config error: 'client.timeout' must be positive"))
	}
	if err := checkURL("server.frontend_url", c.Server.FrontendURL); err != nil {
		errs = append(errs, err)
	}
	if err := checkURL("client.api_url", c.Client.APIURL); err != nil {
		errs = append(errs, err)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("config error: 'llm.temperature' must be in 0..2, got %v", c.LLM.Temperature))
	}
	if c.LLM.MaxOutputTokens <= 0 {
		errs = append(errs, errors.New("config error: 'llm.max_output_tokens' must be positive"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, errors.New("config error: 'redis.db' must be non-negative"))
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("config error: 'redis.ttl' must be positive when caching is enabled"))
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit <= 0 || c.RateLimit.DefaultWindow <= 0 {
			errs = append(errs, errors.New("config error: 'rate_limit.default_limit' and 'rate_limit.default_window' must be positive"))
		}
		if c.RateLimit.AnalyzeLimit <= 0 || c.RateLimit.AnalyzeWindow <= 0 {
			errs = append(errs, errors.New("config error: 'rate_limit.analyze_limit' and 'rate_limit.analyze_window' must be positive"))
		}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("config error: 'log.format' must be json or console, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func checkURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: '%s' must be an absolute URL, got %q", name, raw)
	}
	return nil
}

// CacheEnabled reports whether a Redis address is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
