package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Quotes struct {
		BaseURL   string        `yaml:"base_url"`
		APIKey    string        `yaml:"api_key"`
		Timeout   time.Duration `yaml:"timeout"`
		RateLimit float64       `yaml:"rate_limit"`
		RateBurst int           `yaml:"rate_burst"`
		Multi     bool          `yaml:"multi"`
	} `yaml:"quotes"`
	Cache struct {
		TTL struct {
			Overview    time.Duration `yaml:"overview"`
			Commodities time.Duration `yaml:"commodities"`
			Sectors     time.Duration `yaml:"sectors"`
			Stocks      time.Duration `yaml:"stocks"`
		} `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Sectors struct {
		// Groups overrides the built-in keyword categorization when set.
		Groups []SectorGroup `yaml:"groups"`
	} `yaml:"sectors"`
	Sentiment struct {
		VIXLevels struct {
			ExtremeFear  float64 `yaml:"extreme_fear"`
			Fear         float64 `yaml:"fear"`
			Neutral      float64 `yaml:"neutral"`
			Greed        float64 `yaml:"greed"`
			ExtremeGreed float64 `yaml:"extreme_greed"`
		} `yaml:"vix_levels"`
	} `yaml:"sentiment"`
}

// SectorGroup is one keyword bucket for sector categorization.
type SectorGroup struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("QUOTES_BASE_URL"); v != "" {
		c.Quotes.BaseURL = v
	}
	if v := os.Getenv("QUOTES_API_KEY"); v != "" {
		c.Quotes.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		c.Server.Port = port
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = 10 * time.Second
	}
	if c.Quotes.RateLimit == 0 {
		c.Quotes.RateLimit = 5
	}
	if c.Quotes.RateBurst == 0 {
		c.Quotes.RateBurst = 10
	}
	if c.Cache.TTL.Overview == 0 {
		c.Cache.TTL.Overview = 60 * time.Second
	}
	if c.Cache.TTL.Commodities == 0 {
		c.Cache.TTL.Commodities = 60 * time.Second
	}
	if c.Cache.TTL.Sectors == 0 {
		c.Cache.TTL.Sectors = 5 * time.Minute
	}
	if c.Cache.TTL.Stocks == 0 {
		c.Cache.TTL.Stocks = 5 * time.Minute
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Quotes.BaseURL == "" {
		return fmt.Errorf("quotes.base_url is required")
	}
	if c.Quotes.RateLimit < 0 {
		return fmt.Errorf("quotes.rate_limit cannot be negative")
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required when redis is enabled")
	}
	for _, g := range c.Sectors.Groups {
		if g.Key == "" || len(g.Keywords) == 0 {
			return fmt.Errorf("sectors.groups entries need a key and keywords")
		}
	}
	return nil
}
