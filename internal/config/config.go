package config

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type BackendKind string

const (
	SupabaseBackend BackendKind = "supabase"
	PostgresBackend BackendKind = "postgres"
)

type SupabaseConfig struct {
	URL               string `yaml:"url"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`

	// Secrets, environment only.
	AnonKey  string `yaml:"-"`
	Email    string `yaml:"-"`
	Password string `yaml:"-"`
}

const _requestsPerMinuteDefault = 240

func (c *SupabaseConfig) Setup() error {
	c.URL = cmp.Or(os.Getenv("SUPABASE_URL"), c.URL)
	c.AnonKey = os.Getenv("SUPABASE_ANON_KEY")
	c.Email = os.Getenv("SUPABASE_EMAIL")
	c.Password = os.Getenv("SUPABASE_PASSWORD")

	if c.URL == "" {
		return fmt.Errorf("empty supabase url")
	}
	if c.AnonKey == "" {
		return fmt.Errorf("empty supabase anon key")
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = _requestsPerMinuteDefault
	}

	return nil
}

type RatesConfig struct {
	Address     string  `yaml:"address"`
	DefaultRate float64 `yaml:"default_rate"`
	UpdateSpec  string  `yaml:"update_spec"`
}

const (
	_ratesAddressDefault = "https://economia.awesomeapi.com.br"
	_defaultRate         = 5.80
	_rateUpdateSpec      = "@hourly"
)

func (c *RatesConfig) Setup() {
	c.Address = cmp.Or(c.Address, _ratesAddressDefault)
	if c.DefaultRate <= 0 {
		c.DefaultRate = _defaultRate
	}
	c.UpdateSpec = cmp.Or(c.UpdateSpec, _rateUpdateSpec)
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func (c *ServerConfig) Setup() {
	c.Port = cmp.Or(c.Port, "8080")
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

type StoreConfig struct {
	// RefreshSpec is a cron spec for background snapshot refreshes.
	// Empty disables them; mutations still refresh on their own.
	RefreshSpec string `yaml:"refresh_spec"`
}

type AppConfig struct {
	LogLevel string         `yaml:"log_level"`
	Backend  BackendKind    `yaml:"backend"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Rates    RatesConfig    `yaml:"rates"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
}

func (c *AppConfig) ValidateAndSetup() error {
	if c.Backend == "" {
		c.Backend = SupabaseBackend
	}
	if c.Backend != SupabaseBackend && c.Backend != PostgresBackend {
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.Backend == SupabaseBackend {
		if err := c.Supabase.Setup(); err != nil {
			return fmt.Errorf("%w: can't setup supabase cfg", err)
		}
	}

	c.Rates.Setup()
	c.Server.Setup()

	return nil
}

func LoadAppConfig(filename string) (AppConfig, error) {
	var cfg AppConfig
	input, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("%w: can't read file", err)
	}

	if err := yaml.Unmarshal(input, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: can't unmarshal config", err)
	}

	if err := cfg.ValidateAndSetup(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
