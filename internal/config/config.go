package config

import (
    "errors"
    "fmt"
    "os"
    "time"

    "github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings for both frontends.
type Config struct {
    HTTPAddr        string        `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080"`
    LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
    LogFormat       string        `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
    SessionTTL      time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"30m"`
    SweepInterval   time.Duration `yaml:"sweep-interval" env:"SWEEP_INTERVAL" env-default:"1m"`
    ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
    NoColor         bool          `yaml:"no-color" env:"NO_COLOR"`
}

// Load reads path if it exists and then applies environment overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
    cfg := &Config{}
    if path != "" {
        if _, err := os.Stat(path); err == nil {
            if err := cleanenv.ReadConfig(path, cfg); err != nil {
                return nil, fmt.Errorf("read config %s: %w", path, err)
            }
            return cfg, cfg.validate()
        } else if !errors.Is(err, os.ErrNotExist) {
            return nil, fmt.Errorf("stat config %s: %w", path, err)
        }
    }
    if err := cleanenv.ReadEnv(cfg); err != nil {
        return nil, fmt.Errorf("read env: %w", err)
    }
    return cfg, cfg.validate()
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
    cfg, err := Load(path)
    if err != nil {
        panic(fmt.Errorf("unable to load config: %w", err))
    }
    return cfg
}

func (c *Config) validate() error {
    switch c.LogFormat {
    case "json", "console":
    default:
        return fmt.Errorf("log-format %q: want json or console", c.LogFormat)
    }
    if c.SessionTTL <= 0 {
        return fmt.Errorf("session-ttl must be positive, got %s", c.SessionTTL)
    }
    if c.SweepInterval <= 0 {
        return fmt.Errorf("sweep-interval must be positive, got %s", c.SweepInterval)
    }
    return nil
}
