package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from a YAML file and environment variables.
// Every key can be overridden with a QUIZ_ prefixed variable, e.g. QUIZ_REDIS_ADDR.
type Config struct {
	Env      string   `mapstructure:"env"`
	Log      Log      `mapstructure:"log"`
	UI       UI       `mapstructure:"ui"`
	Quiz     Quiz     `mapstructure:"quiz"`
	Redis    Redis    `mapstructure:"redis"`
	Postgres Postgres `mapstructure:"postgres"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type UI struct {
	Color string `mapstructure:"color"` // auto, always or never
}

type Quiz struct {
	ID       string `mapstructure:"id"`
	TTL      string `mapstructure:"ttl"`
	BankPath string `mapstructure:"bank_path"` // question bank file; wins over Postgres
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      string `mapstructure:"ttl"`
}

type Postgres struct {
	URL string `mapstructure:"url"`
}

// Load reads the config file at path, if it exists, and applies environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("env", "local")
	v.SetDefault("log.level", "warn")
	v.SetDefault("ui.color", "auto")
	v.SetDefault("quiz.id", "")
	v.SetDefault("quiz.ttl", "10m")
	v.SetDefault("quiz.bank_path", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "")
	v.SetDefault("postgres.url", "")

	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("postgres.url", "QUIZ_POSTGRES_URL", "DATABASE_URL")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("error loading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
