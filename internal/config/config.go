package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"

	"jobcard/internal/blob"
)

type Config struct {
	Env         string         `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseUrl string         `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	Database    DatabaseConfig `yaml:"database"`
	Server      ServerConfig   `yaml:"rest"`
	Blob        blob.Config    `yaml:"blob"`
	Report      ReportConfig   `yaml:"report"`
	Log         LogConfig      `yaml:"log"`
	Sessions    SessionConfig  `yaml:"sessions"`
}

type DatabaseConfig struct {
	MaxConns int32 `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"4"`
	MinConns int32 `yaml:"min_conns" env:"DATABASE_MIN_CONNS" env-default:"1"`
}

type ServerConfig struct {
	Port           string        `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type ReportConfig struct {
	// Timezone the "Generated on" footer and header dates are printed in.
	Timezone string `yaml:"timezone" env:"REPORT_TIMEZONE" env-default:"UTC"`
	// Persist uploads every report rendered after a submission.
	Persist bool `yaml:"persist" env:"REPORT_PERSIST"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"12h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"5m"`
}

// Location resolves the report timezone.
func (r ReportConfig) Location() (*time.Location, error) {
	return time.LoadLocation(r.Timezone)
}

func (c *Config) Validate() error {
	if c.DatabaseUrl == "" {
		return errors.New("database_url is required")
	}
	if _, err := c.Report.Location(); err != nil {
		return fmt.Errorf("report.timezone: %w", err)
	}
	if c.Blob.Enabled() {
		if err := c.Blob.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the YAML file at path with environment overrides on top.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var config Config
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func MustLoad() *Config {
	config, err := Load(fetchConfigPath())
	if err != nil {
		panic(err)
	}
	return config
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "./config/local.yaml"
	}

	return res
}
