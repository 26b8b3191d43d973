package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"todo-manager/internal/logging"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        logging.Level
	CORSOrigins     []string

	Gemini    GeminiConfig
	Assistant AssistantConfig
}

type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// AssistantConfig bounds concurrent upstream calls.
type AssistantConfig struct {
	Workers   int
	QueueSize int
}

func New() Config {
	return Config{
		HTTPAddr:        ":5000",
		ShutdownTimeout: time.Second * 10,
		LogLevel:        logging.LevelInfo,
		CORSOrigins:     []string{"*"},
		Gemini: GeminiConfig{
			Model:     "gemini-1.5-flash",
			MaxTokens: 1024,
			Timeout:   time.Second * 30,
		},
		Assistant: AssistantConfig{
			Workers:   4,
			QueueSize: 16,
		},
	}
}

// fileConfig mirrors the TOML layout. Durations are strings such as "10s".
type fileConfig struct {
	HTTPAddr        string   `toml:"http_addr"`
	ShutdownTimeout string   `toml:"shutdown_timeout"`
	LogLevel        string   `toml:"log_level"`
	CORSOrigins     []string `toml:"cors_origins"`

	Gemini struct {
		APIKey    string `toml:"api_key"`
		Model     string `toml:"model"`
		MaxTokens int    `toml:"max_tokens"`
		Timeout   string `toml:"timeout"`
	} `toml:"gemini"`

	Assistant struct {
		Workers   int `toml:"workers"`
		QueueSize int `toml:"queue_size"`
	} `toml:"assistant"`
}

// Load starts from defaults, applies the TOML file at path (if path is not
// empty), then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.apply(fc); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if fc.HTTPAddr != "" {
		c.HTTPAddr = fc.HTTPAddr
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("shutdown_timeout: %w", err)
		}
		c.ShutdownTimeout = d
	}
	if fc.LogLevel != "" {
		level, err := logging.ParseLevel(fc.LogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	if fc.CORSOrigins != nil {
		c.CORSOrigins = fc.CORSOrigins
	}

	if fc.Gemini.APIKey != "" {
		c.Gemini.APIKey = fc.Gemini.APIKey
	}
	if fc.Gemini.Model != "" {
		c.Gemini.Model = fc.Gemini.Model
	}
	if fc.Gemini.MaxTokens != 0 {
		c.Gemini.MaxTokens = fc.Gemini.MaxTokens
	}
	if fc.Gemini.Timeout != "" {
		d, err := time.ParseDuration(fc.Gemini.Timeout)
		if err != nil {
			return fmt.Errorf("gemini.timeout: %w", err)
		}
		c.Gemini.Timeout = d
	}

	if fc.Assistant.Workers != 0 {
		c.Assistant.Workers = fc.Assistant.Workers
	}
	if fc.Assistant.QueueSize != 0 {
		c.Assistant.QueueSize = fc.Assistant.QueueSize
	}
	return nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		if strings.Contains(port, ":") {
			c.HTTPAddr = port
		} else {
			c.HTTPAddr = ":" + port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
		c.LogLevel = level
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	if _, err := logging.ParseLevel(string(c.LogLevel)); err != nil {
		errs = append(errs, err)
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, errors.New("cors_origins must list at least one origin"))
	}
	if c.Gemini.Model == "" {
		errs = append(errs, errors.New("gemini.model is required"))
	}
	if c.Gemini.MaxTokens <= 0 {
		errs = append(errs, errors.New("gemini.max_tokens must be positive"))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, errors.New("gemini.timeout must be positive"))
	}
	if c.Assistant.Workers <= 0 {
		errs = append(errs, errors.New("assistant.workers must be positive"))
	}
	if c.Assistant.QueueSize <= 0 {
		errs = append(errs, errors.New("assistant.queue_size must be positive"))
	}

	return errors.Join(errs...)
}
