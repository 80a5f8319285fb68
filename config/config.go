package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/flowkit/logger"
)

// EngineConfig carries pipeline engine defaults.
type EngineConfig struct {
	// RetryAttempts is the default attempt count for retrying steps.
	RetryAttempts int `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	// RetryDelay is the default pause between retry attempts.
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
	// StepTimeout is the default budget for racing steps with no explicit timeout.
	StepTimeout time.Duration `yaml:"step_timeout" mapstructure:"step_timeout"`
}

// ApplyDefaults applies default values to engine configuration.
func (c *EngineConfig) ApplyDefaults() {
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 3
	}
	if c.StepTimeout <= 0 {
		c.StepTimeout = 30 * time.Second
	}
}

// Validate validates engine configuration.
func (c *EngineConfig) Validate() error {
	if c.RetryDelay < 0 {
		return fmt.Errorf("engine.retry_delay must not be negative (got: %s)", c.RetryDelay)
	}
	return nil
}

// Config is the root flowkit configuration.
type Config struct {
	Logger logger.Config `yaml:"logger" mapstructure:"logger"`
	Engine EngineConfig  `yaml:"engine" mapstructure:"engine"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Engine.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads configuration from the given YAML file (or ./flowkit.yml when
// present), an optional .env file, and FLOWKIT_-prefixed environment
// variables. Environment variables win: FLOWKIT_ENGINE_RETRY_ATTEMPTS
// overrides engine.retry_attempts. Defaults are applied and the result is
// validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("FLOWKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	configFile := lc.ConfigFile
	if configFile == "" && fileExists("flowkit.yml") {
		configFile = "flowkit.yml"
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindKeys makes AutomaticEnv see nested keys that are absent from the file.
func bindKeys(v *viper.Viper) {
	keys := []string{
		"logger.level", "logger.format", "logger.output",
		"logger.no_color", "logger.timestamp", "logger.caller",
		"engine.retry_attempts", "engine.retry_delay", "engine.step_timeout",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
