package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the sitewise CLI configuration
type Config struct {
	AWS    AWSConfig    `yaml:"aws" mapstructure:"aws"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// AWSConfig represents AWS-related configuration
type AWSConfig struct {
	Region    string `yaml:"region" mapstructure:"region"`
	Profile   string `yaml:"profile" mapstructure:"profile"`
	AccountID string `yaml:"accountID" mapstructure:"accountID"`
	// Endpoint overrides the service endpoint, e.g. for a local emulator.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

var (
	v        *viper.Viper
	instance *Config
	initOnce sync.Once
	mu       sync.RWMutex
)

// ResetConfig resets the configuration instance (for testing)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	v = nil
	instance = nil
	initOnce = sync.Once{}
}

// InitConfig initializes the configuration with Viper
func InitConfig() {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		v = viper.New()

		// An empty region defers to the shared AWS config.
		v.SetDefault("aws.region", "")
		v.SetDefault("aws.profile", "")
		v.SetDefault("aws.accountID", "")
		v.SetDefault("aws.endpoint", "")
		v.SetDefault("output.format", "table")
		v.SetDefault("log.level", "warn")
		v.SetDefault("log.format", "text")

		v.SetEnvPrefix("SITEWISE")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		bindAWSEnvVars()
	})
}

// bindAWSEnvVars lets the standard AWS variables fill in when no
// SITEWISE_ variable is set.
func bindAWSEnvVars() {
	v.BindEnv("aws.region", "SITEWISE_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION")
	v.BindEnv("aws.profile", "SITEWISE_AWS_PROFILE", "AWS_PROFILE")
	v.BindEnv("aws.endpoint", "SITEWISE_AWS_ENDPOINT", "AWS_ENDPOINT_URL_IOTSITEWISE")
}

// LoadConfig loads configuration from a file. With an empty path the file is
// looked up as config.yaml in $HOME/.sitewise, and a missing file is not an
// error.
func LoadConfig(configPath string) (*Config, error) {
	InitConfig()

	mu.Lock()
	defer mu.Unlock()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.sitewise")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	instance = cfg
	return cfg, nil
}

// GetConfig returns the current configuration instance, loading the default
// locations on first use.
func GetConfig() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return &Config{
			Output: OutputConfig{Format: "table"},
			Log:    LogConfig{Level: "warn", Format: "text"},
		}
	}
	return cfg
}

// GetString returns a string configuration value
func GetString(key string) string {
	InitConfig()
	mu.RLock()
	defer mu.RUnlock()
	return v.GetString(key)
}

// Set overrides a configuration value and refreshes the loaded instance.
func Set(key string, value interface{}) {
	InitConfig()
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	if instance != nil {
		cfg := &Config{}
		if err := v.Unmarshal(cfg); err == nil {
			instance = cfg
		}
	}
}

var (
	validOutputFormats = map[string]bool{"table": true, "json": true, "yaml": true}
	validLogLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validLogFormats    = map[string]bool{"text": true, "json": true}
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validOutputFormats[strings.ToLower(c.Output.Format)] {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if c.AWS.AccountID != "" {
		if len(c.AWS.AccountID) != 12 || strings.Trim(c.AWS.AccountID, "0123456789") != "" {
			return fmt.Errorf("AWS account ID must be 12 digits: %s", c.AWS.AccountID)
		}
	}

	if c.AWS.Endpoint != "" {
		if _, err := url.Parse(c.AWS.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", c.AWS.Endpoint, err)
		}
	}

	return nil
}
