package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/username/dateutil/pkg/dateutil"
)

const envPrefix = "DATEUTIL"

// Config represents application configuration
type Config struct {
	Format   string    `mapstructure:"format" validate:"required"`
	Location string    `mapstructure:"location" validate:"required"`
	Output   string    `mapstructure:"output" validate:"oneof=text json yaml"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty means console
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Format:   dateutil.ISO8601.String(),
		Location: "Local",
		Output:   "text",
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("location", d.Location)
	v.SetDefault("output", d.Output)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load loads configuration from file and DATEUTIL_* environment variables.
// An explicit configPath must exist; otherwise a missing file means defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dateutil")
		v.AddConfigPath("/etc/dateutil")
	}

	// Read environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := dateutil.ParseDateFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := time.LoadLocation(c.Location); err != nil {
		return fmt.Errorf("location: %w", err)
	}
	return nil
}

// GetDateFormat returns the configured date format
func (c *Config) GetDateFormat() dateutil.DateFormat {
	f, err := dateutil.ParseDateFormat(c.Format)
	if err != nil {
		return dateutil.ISO8601
	}
	return f
}

// GetLocation returns the configured location, time.Local if it cannot be loaded
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}
