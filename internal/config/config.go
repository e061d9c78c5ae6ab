// Package config loads mathlab settings from defaults, an optional YAML
// file and MATHLAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database     DatabaseConfig     `mapstructure:"database"`
	Log          LogConfig          `mapstructure:"log"`
	Display      DisplayConfig      `mapstructure:"display"`
	Inequalities InequalitiesConfig `mapstructure:"inequalities"`
}

type DatabaseConfig struct {
	// Path of the SQLite file. Empty means the per-user data directory.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`

	// File receives the log. Empty means mathlab.log next to the database.
	File string `mapstructure:"file"`
}

type DisplayConfig struct {
	// Locale picks the decimal separator of displayed numbers.
	Locale string `mapstructure:"locale" validate:"oneof=en lt"`
}

type InequalitiesConfig struct {
	StreakThreshold int `mapstructure:"streak_threshold" validate:"min=1,max=10"`
}

// Loader reads and validates a Config.
type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

// NewLoader prepares a loader. An empty configFile searches config.yaml in
// the working directory and $HOME/.config/mathlab.
func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mathlab")
	}

	return &Loader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads the configuration. A missing file is not an error.
func (loader *Loader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("display.locale", "en")
	v.SetDefault("inequalities.streak_threshold", 3)

	v.SetEnvPrefix("MATHLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// MATHLAB_DB is also honoured by store.DefaultDBPath.
	if err := v.BindEnv("database.path", "MATHLAB_DB", "MATHLAB_DATABASE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind MATHLAB_DB environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (loader *Loader) ConfigFileUsed() string {
	return loader.viper.ConfigFileUsed()
}
