// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/projection"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RESUME_BUILDER_PORT.
const EnvPrefix = "RESUME_BUILDER"

// Config represents settings loaded from a JSON/YAML file, the environment, or flags.
// All fields are optional; zero values are filled by MergeWithDefaults.
type Config struct {
	// Projection conventions
	DefaultSkillCategory string `json:"default_skill_category,omitempty" mapstructure:"default_skill_category"`
	ContactVariant       string `json:"contact_variant,omitempty" mapstructure:"contact_variant" validate:"omitempty,oneof=website linkedin both"`

	// Photo uploads
	MaxPhotoBytes int64 `json:"max_photo_bytes,omitempty" mapstructure:"max_photo_bytes" validate:"gte=0"`

	// Server
	Port           int     `json:"port,omitempty" mapstructure:"port" validate:"gte=0,lte=65535"`
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty" mapstructure:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `json:"rate_limit_burst,omitempty" mapstructure:"rate_limit_burst" validate:"gte=0"`

	// Logging
	LogJSON bool `json:"log_json,omitempty" mapstructure:"log_json"`
	Debug   bool `json:"debug,omitempty" mapstructure:"debug"`
}

var keys = []string{
	"default_skill_category",
	"contact_variant",
	"max_photo_bytes",
	"port",
	"rate_limit_rps",
	"rate_limit_burst",
	"log_json",
	"debug",
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DefaultSkillCategory: projection.DefaultSkillCategory,
		ContactVariant:       string(projection.ContactWithWebsite),
		MaxPhotoBytes:        photo.MaxBytes,
		Port:                 8080,
		RateLimitRPS:         10,
		RateLimitBurst:       20,
	}
}

// NewViper returns a viper instance with env overrides bound for every key.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	return v
}

// LoadConfig loads configuration from a JSON or YAML file, with environment
// overrides applied on top.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return FromViper(v)
}

// FromViper decodes the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Load reads path when given, otherwise only the environment, and returns
// a validated config with defaults applied.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadConfig(path)
	} else {
		cfg, err = FromViper(NewViper())
	}
	if err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if strings.TrimSpace(result.DefaultSkillCategory) == "" {
		result.DefaultSkillCategory = defaults.DefaultSkillCategory
	}
	if result.ContactVariant == "" {
		result.ContactVariant = defaults.ContactVariant
	}
	if result.MaxPhotoBytes == 0 {
		result.MaxPhotoBytes = defaults.MaxPhotoBytes
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ProjectionOptions converts the projection settings.
func (c *Config) ProjectionOptions() (projection.Options, error) {
	variant, err := projection.ParseContactVariant(c.ContactVariant)
	if err != nil {
		return projection.Options{}, err
	}
	return projection.Options{
		SkillCategory: c.DefaultSkillCategory,
		Contact:       variant,
	}, nil
}
