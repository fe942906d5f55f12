// Package config loads the optional sdkgeist.yaml using Viper. Every key has
// a built-in default matching the Flutter conventions, so running without a
// config file is the normal case.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mfulz/sdkgeist/internal/configloader"
	"github.com/mfulz/sdkgeist/internal/logging"
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/spf13/viper"
)

// FileName is the config file looked up by configloader.ResolveConfigPath.
const FileName = "sdkgeist.yaml"

// EnvPrefix prefixes environment overrides, e.g. SDKGEIST_SDK_ENV_VAR.
const EnvPrefix = "SDKGEIST"

// Config represents the full structure of sdkgeist.yaml.
type Config struct {
	SDK    SDKConfig      `mapstructure:"sdk"`
	Logger logging.Config `mapstructure:"log"`

	// Path is the file the config was read from, empty for defaults only.
	Path string `mapstructure:"-"`
}

// SDKConfig names the sources the resolver consults.
type SDKConfig struct {
	PropertiesFile string `mapstructure:"properties_file"`
	PropertyKey    string `mapstructure:"property_key"`
	EnvVar         string `mapstructure:"env_var"`
	HomeSuffix     string `mapstructure:"home_suffix"`
	LoaderSubpath  string `mapstructure:"loader_subpath"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sdk.properties_file", sdkpath.DefaultPropertiesFile)
	v.SetDefault("sdk.property_key", sdkpath.DefaultPropertyKey)
	v.SetDefault("sdk.env_var", sdkpath.DefaultEnvVar)
	v.SetDefault("sdk.home_suffix", sdkpath.DefaultHomeSuffix)
	v.SetDefault("sdk.loader_subpath", sdkpath.DefaultLoaderSubpath)

	def := logging.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.to_stdout", def.ToStdout)
	v.SetDefault("log.to_stderr", def.ToStderr)
	v.SetDefault("log.to_file", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", false)
}

// LoadConfig reads sdkgeist.yaml if one exists, applies SDKGEIST_* overrides,
// validates the result and registers it (and its logger section) with the
// configloader registry.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := configloader.ResolveConfigPath(FileName)
	switch {
	case err == nil:
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", path, err)
		}
	case errors.Is(err, configloader.ErrNoConfig):
		path = ""
	default:
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configloader.RegisterConfig(&cfg)
	configloader.RegisterConfig(&cfg.Logger)
	return &cfg, nil
}

// Validate rejects settings the resolver cannot work with.
func (c *Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"sdk.properties_file", c.SDK.PropertiesFile},
		{"sdk.property_key", c.SDK.PropertyKey},
		{"sdk.env_var", c.SDK.EnvVar},
		{"sdk.loader_subpath", c.SDK.LoaderSubpath},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("invalid config: %s must not be empty", r.key)
		}
	}
	return nil
}
