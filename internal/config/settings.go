package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// EnvPrefix is prepended to environment variable names (NETCLASS_OUTPUT).
const EnvPrefix = "NETCLASS"

// Settings holds the netclass command configuration.
type Settings struct {
	Filter          string `mapstructure:"filter"`
	Output          string `mapstructure:"output"`
	LogLevel        string `mapstructure:"log_level"`
	MetricsFile     string `mapstructure:"metrics_file"`
	AddressRegistry string `mapstructure:"address_registry"`
	StripPrefix     string `mapstructure:"strip_prefix"`
}

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"filter":           "filter",
	"output":           "output",
	"log-level":        "log_level",
	"metrics-file":     "metrics_file",
	"address-registry": "address_registry",
	"strip-prefix":     "strip_prefix",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("filter", "get_interfaces")
	v.SetDefault("output", OutputJSON)
	v.SetDefault("log_level", "warn")
	v.SetDefault("metrics_file", "")
	v.SetDefault("address_registry", "")
	v.SetDefault("strip_prefix", "")
}

// Load builds Settings. Precedence: flags > environment > config file >
// defaults. With an empty path, netclass.yaml is looked up in the working
// directory and $HOME/.config/netclass; a missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("netclass")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/netclass")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	var s Settings
	if err := decode(v, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks enumerated settings.
func (s *Settings) Validate() error {
	switch s.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: want %q or %q", s.Output, OutputJSON, OutputYAML)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if s.Filter == "" {
		return errors.New("filter must not be empty")
	}
	return nil
}
