// Package config loads netclass settings from defaults, a config file, the
// environment and command-line flags.
package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// decode unmarshals the merged view of v into s. Keys that Settings does
// not declare are an error, so a misspelled setting in a config file is
// reported instead of ignored.
func decode(v *viper.Viper, s *Settings) error {
	return v.Unmarshal(s, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
}
