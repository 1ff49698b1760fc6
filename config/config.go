// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator"
	"github.com/jjtimmons/gfa/internal/gfa"
	"github.com/spf13/viper"
)

var (
	// RootSettingsFile is the settings file read when --settings isn't passed
	RootSettingsFile = filepath.Join(home(), ".gfa", "settings.yaml")

	validate = validator.New()
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Parse selects the record kinds that are kept while reading
	Parse gfa.ParsingConfig `mapstructure:"parse"`

	// Strict stops reading at the first malformed line. Otherwise
	// the line is logged and skipped
	Strict bool `mapstructure:"strict"`

	// Workers is the number of chunks parsed at once
	Workers int `mapstructure:"workers" validate:"min=1,max=512"`

	// ChunkLines is the number of lines in each chunk handed to a worker
	ChunkLines int `mapstructure:"chunk-lines" validate:"min=1"`

	// Debug turns on development logging
	Debug bool `mapstructure:"debug"`

	// DB is the path to the SQLite index
	DB string `mapstructure:"db" validate:"required"`
}

// SetDefaults registers the value of every setting that isn't in a
// settings file or bound to a flag
func SetDefaults(v *viper.Viper) {
	v.SetDefault("parse.segments", true)
	v.SetDefault("parse.links", true)
	v.SetDefault("parse.containments", true)
	v.SetDefault("parse.paths", true)
	v.SetDefault("strict", false)
	v.SetDefault("workers", 4)
	v.SetDefault("chunk-lines", 10000)
	v.SetDefault("debug", false)
	v.SetDefault("db", "gfa.db")
}

// New returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads, unmarshals and validates the settings held by v. The settings
// file named by the "settings" key is read if it exists
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if settings := v.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			v.SetConfigFile(settings)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
			}
		} else if settings != RootSettingsFile {
			return nil, fmt.Errorf("failed to find settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &c, nil
}

// home is the user's home directory, or the working directory if there isn't one
func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
