// Package config loads splitview settings from a TOML file, SPLITVIEW_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/drake/splitview/internal/logging"
	"github.com/drake/splitview/splitview"
)

const (
	appName  = "splitview"
	fileType = "toml"
)

// Dir returns the splitview configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, appName)
}

// File returns the path to splitview.toml
func File() string {
	return filepath.Join(Dir(), appName+"."+fileType)
}

// Logging mirrors the [logging] table.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Config is the file/env/flag view of the settings, before validation.
type Config struct {
	Orientation  string   `mapstructure:"orientation"`
	Observe      bool     `mapstructure:"observe"`
	Dir          string   `mapstructure:"dir"`
	Hidden       bool     `mapstructure:"hidden"`
	SplitterSize float64  `mapstructure:"splitter_size"`
	Panes        []string `mapstructure:"panes"`
	Logging      Logging  `mapstructure:"logging"`

	// Source is the config file that was read, empty if none.
	Source string `mapstructure:"-"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"orientation":   "orientation",
	"observe":       "observe",
	"dir":           "dir",
	"hidden":        "hidden",
	"splitter-size": "splitter_size",
	"pane":          "panes",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"log-file":      "logging.file",
	"config":        "",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "config file (default "+File()+")")
	fs.StringP("orientation", "o", "", "pane layout: horizontal or vertical")
	fs.Bool("observe", false, "reassign panes when children change")
	fs.String("dir", "", "reading direction: ltr or rtl")
	fs.Bool("hidden", false, "hide the split view")
	fs.Float64("splitter-size", 0, "splitter thickness in cells")
	fs.StringArray("pane", nil, "initial pane title (repeatable)")
	fs.String("log-level", "", "trace, debug, info, warn or error")
	fs.String("log-format", "", "console or json")
	fs.String("log-file", "", "log file path, - for stderr")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("orientation", string(splitview.Horizontal))
	v.SetDefault("observe", false)
	v.SetDefault("dir", string(splitview.LTR))
	v.SetDefault("hidden", false)
	v.SetDefault("splitter_size", 1.0)
	v.SetDefault("panes", []string{"primary", "secondary"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// Load reads settings from the config file, the environment and flags,
// in increasing order of precedence. A missing config file is not an error.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || key == "" {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || explicit != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if _, err := cfg.SplitView(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := cfg.Direction(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := cfg.LogConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// SplitView converts the settings into a validated splitview.Config.
func (c *Config) SplitView() (splitview.Config, error) {
	orientation, err := splitview.ParseOrientation(c.Orientation)
	if err != nil {
		return splitview.Config{}, err
	}
	sv := splitview.Config{
		Orientation:  orientation,
		Observe:      c.Observe,
		Hidden:       c.Hidden,
		SplitterSize: c.SplitterSize,
	}
	if err := sv.Validate(); err != nil {
		return splitview.Config{}, err
	}
	return sv, nil
}

// Direction returns the host's initial reading direction.
func (c *Config) Direction() (splitview.Direction, error) {
	return splitview.ParseDirection(c.Dir)
}

// LogConfig converts the [logging] table into a logging.Config.
func (c *Config) LogConfig() (logging.Config, error) {
	lc := logging.DefaultConfig()
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return lc, err
	}
	lc.Level = level
	switch c.Logging.Format {
	case "", "console":
		lc.Format = "console"
	case "json":
		lc.Format = "json"
	default:
		return lc, fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	lc.File = c.Logging.File
	return lc, nil
}
