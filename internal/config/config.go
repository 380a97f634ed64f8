package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/peter-r-g/CodeItOut/script"
)

// Config holds the CLI settings. Flags given on the command line override it.
type Config struct {
	// Debug prints stage banners and the execution summary
	Debug bool `toml:"debug" yaml:"debug"`
	// Color enables ANSI colors when the output is a terminal
	Color   bool `toml:"color" yaml:"color"`
	Timings bool `toml:"timings" yaml:"timings"`
	// KeepNonEssential keeps whitespace and comment tokens when lexing
	KeepNonEssential bool `toml:"keep_non_essential" yaml:"keep_non_essential"`
	// Host is the host surface scripts run against: gameplay, mapmaking or none
	Host string `toml:"host" yaml:"host"`
	// State is a SQLite file globals are restored from and saved to
	State string `toml:"state" yaml:"state"`

	Globals map[string]any `toml:"globals" yaml:"globals"`
}

func Default() *Config {
	return &Config{
		Color:   true,
		Host:    "none",
		Globals: make(map[string]any),
	}
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}

	if cfg.Globals == nil {
		cfg.Globals = make(map[string]any)
	}
	return cfg, nil
}

// value converts a decoded config value to a script value. Integers
// become numbers.
func value(name string, raw any) (script.Value, error) {
	switch v := raw.(type) {
	case bool, float64, string:
		return script.From(v)
	case int:
		return script.From(float64(v))
	case int64:
		return script.From(float64(v))
	}
	return script.Value{}, errors.Errorf("global %q has unsupported type %T", name, raw)
}

// ApplyGlobals adds every configured global to s in name order
func (c *Config) ApplyGlobals(s *script.Script) error {
	names := make([]string, 0, len(c.Globals))
	for name := range c.Globals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, err := value(name, c.Globals[name])
		if err != nil {
			return err
		}
		if err := s.AddGlobal(name, v); err != nil {
			return err
		}
	}
	return nil
}
