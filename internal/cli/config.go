package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Config holds gen defaults read from a TOML file.
//
//	title = "Dyno run"
//	width = 1920
//	height = 1080
//	split = true
//	palette = ["#000000", "#d62728", "#1f77b4"]
//	title_font_size = 32
type Config struct {
	Title         string   `toml:"title"`
	Width         uint     `toml:"width"`
	Height        uint     `toml:"height"`
	Split         bool     `toml:"split"`
	Palette       []string `toml:"palette"`
	TitleFontSize float64  `toml:"title_font_size"`

	// Path is the file the config was read from, empty if none.
	Path string `toml:"-"`
}

// defaultConfigPath returns the config file in the XDG config directory.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// loadConfig reads the config at path. With an empty path the default
// location is tried and a missing file yields the zero Config; an explicit
// path must exist. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.TitleFontSize < 0 {
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "config %s: title_font_size must be positive", path)
	}
	cfg.Path = path
	return cfg, nil
}
