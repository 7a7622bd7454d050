package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/shelf/internal/constants"
)

// Config is the GUI preference file. Values live in a private viper
// instance so defaults, file values and runtime overrides resolve in one
// place; every Set writes the file back out.
type Config struct {
	path string
	v    *viper.Viper
}

var defaults = map[string]any{
	constants.SearchAsYouType:        false,
	constants.HighlightSearchMatches: false,
	constants.LimitSearchColumns:     false,
	constants.LimitSearchColumnsTo:   []string{"title", "authors", "tags", "series", "publisher"},
	constants.MainSearchHistory:      []string{},
	"viewer_search_history":          []string{},
	"lookup_search_history":          []string{},
	"tag_browser_search_history":     []string{},
	"preferences_search_history":     []string{},
	"saved_search_history_limit":     50,
}

// Defaults returns a copy of the default values known to the GUI config.
func Defaults() map[string]any {
	out := make(map[string]any, len(defaults))
	for key, value := range defaults {
		if list, ok := value.([]string); ok {
			value = append([]string{}, list...)
		}
		out[key] = value
	}
	return out
}

func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetConfigType(constants.ConfigFileType)
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	v.SetDefault(constants.LibraryPath, filepath.Join(home, constants.ConfigDir, constants.LibraryDir))
	return v
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path, v: newViper(home)}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.v.MergeConfigMap(raw); err != nil {
		return nil, err
	}

	return cfg, nil
}

// New returns an unsaved config rooted at home, useful when no file exists yet.
func New(home string) *Config {
	return &Config{path: GetConfigPath(home), v: newViper(home)}
}

func (cfg *Config) Path() string {
	return cfg.path
}

// Get returns the value stored under key, or def when the key is unknown.
func (cfg *Config) Get(key string, def any) any {
	if !cfg.v.IsSet(key) {
		return def
	}
	return cfg.v.Get(key)
}

func (cfg *Config) Contains(key string) bool {
	return cfg.v.IsSet(key)
}

// Set stores value under key and persists the file.
func (cfg *Config) Set(key string, value any) error {
	cfg.v.Set(key, value)
	return cfg.Save()
}

func (cfg *Config) Bool(key string) bool {
	return cfg.v.GetBool(key)
}

func (cfg *Config) StringSlice(key string) []string {
	return cfg.v.GetStringSlice(key)
}

func (cfg *Config) LibraryPath() string {
	return cfg.v.GetString(constants.LibraryPath)
}

// Defaults exposes the package defaults so callers holding a Config can
// enumerate history keys.
func (cfg *Config) Defaults() map[string]any {
	return Defaults()
}

// Keys returns every known key in sorted order.
func (cfg *Config) Keys() []string {
	keys := cfg.v.AllKeys()
	sort.Strings(keys)
	return keys
}

func (cfg *Config) Save() error {
	data, err := yaml.Marshal(cfg.v.AllSettings())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	tmp := cfg.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, cfg.path)
}
