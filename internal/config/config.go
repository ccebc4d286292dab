// Package config loads dnav settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "DNAV_CONFIG"

const (
	defaultRoot      = "/"
	defaultDwell     = 3 * time.Second
	defaultCacheSize = 256
)

// Config represents the application configuration.
type Config struct {
	// Root is the directory listed at startup and the clamp target for Back.
	Root          string        `yaml:"root"`
	Dwell         time.Duration `yaml:"dwell"`
	ConfineToRoot bool          `yaml:"confine_to_root"`
	CacheSize     int           `yaml:"cache_size"`
	Log           LogConfig     `yaml:"log"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

var (
	userConfigDirFn = os.UserConfigDir
	userCacheDirFn  = os.UserCacheDir
	userHomeDirFn   = os.UserHomeDir
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Root:      defaultRoot,
		Dwell:     defaultDwell,
		CacheSize: defaultCacheSize,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
	if cacheDir, err := userCacheDirFn(); err == nil {
		cfg.Log.File = filepath.Join(cacheDir, "dnav", "dnav.log")
	}
	return cfg
}

// DefaultPath returns where the config file is looked up when no explicit
// path is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := userConfigDirFn()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dnav", "config.yaml")
}

// Load reads the config file at path. A missing file yields the defaults;
// explicit is true when the user named the file, in which case it must exist.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize expands ~ and makes paths absolute.
func (c *Config) Normalize() error {
	root := expandHome(c.Root)
	if root == "" {
		root = defaultRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	c.Root = abs
	c.Log.File = expandHome(c.Log.File)
	return nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.Dwell <= 0 {
		return fmt.Errorf("dwell must be positive, got %s", c.Dwell)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := userHomeDirFn()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
