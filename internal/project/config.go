package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the project configuration. Zero fields mean "use the default";
// command-line flags override file values.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Trace       TraceConfig       `toml:"trace" yaml:"trace"`
	Cache       CacheConfig       `toml:"cache" yaml:"cache"`
}

type DiagnosticsConfig struct {
	Color  string `toml:"color" yaml:"color"`   // auto | on | off
	Max    int    `toml:"max" yaml:"max"`       // 0 — без ограничения
	Format string `toml:"format" yaml:"format"` // banner | short | json
	Paths  string `toml:"paths" yaml:"paths"`   // auto | absolute | relative | basename
}

type TraceConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Output string `toml:"output" yaml:"output"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" yaml:"dir"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Color:  "auto",
			Max:    100,
			Format: "banner",
			Paths:  "auto",
		},
		Trace: TraceConfig{
			Level:  "off",
			Format: "auto",
		},
	}
}

// Load reads a configuration file; the decoder is chosen by extension.
// Values absent from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir finds and loads the nearest configuration above startDir.
// Without a file it returns Default() and an empty path.
func LoadFromDir(startDir string) (Config, string, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if err := oneOf("diagnostics.color", c.Diagnostics.Color, "auto", "on", "off"); err != nil {
		return err
	}
	if err := oneOf("diagnostics.format", c.Diagnostics.Format, "banner", "pretty", "short", "json"); err != nil {
		return err
	}
	if err := oneOf("diagnostics.paths", c.Diagnostics.Paths, "auto", "absolute", "relative", "basename", "as-is"); err != nil {
		return err
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("diagnostics.max must not be negative, got %d", c.Diagnostics.Max)
	}
	return oneOf("trace.level", c.Trace.Level, "off", "error", "phase", "detail", "debug")
}

func oneOf(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: invalid value %q (expected %s)", field, value, strings.Join(allowed, "|"))
}
