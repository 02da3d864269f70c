// Package config loads the fermata.toml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/oxur/fermata/internal/logging"
)

// FileName is the settings file searched for from the working directory up.
const FileName = "fermata.toml"

// Config is the full settings file.
type Config struct {
	Log      LogConfig      `toml:"log"`
	MusicXML MusicXMLConfig `toml:"musicxml"`
	Sexpr    SexprConfig    `toml:"sexpr"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MusicXMLConfig controls reading and writing MusicXML.
type MusicXMLConfig struct {
	Indent      string `toml:"indent"`
	Declaration bool   `toml:"declaration"`
	Doctype     bool   `toml:"doctype"`
	// ReportSkipped logs every element the decoder discards.
	ReportSkipped bool `toml:"report_skipped"`
	// MaxInputBytes caps the size of an input score after decompression.
	MaxInputBytes int64 `toml:"max_input_bytes"`
}

// SexprConfig is the default Fermata text profile.
type SexprConfig struct {
	Compact bool   `toml:"compact"`
	Indent  string `toml:"indent"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "warn", Format: "text"},
		MusicXML: MusicXMLConfig{
			Indent:        "  ",
			Declaration:   true,
			Doctype:       true,
			MaxInputBytes: 64 << 20,
		},
		Sexpr: SexprConfig{Indent: "  "},
	}
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the settings file at path over the defaults. An empty path
// searches from the working directory, and finding nothing yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		found, ok, err := Find(".")
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value that has a fixed set of choices or a range.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("[log].format: %w", err)
	}
	if c.MusicXML.MaxInputBytes <= 0 {
		return fmt.Errorf("[musicxml].max_input_bytes must be positive, got %d", c.MusicXML.MaxInputBytes)
	}
	if strings.TrimLeft(c.MusicXML.Indent, " \t") != "" {
		return fmt.Errorf("[musicxml].indent must be spaces or tabs, got %q", c.MusicXML.Indent)
	}
	if strings.TrimLeft(c.Sexpr.Indent, " \t") != "" {
		return fmt.Errorf("[sexpr].indent must be spaces or tabs, got %q", c.Sexpr.Indent)
	}
	return nil
}
