// Package config holds the settings shared by the demo commands.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the directories.
const (
	EnvDataDir   = "DATADIR"
	EnvOutputDir = "OUTDIR"
)

type Config struct {
	// DataDir holds the input .off files.
	DataDir string `yaml:"datadir"`
	// OutputDir receives rendered figures and exported files.
	OutputDir string `yaml:"outdir"`
	// Format is the figure format: png, svg or pdf.
	Format string  `yaml:"format"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Debug  bool    `yaml:"debug"`
}

func Default() Config {
	return Config{
		DataDir:   "./",
		OutputDir: "./",
		Format:    "png",
		Width:     1000,
		Height:    1000,
		Scale:     1.1,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides the directories from the environment through lookup,
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: figure size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("config: scale %g must be positive", c.Scale)
	}
	return nil
}

// DataFile returns the path of name inside DataDir.
func (c Config) DataFile(name string) string {
	return filepath.Join(c.DataDir, name)
}

// OutputFile returns the path of base inside OutputDir with the figure
// format as extension.
func (c Config) OutputFile(base string) string {
	return filepath.Join(c.OutputDir, base+"."+c.Format)
}

// Resolve loads path when it is set, falls back to the defaults otherwise,
// and applies the environment overrides on top.
func Resolve(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(lookup)
	return cfg, nil
}
