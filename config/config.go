// Package config handles aoc.toml configuration for the command line tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrRead  = errors.New(f("cannot read"))
	ErrParse = errors.New(f("cannot parse"))
)

// ErrConfig reports a configuration file that could not be loaded.
type ErrConfig struct {
	Path string // Configuration file path.
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// FILENAME is the default configuration file name.
const FILENAME = "aoc.toml"

// Config represents an aoc.toml configuration.
type Config struct {
	Verbose bool           `toml:"verbose"`
	Inputs  Inputs         `toml:"inputs"`
	Days    map[string]Day `toml:"days"`

	// Dir is the directory containing the configuration file (set at load time).
	Dir string `toml:"-"`
}

// Inputs locates puzzle inputs on disk.
type Inputs struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

// Day overrides settings for a single day.
type Day struct {
	Input   string `toml:"input"`
	Verbose bool   `toml:"verbose"`
}

// Default returns the configuration used without an aoc.toml.
func Default() *Config {
	return &Config{
		Inputs: Inputs{
			Dir:     "inputs",
			Pattern: "day%02d.txt",
		},
	}
}

// Load parses a configuration file. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrConfig{Path: path, Err: errors.Join(ErrRead, err)}
	}

	c := Default()
	if _, err := toml.Decode(string(data), c); err != nil {
		return nil, &ErrConfig{Path: path, Err: errors.Join(ErrParse, err)}
	}

	c.Dir = filepath.Dir(path)
	return c, nil
}

// day returns the override block for a day, if any.
func (c *Config) day(day int) (Day, bool) {
	d, ok := c.Days[strconv.Itoa(day)]
	return d, ok
}

// InputPath returns the input file for a day, relative to the
// configuration directory.
func (c *Config) InputPath(day int) string {
	name := fmt.Sprintf(c.Inputs.Pattern, day)
	if d, ok := c.day(day); ok && d.Input != "" {
		name = d.Input
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(c.Dir, name)
	}

	return filepath.Join(c.Dir, c.Inputs.Dir, name)
}

// VerboseFor returns true if a day should trace machine execution.
func (c *Config) VerboseFor(day int) bool {
	if c.Verbose {
		return true
	}
	d, _ := c.day(day)
	return d.Verbose
}
