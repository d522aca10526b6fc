/*
Package config manages the TOML configuration for triectl.
*/
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Trie    TrieConfig    `toml:"trie"`
	Search  SearchConfig  `toml:"search"`
	Matcher MatcherConfig `toml:"matcher"`
	Log     LogConfig     `toml:"log"`
}

// TrieConfig holds normalization options fixed when the trie is built.
type TrieConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
	FoldASCII     bool `toml:"fold_ascii"`
}

// SearchConfig holds the defaults for approximate lookups.
type SearchConfig struct {
	Ratio            float64 `toml:"ratio"`
	MinMatchedLength int     `toml:"min_matched_length"`
}

// MatcherConfig holds keyword and similarity matcher options.
type MatcherConfig struct {
	MinSimilarity float64 `toml:"min_similarity"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Trie: TrieConfig{
			CaseSensitive: false,
			FoldASCII:     true,
		},
		Search: SearchConfig{
			Ratio:            1.0,
			MinMatchedLength: 0,
		},
		Matcher: MatcherConfig{
			MinSimilarity: 0.6,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Debugf("Config file %s not found, using built-in defaults", path)
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Ignoring unknown config key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if math.IsNaN(c.Search.Ratio) || c.Search.Ratio < 0 || c.Search.Ratio > 1 {
		return fmt.Errorf("search.ratio must be within [0, 1], got %v", c.Search.Ratio)
	}
	if c.Search.MinMatchedLength < 0 {
		return fmt.Errorf("search.min_matched_length must not be negative, got %d", c.Search.MinMatchedLength)
	}
	if c.Matcher.MinSimilarity < 0 || c.Matcher.MinSimilarity > 1 {
		return fmt.Errorf("matcher.min_similarity must be within [0, 1], got %v", c.Matcher.MinSimilarity)
	}
	return nil
}

// Save writes the config as TOML to path.
func Save(c *Config, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(c)
}
