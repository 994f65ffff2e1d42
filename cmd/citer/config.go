package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/citer"
	"gopkg.in/yaml.v3"
)

// AppName names the configuration and data directories.
const AppName = "citer"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config is the optional YAML configuration file. Flags and environment
// variables override its values.
type Config struct {
	DBPath       string        `yaml:"db_path"`
	SuffixesFile string        `yaml:"suffixes_file"`
	Timeout      time.Duration `yaml:"timeout"`
	Whois        WhoisConfig   `yaml:"whois"`
}

// WhoisConfig configures the domain owner lookup.
type WhoisConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// LoadConfigFile loads configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays the non-empty flag values from cli onto the file config.
func (c *Config) Merge(cli *CLI) {
	if cli.DB != "" {
		c.DBPath = cli.DB
	}
	if cli.Suffixes != "" {
		c.SuffixesFile = cli.Suffixes
	}
	if cli.Timeout != 0 {
		c.Timeout = cli.Timeout
	}
	if cli.WhoisKey != "" {
		c.Whois.APIKey = cli.WhoisKey
	}
	if cli.WhoisURL != "" {
		c.Whois.BaseURL = cli.WhoisURL
	}
}

// LoadSuffixes reads the suffix token file. An empty path falls back to
// suffixes.txt in the config directory if present, then to
// citer.DefaultSuffixSet.
func LoadSuffixes(path string) (citer.SuffixSet, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(xdg.ConfigHome, AppName, "suffixes.txt")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return citer.DefaultSuffixSet(), nil
		}
		return nil, fmt.Errorf("opening suffix list: %w", err)
	}
	defer f.Close()

	return citer.ParseSuffixSet(f)
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

func defaultDBPath() string {
	path, err := xdg.DataFile(filepath.Join(AppName, "citer.db"))
	if err != nil {
		return "citer.db"
	}
	return path
}
