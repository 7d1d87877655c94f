// Package yaml loads wikiscraper configuration files using gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/wikiscraper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "wikiscraper.yaml"

// file mirrors wikiscraper.Config. Absent keys keep their default value.
type file struct {
	BaseURL              *string  `yaml:"base_url"`
	ArticlePrefix        *string  `yaml:"article_prefix"`
	DisallowedPrefixes   []string `yaml:"disallowed_prefixes"`
	DisallowedExtensions []string `yaml:"disallowed_extensions"`
	DisallowedLinks      []string `yaml:"disallowed_links"`
	CacheDir             *string  `yaml:"cache_dir"`
	MaxCacheSize         *int     `yaml:"max_cache_size"`
	DataDir              *string  `yaml:"data_dir"`
	WordCountsPath       *string  `yaml:"word_counts_path"`
	DatabasePath         *string  `yaml:"database_path"`
	UserAgent            *string  `yaml:"user_agent"`
	Timeout              *string  `yaml:"timeout"`
	RespectRobots        *bool    `yaml:"respect_robots"`
}

// LoadConfig reads the YAML file at path over wikiscraper.DefaultConfig.
// A missing file returns ENOTFOUND and unknown keys return EINVALID.
func LoadConfig(path string) (wikiscraper.Config, error) {
	cfg := wikiscraper.DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, wikiscraper.Errorf(wikiscraper.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode applies the YAML document read from r to cfg and validates it.
func Decode(r io.Reader, cfg *wikiscraper.Config) error {
	var in file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return wikiscraper.Errorf(wikiscraper.EINVALID, "invalid config: %s", err)
	}

	setString(&cfg.BaseURL, in.BaseURL)
	setString(&cfg.ArticlePrefix, in.ArticlePrefix)
	setString(&cfg.CacheDir, in.CacheDir)
	setString(&cfg.DataDir, in.DataDir)
	setString(&cfg.WordCountsPath, in.WordCountsPath)
	setString(&cfg.DatabasePath, in.DatabasePath)
	setString(&cfg.UserAgent, in.UserAgent)
	if in.DisallowedPrefixes != nil {
		cfg.DisallowedPrefixes = in.DisallowedPrefixes
	}
	if in.DisallowedExtensions != nil {
		cfg.DisallowedExtensions = in.DisallowedExtensions
	}
	if in.DisallowedLinks != nil {
		cfg.DisallowedLinks = in.DisallowedLinks
	}
	if in.MaxCacheSize != nil {
		cfg.MaxCacheSize = *in.MaxCacheSize
	}
	if in.RespectRobots != nil {
		cfg.RespectRobots = *in.RespectRobots
	}
	if in.Timeout != nil {
		d, err := time.ParseDuration(*in.Timeout)
		if err != nil {
			return wikiscraper.Errorf(wikiscraper.EINVALID, "invalid timeout %q", *in.Timeout)
		}
		cfg.Timeout = d
	}

	return cfg.Validate()
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
