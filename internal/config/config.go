package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		Mode      string `yaml:"mode"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	Data struct {
		Path      string  `yaml:"path"`
		Delimiter string  `yaml:"delimiter"`
		Seed      int64   `yaml:"seed"`
		TestRatio float64 `yaml:"test_ratio"`
	} `yaml:"data"`
	Model struct {
		C         float64 `yaml:"c"`
		Tolerance float64 `yaml:"tolerance"`
		MaxIter   int     `yaml:"max_iter"`
	} `yaml:"model"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Cache struct {
		ScatterImages int `yaml:"scatter_images"`
	} `yaml:"cache"`
}

func Default() Config {
	var c Config
	c.Server.Port = 8080
	c.Server.Mode = "release"
	c.Server.StaticDir = "cmd/api/static"
	c.Data.Path = "data/winequality-red.csv"
	c.Data.Delimiter = ","
	c.Data.Seed = 42
	c.Data.TestRatio = 0.2
	c.Model.C = 1.0
	c.Model.Tolerance = 1e-4
	c.Model.MaxIter = 100
	c.Log.Level = "info"
	c.Cache.ScatterImages = 64
	return c
}

// Load reads the YAML file at path on top of the defaults, then applies the
// environment. A missing file is not an error when path is empty.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return c, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v, ok := lookup("GIN_MODE"); ok && v != "" {
		c.Server.Mode = v
	}
	if v, ok := lookup("DATA_PATH"); ok && v != "" {
		c.Data.Path = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Data.Path == "" {
		return errors.New("data path is empty")
	}
	if utf8.RuneCountInString(c.Data.Delimiter) != 1 {
		return fmt.Errorf("delimiter %q must be a single character", c.Data.Delimiter)
	}
	if c.Data.TestRatio <= 0 || c.Data.TestRatio >= 1 {
		return fmt.Errorf("test ratio %v out of range (0, 1)", c.Data.TestRatio)
	}
	if c.Model.C <= 0 {
		return fmt.Errorf("inverse regularisation strength %v must be positive", c.Model.C)
	}
	return nil
}

// DelimiterRune returns the single delimiter character.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Data.Delimiter)
	return r
}
