package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "pokedex.toml"

type Config struct {
	DB      DBConfig      `toml:"database" yaml:"database"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Import  ImportConfig  `toml:"import" yaml:"import"`
}

type DBConfig struct {
	Path     string `toml:"path" yaml:"path"`
	ReadOnly bool   `toml:"read_only" yaml:"read_only"`
}

type ServerConfig struct {
	Addr       string `toml:"addr" yaml:"addr"`
	CORSOrigin string `toml:"cors_origin" yaml:"cors_origin"`
	PageLimit  int    `toml:"page_limit" yaml:"page_limit"`
}

type DisplayConfig struct {
	// Language is a BCP 47 tag used to title-case names.
	Language string `toml:"language" yaml:"language"`
}

type ImportConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
}

func Default() *Config {
	return &Config{
		DB: DBConfig{
			Path:     "pokedex.db",
			ReadOnly: true,
		},
		Server: ServerConfig{
			Addr:       ":8080",
			CORSOrigin: "*",
			PageLimit:  25,
		},
		Display: DisplayConfig{
			Language: "en",
		},
		Import: ImportConfig{
			Dir: "data",
		},
	}
}

// Read loads the file at path on top of Default. A missing file at the
// default path is not an error. Files ending in .yaml or .yml are decoded as
// YAML, everything else as TOML.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && path == DefaultPath:
		cfg.applyEnvOverrides()
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (cfg *Config) applyEnvOverrides() {
	if path := os.Getenv("POKEDEX_DB_PATH"); path != "" {
		cfg.DB.Path = path
	}
	if addr := os.Getenv("POKEDEX_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
}
