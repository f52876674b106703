package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "cdl.toml"

// Config is the optional per-project configuration, read from a
// cdl.toml in the working directory or any parent.
type Config struct {
	Cache struct {
		// Capacity bounds the diagnostic cache; zero means the
		// built-in default.
		Capacity int `toml:"capacity"`
	} `toml:"cache"`
	Log struct {
		// Verbosity feeds the structured logger; higher is louder.
		Verbosity int `toml:"verbosity"`
	} `toml:"log"`
}

// loadConfig walks upward from the working directory looking for a
// cdl.toml. A missing file is not an error; the zero Config is valid.
func loadConfig() (Config, error) {
	var cfg Config
	dir, err := os.Getwd()
	if err != nil {
		return cfg, nil
	}
	for {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			_, err := toml.DecodeFile(path, &cfg)
			return cfg, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cfg, nil
		}
		dir = parent
	}
}
