package main

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds the optional defaults read from the regctl config file.
// Flags always win over the file.
type config struct {
	Host    string        `toml:"host"`
	Tool    string        `toml:"tool"`
	Timeout time.Duration `toml:"-"`

	// TimeoutRaw is the on-disk form; durations are written as strings
	// ("30s", "2m") and parsed after decode.
	TimeoutRaw string `toml:"timeout"`
}

var (
	cfgOnce sync.Once
	cfg     config
)

// loadConfig reads <UserConfigDir>/regctl/config.toml once. A missing or
// unreadable file is not an error; everything has a working zero value.
func loadConfig() config {
	cfgOnce.Do(func() {
		dir, err := os.UserConfigDir()
		if err != nil {
			return
		}
		cfg = readConfigFile(filepath.Join(dir, "regctl", "config.toml"))
	})
	return cfg
}

func readConfigFile(path string) config {
	var c config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return config{}
	}
	if c.TimeoutRaw != "" {
		if d, err := time.ParseDuration(c.TimeoutRaw); err == nil {
			c.Timeout = d
		}
	}
	return c
}
