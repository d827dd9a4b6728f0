package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Version of the properjpg command, overridable with
// -ldflags "-X github.com/go-imsto/properjpg/config.Version=..."
var Version = "0.3.0"

const envPrefix = "properjpg"

// Config holds ambient settings read from PROPERJPG_<FIELD> variables.
// Flags always win over these; unset variables leave the defaults of the
// flags alone.
type Config struct {
	Debug   bool `desc:"development logger with debug entries"`
	Workers int  `desc:"pool size in directory mode, 0 means one per CPU"`
	Quality int  `desc:"jpeg quality when -q is absent, 0 means 85"`
}

// Current is loaded once at startup by Load.
var Current = Config{}

// Load reads PROPERJPG_* variables into Current.
func Load() error {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return err
	}
	Current = c
	return nil
}

// InDevelop reports whether the development logger is requested.
func InDevelop() bool {
	return Current.Debug
}

// Usage prints the supported environment variables.
func Usage() error {
	var c Config
	return envconfig.Usage(envPrefix, &c)
}
