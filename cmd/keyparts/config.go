package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wbrc/keyparts"
)

const (
	envPrefix     = "KEYPARTS"
	envConfigPath = "KEYPARTS_CONFIG"
	configName    = ".keyparts.yaml"
)

// config keys, shared with the flag names they are bound to
const (
	keyParts  = "parts"
	keyKeypad = "keypad"
	keyMode   = "mode"
	keyKCV    = "kcv"
	keyGroup  = "group"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyParts, 2)
	v.SetDefault(keyKeypad, false)
	v.SetDefault(keyMode, keyparts.Random.String())
	v.SetDefault(keyKCV, "")
	v.SetDefault(keyGroup, 4)

	return v
}

// loadConfig reads the config file named by --config, KEYPARTS_CONFIG, or
// the first .keyparts.yaml found in the home and working directories. A
// missing file is not an error.
func (a *app) loadConfig() error {
	path := a.configFile
	if path == "" {
		path = os.Getenv(envConfigPath)
	}

	if path == "" {
		var candidates []string
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, configName))
		}
		if wd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(wd, configName))
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil
	}

	a.v.SetConfigFile(path)
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist) {
			a.log.Debug().Str("path", path).Msg("config file not found")
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	a.log.Debug().Str("path", a.v.ConfigFileUsed()).Msg("loaded config")
	return nil
}
