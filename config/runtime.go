package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// RuntimeFile is the optional options file looked up in the config directory
const RuntimeFile = "randomap.cfg.json"

// Runtime holds process options read at startup. Every value can also come
// from a RANDOMAP_ prefixed environment variable.
type Runtime struct {
	LogLevel       string `mapstructure:"logLevel"`
	LogFile        string `mapstructure:"logFile"`
	AppName        string `mapstructure:"appName"`
	AdditionalMaps bool   `mapstructure:"additionalMaps"`
}

// LoadRuntime reads RuntimeFile from configDir. A missing file is not an
// error; defaults and the environment apply.
func LoadRuntime(configDir string) (Runtime, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("appName", "randomapcore")
	v.SetDefault("additionalMaps", true)

	v.SetEnvPrefix("RANDOMAP")
	v.AutomaticEnv()

	v.SetConfigName(RuntimeFile)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	// A broken file still yields the defaults alongside the error
	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = fmt.Errorf("read %s: %w", RuntimeFile, err)
		}
	}

	var rt Runtime
	if err := v.Unmarshal(&rt); err != nil {
		return rt, fmt.Errorf("decode %s: %w", RuntimeFile, err)
	}
	return rt, readErr
}
