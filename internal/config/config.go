// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.

// Package config loads command line settings through Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/fenthope/reco"
	"github.com/spf13/viper"

	"github.com/infinite-iroha/pathmaker"
)

const (
	EnvPrefix         = "PATHMAKER"
	DefaultLogLevel   = "info"
	DefaultTimeout    = 5 * time.Second
	DefaultConfigName = "pathmaker"
)

// Config is the command line configuration.
type Config struct {
	Delimiter   string        `mapstructure:"delimiter"`
	TokenPrefix string        `mapstructure:"token_prefix"`
	Sitemap     string        `mapstructure:"sitemap"`
	LogLevel    string        `mapstructure:"log_level"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Builder returns the builder configuration part.
func (c Config) Builder() pathmaker.Config {
	return pathmaker.Config{Delimiter: c.Delimiter, TokenPrefix: c.TokenPrefix}
}

// Loader wraps Viper configuration loading.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetConfigName(DefaultConfigName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/pathmaker")

	v.SetDefault("delimiter", pathmaker.DefaultDelimiter)
	v.SetDefault("token_prefix", pathmaker.DefaultTokenPrefix)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("timeout", DefaultTimeout)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LogConfig maps a level name onto a reco configuration.
// Unknown names keep the default level.
func LogConfig(level string) reco.Config {
	cfg := pathmaker.DefaultLogRecoConfig
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		cfg.Level = reco.LevelDebug
	case "warn", "warning":
		cfg.Level = reco.LevelWarn
	case "error":
		cfg.Level = reco.LevelError
	}
	return cfg
}
