// Package vtconfig loads vtshell's configuration: the shell to spawn, the
// initial grid size, and how much PTY traffic history to retain. It
// layers an optional YAML file under command-line flags using Viper, the
// way the wider example pack's CLI tools do.
package vtconfig

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is vtshell's resolved configuration.
type Config struct {
	Shell       string `mapstructure:"shell" yaml:"shell"`
	Cols        int    `mapstructure:"cols" yaml:"cols"`
	Rows        int    `mapstructure:"rows" yaml:"rows"`
	HistorySize int    `mapstructure:"history_size" yaml:"history_size"`
}

// Defaults returns the configuration used when no flag, env var, or config
// file overrides a field.
func Defaults() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{Shell: shell, Cols: 80, Rows: 24, HistorySize: 4096}
}

// Loader wraps a Viper instance preconfigured with vtshell's search paths
// and environment prefix.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader that looks for config.yaml in the working
// directory and under $HOME/.config/vtshell, and honors VTSHELL_*
// environment variables.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("VTSHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vtshell")

	def := Defaults()
	v.SetDefault("shell", def.Shell)
	v.SetDefault("cols", def.Cols)
	v.SetDefault("rows", def.Rows)
	v.SetDefault("history_size", def.HistorySize)

	return &Loader{v: v}
}

// Viper exposes the underlying instance so cmd/vtshell can bind urfave/cli
// flags onto the same keys before Load is called.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile points the loader at an explicit config file instead of
// its default search paths.
func (l *Loader) SetConfigFile(path string) {
	if path != "" {
		l.v.SetConfigFile(path)
	}
}

// Load reads the config file, if any, and unmarshals the result. A missing
// config file is not an error; missing flags/env/file values fall back to
// Defaults.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
