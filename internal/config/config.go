package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tsukuru-labs/tsukuru/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyBaseDir is the viper key holding the project base directory.
	KeyBaseDir = "proj_basedir"

	// BaseDirEnv is the environment variable the base directory is read from.
	// It is deliberately unprefixed.
	BaseDirEnv = "PROJ_BASEDIR"
)

// ErrBaseDirNotSet is returned when no base directory is configured.
var ErrBaseDirNotSet = errors.New(BaseDirEnv + " is not set")

// Config is the resolved configuration injected into the scaffold builder.
type Config struct {
	baseDir string
}

// New returns a Config for an explicit base directory.
func New(baseDir string) Config {
	return Config{baseDir: baseDir}
}

// Dir returns the path to the config directory (~/.tsukuru/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.tsukuru/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// NewViper returns a viper instance reading from the config file and
// environment. A missing config file is not an error.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	_ = v.BindEnv(KeyBaseDir, BaseDirEnv)

	_ = v.ReadInConfig()
	return v
}

// Load builds a Config from v.
func Load(v *viper.Viper) Config {
	return Config{baseDir: v.GetString(KeyBaseDir)}
}

// BaseDir returns the configured base directory. It fails when the value is
// unset or does not name an existing directory; the base directory is never
// created by this tool.
func (c Config) BaseDir() (string, error) {
	if c.baseDir == "" {
		return "", ErrBaseDirNotSet
	}
	info, err := os.Stat(c.baseDir)
	if err != nil {
		return "", fmt.Errorf("project base directory %s: %w", c.baseDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project base directory %s is not a directory", c.baseDir)
	}
	return c.baseDir, nil
}
