package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "YTDL"
	appName      = "yt-downloader"
)

// Env holds process-level overrides. Values come from an optional YAML file
// and are then overridden by YTDL_* environment variables.
type Env struct {
	YTDLPPath        string        `envconfig:"YTDLP_PATH"        yaml:"ytdlpPath"`
	DownloadDir      string        `envconfig:"DOWNLOAD_DIR"      yaml:"downloadDir"`
	LogLevel         string        `envconfig:"LOG_LEVEL"         yaml:"logLevel"`
	ThumbnailTimeout time.Duration `envconfig:"THUMBNAIL_TIMEOUT" yaml:"thumbnailTimeout"`
	FetchTimeout     time.Duration `envconfig:"FETCH_TIMEOUT"     yaml:"fetchTimeout"`
}

// Default values for Env
const (
	DefaultLogLevel         = "info"
	DefaultThumbnailTimeout = 15 * time.Second
	DefaultFetchTimeout     = 2 * time.Minute
)

// DefaultEnv returns an Env with every default applied
func DefaultEnv() Env {
	return Env{
		LogLevel:         DefaultLogLevel,
		ThumbnailTimeout: DefaultThumbnailTimeout,
		FetchTimeout:     DefaultFetchTimeout,
	}
}

// DefaultConfigFile returns ~/.config/yt-downloader.yaml
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName+".yaml")
}

// LoadEnv reads the config file named by YTDL_CONFIG_FILE (or the default one)
// and applies environment overrides. A missing file is not an error.
func LoadEnv() (*Env, error) {
	configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE")
	if configFile == "" {
		configFile = DefaultConfigFile()
	}
	return loadEnv(configFile)
}

func loadEnv(configFile string) (*Env, error) {
	env := DefaultEnv()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		switch {
		case err == nil:
			if err := yaml.UnmarshalStrict(data, &env); err != nil {
				return nil, fmt.Errorf("unmarshaling config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &env); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &env, nil
}
