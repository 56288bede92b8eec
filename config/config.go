package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jsphweid/chordshift/constants"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

type ServerConfig struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
	// largest accepted request body in bytes
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         constants.DefaultPort,
			AllowOrigins: []string{constants.DefaultAllowOrigins},
			MaxBodyBytes: constants.MaxRequestBytes,
		},
		Log: LogConfig{
			Level: constants.DefaultLogLevel,
		},
		Watch: WatchConfig{
			Debounce: constants.DefaultDebounce,
		},
	}
}

// Load reads the YAML file at path, if there is one, over the defaults and
// then applies CHORDSHIFT_* environment overrides. An empty path or a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key string) (string, bool) {
	v := os.Getenv(constants.EnvPrefix + key)
	return v, v != ""
}

func (c *Config) applyEnv() error {
	if v, ok := getEnv("PORT"); ok {
		c.Server.Port = v
	}
	if v, ok := getEnv("ALLOW_ORIGINS"); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowOrigins = origins
	}
	if v, ok := getEnv("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := getEnv("DEBOUNCE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sDEBOUNCE: %w", constants.EnvPrefix, err)
		}
		c.Watch.Debounce = d
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
