package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`
	Uploads struct {
		AvatarDir string `yaml:"avatar_dir"`
	} `yaml:"uploads"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "8080"
	cfg.Database.Path = "./data/ranobe.db"
	cfg.Session.Secret = "ranobe-hub-secret-change-in-production"
	cfg.Uploads.AvatarDir = "./web/static/uploads/avatars"
	cfg.Logging.Level = "INFO"
	return cfg
}

// Load reads the optional yaml config file and applies environment
// overrides on top of it. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.Server.Host = getEnvOrDefault("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvOrDefault("PORT", cfg.Server.Port)
	cfg.Database.Path = getEnvOrDefault("DB_PATH", cfg.Database.Path)
	cfg.Session.Secret = getEnvOrDefault("SESSION_SECRET", cfg.Session.Secret)
	cfg.Uploads.AvatarDir = getEnvOrDefault("AVATAR_DIR", cfg.Uploads.AvatarDir)
	cfg.Logging.Level = getEnvOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnvOrDefault("LOG_FORMAT", cfg.Logging.Format)

	return cfg, nil
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
