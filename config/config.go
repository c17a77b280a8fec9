// config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type SpaceXAPIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	FetchTimeoutStr string        `yaml:"fetch_timeout"`
	FetchTimeout    time.Duration `yaml:"-"` // Parsed duration
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Backend string        `yaml:"backend"` // "file" or "database"
	Dir     string        `yaml:"dir"`
	TTLStr  string        `yaml:"ttl"`
	TTL     time.Duration `yaml:"-"` // Parsed duration
}

type FilterConfig struct {
	MaxLimit     int `yaml:"max_limit"`
	DefaultLimit int `yaml:"default_limit"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	SpaceXAPI SpaceXAPIConfig `yaml:"spacex_api"`
	Cache     CacheConfig     `yaml:"cache"`
	Filter    FilterConfig    `yaml:"filter"`
	Database  DatabaseConfig  `yaml:"database"` // only used by the database cache backend
}

var AppConfig Config

// LoadConfig reads configuration from file, falling back to standard
// locations when no path is given, and fills in defaults for anything the
// file leaves unset.
func LoadConfig(configPath string) error {
	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
			"../config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return fmt.Errorf("config.yaml not found in standard locations")
		}
		fmt.Printf("Loading configuration from: %s\n", configPath)
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(file, &AppConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Environment overrides for deployment-sensitive values.
	if v := os.Getenv("LAUNCHTRACK_PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("LAUNCHTRACK_DB_PASSWORD"); v != "" {
		AppConfig.Database.Password = v
	}
	if v := os.Getenv("LAUNCHTRACK_CACHE_DIR"); v != "" {
		AppConfig.Cache.Dir = v
	}

	// Parse durations
	if AppConfig.SpaceXAPI.FetchTimeoutStr != "" {
		AppConfig.SpaceXAPI.FetchTimeout, err = time.ParseDuration(AppConfig.SpaceXAPI.FetchTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse spacex_api.fetch_timeout: %w", err)
		}
	} else {
		AppConfig.SpaceXAPI.FetchTimeout = 30 * time.Second // Default
	}
	if AppConfig.Cache.TTLStr != "" {
		AppConfig.Cache.TTL, err = time.ParseDuration(AppConfig.Cache.TTLStr)
		if err != nil {
			return fmt.Errorf("failed to parse cache.ttl: %w", err)
		}
	} else {
		AppConfig.Cache.TTL = 1 * time.Hour // Default
	}

	// Remaining defaults
	if AppConfig.SpaceXAPI.BaseURL == "" {
		AppConfig.SpaceXAPI.BaseURL = "https://api.spacexdata.com/v4"
	}
	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if AppConfig.Cache.Backend == "" {
		AppConfig.Cache.Backend = "file"
	}
	if AppConfig.Cache.Backend != "file" && AppConfig.Cache.Backend != "database" {
		return fmt.Errorf("cache.backend must be 'file' or 'database', got %q", AppConfig.Cache.Backend)
	}
	if AppConfig.Cache.Dir == "" {
		AppConfig.Cache.Dir = ".cache"
	}
	if AppConfig.Filter.MaxLimit <= 0 {
		AppConfig.Filter.MaxLimit = 1000
	}
	if AppConfig.Filter.DefaultLimit <= 0 {
		AppConfig.Filter.DefaultLimit = 100
	}

	return nil
}
