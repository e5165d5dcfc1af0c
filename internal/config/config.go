package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"SERVER_PORT"`
		Mode           string `yaml:"mode" env:"SERVER_MODE"`
		RequestTimeout string `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT"`
		AllowedOrigins string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"` // comma separated, "*" for any
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Storage struct {
		Driver             string `yaml:"driver" env:"STORAGE_DRIVER"` // gcs or local
		Bucket             string `yaml:"bucket" env:"STORAGE_BUCKET"`
		UploadBaseURL      string `yaml:"upload_base_url" env:"STORAGE_UPLOAD_BASE_URL"`
		PublicBaseURL      string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
		UploadTimeout      string `yaml:"upload_timeout" env:"STORAGE_UPLOAD_TIMEOUT"`
		MaxParallelUploads int    `yaml:"max_parallel_uploads" env:"STORAGE_MAX_PARALLEL_UPLOADS"`
		LocalPath          string `yaml:"local_path" env:"STORAGE_LOCAL_PATH"`
	} `yaml:"storage"`

	Auth struct {
		Scope           string `yaml:"scope" env:"AUTH_SCOPE"`
		CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
	} `yaml:"auth"`

	Catalog struct {
		CoursesJSONPath string `yaml:"courses_json_path" env:"COURSES_JSON_PATH"`
		SeedOnStartup   bool   `yaml:"seed_on_startup" env:"CATALOG_SEED_ON_STARTUP"`
	} `yaml:"catalog"`

	Cache struct {
		CourseCacheSize int `yaml:"course_cache_size" env:"CACHE_COURSE_SIZE"`
	} `yaml:"cache"`

	Metrics struct {
		Enabled   bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`
	} `yaml:"metrics"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// EnvOverrides lists the keys replaced from the environment, for startup logging
	EnvOverrides []string `yaml:"-"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	overrides, err := applyEnvOverrides(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	for _, o := range overrides {
		config.EnvOverrides = append(config.EnvOverrides, o.Key)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "9093"
	config.Server.Mode = "development"
	config.Server.RequestTimeout = "60s"
	config.Server.AllowedOrigins = "*"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursehub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// Storage defaults
	config.Storage.Driver = "gcs"
	config.Storage.Bucket = "gjufilesresources"
	config.Storage.UploadBaseURL = "https://storage.googleapis.com"
	config.Storage.PublicBaseURL = "https://storage.googleapis.com"
	config.Storage.UploadTimeout = "2m"
	config.Storage.MaxParallelUploads = 4
	config.Storage.LocalPath = "uploads"

	config.Auth.Scope = "https://www.googleapis.com/auth/cloud-platform"

	config.Catalog.CoursesJSONPath = "data/courses.json"
	config.Catalog.SeedOnStartup = true

	config.Cache.CourseCacheSize = 512

	config.Metrics.Enabled = true
	config.Metrics.Namespace = "coursehub"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}


// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	switch strings.ToLower(config.Storage.Driver) {
	case "gcs":
		if config.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for the gcs driver")
		}
		if config.Auth.Scope == "" {
			return fmt.Errorf("auth scope is required for the gcs driver")
		}
	case "local":
		if config.Storage.LocalPath == "" {
			return fmt.Errorf("storage local path is required for the local driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.MaxParallelUploads < 1 {
		return fmt.Errorf("storage max_parallel_uploads must be at least 1")
	}

	if config.Cache.CourseCacheSize < 1 {
		return fmt.Errorf("cache course_cache_size must be at least 1")
	}

	for name, value := range map[string]string{
		"server request timeout":       config.Server.RequestTimeout,
		"storage upload timeout":       config.Storage.UploadTimeout,
		"database connection lifetime": config.Database.ConnMaxLifetime,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// AllowedOriginList splits the configured CORS origins.
func (c *Config) AllowedOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.Server.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
