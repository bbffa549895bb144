package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment, with
// PP_-prefixed environment variables taking precedence
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	// A missing config file is fine, defaults plus env vars carry the rest
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("lock.timeoutSeconds", 5)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.tableLatencyMs", 0)
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.sslMode", "disable")
	v.SetDefault("storage.database.maxOpenConns", 25)
	v.SetDefault("storage.database.maxIdleConns", 25)
	v.SetDefault("storage.database.connMaxLifetime", 30) // minutes
	v.SetDefault("storage.database.connMaxIdleTime", 15) // minutes
}

// getEnvironment determines the environment from PP_ENV
func getEnvironment() string {
	env := os.Getenv("PP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures sensitive environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("PP_DB_HOST"); dbHost != "" {
		v.Set("storage.database.host", dbHost)
	}
	if dbUser := os.Getenv("PP_DB_USERNAME"); dbUser != "" {
		v.Set("storage.database.username", dbUser)
	}
	if dbPass := os.Getenv("PP_DB_PASSWORD"); dbPass != "" {
		v.Set("storage.database.password", dbPass)
	}
	if dbName := os.Getenv("PP_DB_NAME"); dbName != "" {
		v.Set("storage.database.database", dbName)
	}
}

// processDurations converts raw second/minute counts into time.Duration values
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Storage.Database.ConnMaxLifetime *= time.Minute
	config.Storage.Database.ConnMaxIdleTime *= time.Minute
}

// LockTimeout returns the lock acquisition bound as a duration
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Lock.TimeoutSeconds) * time.Second
}

// TableLatency returns the configured in-memory table latency
func (c *Config) TableLatency() time.Duration {
	return time.Duration(c.Storage.TableLatencyMs) * time.Millisecond
}
