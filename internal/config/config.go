package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string // empty uses the environment's logger preset
	LogFormat   string // empty uses the environment's logger preset
	Environment string
	ServiceName string
	Version     string

	InventoryPath string        // JSON catalog to stock the shop with; empty uses the built-in fixture
	TickInterval  time.Duration // 0 disables scheduled days; ticks are then manual only
	HistorySize   int           // Number of day reports kept in memory
	WorkerCount   int
	QueueSize     int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv(EnvLogLevel, ""),
		LogFormat:     getEnv(EnvLogFormat, ""),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		InventoryPath: getEnv(EnvInventoryPath, ""),
	}

	sizes := []struct {
		key          string
		defaultValue int
		dst          *int
	}{
		{EnvHistorySize, DefaultHistorySize, &cfg.HistorySize},
		{EnvWorkerCount, DefaultWorkerCount, &cfg.WorkerCount},
		{EnvQueueSize, DefaultQueueSize, &cfg.QueueSize},
	}
	for _, size := range sizes {
		n, err := getEnvAsInt(size.key, size.defaultValue)
		if err != nil {
			return nil, err
		}
		*size.dst = n
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	interval, err := time.ParseDuration(getEnv(EnvTickInterval, DefaultTickInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL value: %w", err)
	}
	cfg.TickInterval = interval

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("TICK_INTERVAL must not be negative, got %s", c.TickInterval)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("HISTORY_SIZE must be positive, got %d", c.HistorySize)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be positive, got %d", c.QueueSize)
	}
	return nil
}

// ScheduledTicks reports whether days advance on a timer
func (c *Config) ScheduledTicks() bool {
	return c.TickInterval > 0
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value.
// A set but unparsable value is an error.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
