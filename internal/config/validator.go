package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// minSafeTickInterval is the shortest scheduled day that does not flood the history
const minSafeTickInterval = time.Second

// ValidateEnv checks that the .env schema version, when present, matches expectations
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersion)
	if !ok {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that work but are probably unintended
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.ScheduledTicks() && cfg.TickInterval < minSafeTickInterval {
		warnings = append(warnings, fmt.Sprintf("TICK_INTERVAL %s is shorter than %s - history will only cover the last few seconds", cfg.TickInterval, minSafeTickInterval))
	}

	if cfg.Environment == logger.EnvironmentProduction && cfg.LogFormat != "" && !strings.EqualFold(cfg.LogFormat, logger.FormatJSON) {
		warnings = append(warnings, "LOG_FORMAT should be json in prod")
	}

	return warnings, nil
}
