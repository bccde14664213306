// Package config loads runtime settings for the gridpath executable from an
// optional .env file and GRIDPATH_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed or
// is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvRows       = "GRIDPATH_ROWS"
	EnvCellSize   = "GRIDPATH_CELL_SIZE"
	EnvStepDelay  = "GRIDPATH_STEP_DELAY"
	EnvSealBorder = "GRIDPATH_SEAL_BORDER"
	EnvLogFile    = "GRIDPATH_LOG_FILE"
)

// Defaults describe an 800px board split into 20 rows.
const (
	DefaultRows      = 20
	DefaultCellSize  = 40
	DefaultStepDelay = 10 * time.Millisecond
)

// Config holds the executable's settings.
type Config struct {
	Rows       int           // cells per side
	CellSize   int           // pixel size of one cell
	StepDelay  time.Duration // pause after each search step
	SealBorder bool          // force border cells to barriers before each search
	LogFile    string        // klog output file; empty means klog defaults
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:       DefaultRows,
		CellSize:   DefaultCellSize,
		StepDelay:  DefaultStepDelay,
		SealBorder: true,
	}
}

// Load reads envFile (".env" when empty) if it exists, then overlays the
// GRIDPATH_* variables on Default. A missing env file is not an error;
// variables already set in the process environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return Config{}, errors.Wrapf(err, "config: load %s", envFile)
	}

	cfg := Default()
	var err error
	if cfg.Rows, err = getEnvAsInt(EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsInt(EnvCellSize, cfg.CellSize); err != nil {
		return Config{}, err
	}
	if cfg.StepDelay, err = getEnvAsDuration(EnvStepDelay, cfg.StepDelay); err != nil {
		return Config{}, err
	}
	if cfg.SealBorder, err = getEnvAsBool(EnvSealBorder, cfg.SealBorder); err != nil {
		return Config{}, err
	}
	cfg.LogFile = getEnvWithDefault(EnvLogFile, cfg.LogFile)

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return errors.Wrapf(ErrInvalidValue, "rows must be positive, got %d", c.Rows)
	case c.CellSize < 1:
		return errors.Wrapf(ErrInvalidValue, "cell size must be positive, got %d", c.CellSize)
	case c.StepDelay < 0:
		return errors.Wrapf(ErrInvalidValue, "step delay must not be negative, got %v", c.StepDelay)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or the default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%s=%q is not an integer", key, value)
	}
	return n, nil
}

// getEnvAsDuration retrieves a time.Duration environment variable or the default.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%s=%q is not a duration", key, value)
	}
	return d, nil
}

// getEnvAsBool retrieves a boolean environment variable or the default.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidValue, "%s=%q is not a boolean", key, value)
	}
	return b, nil
}
