package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the run parameters for the simulator. Energies are in
// GHz; the core is unit-agnostic as long as EC and EJ share a unit.
type Config struct {
	EC               float64 // charging energy
	RatioMin         float64 // smallest EJ/EC in the sweep
	RatioMax         float64 // largest EJ/EC in the sweep
	RatioPoints      int
	RatioScale       string // "LIN" or "DEC"
	NgPoints         int    // offset-charge grid size for band sweeps
	TruncationMargin int    // safety margin added to the charge-basis size
	Workers          int    // parallel sweep workers, 1 = sequential
	LogLevel         string
	Pretty           bool
}

// Load reads configuration from environment variables, with a .env
// file as optional source.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		EC:               getEnvAsFloat("TRANSMON_EC", 0.3),
		RatioMin:         getEnvAsFloat("TRANSMON_RATIO_MIN", 1),
		RatioMax:         getEnvAsFloat("TRANSMON_RATIO_MAX", 100),
		RatioPoints:      getEnvAsInt("TRANSMON_RATIO_POINTS", 50),
		RatioScale:       getEnv("TRANSMON_RATIO_SCALE", "LIN"),
		NgPoints:         getEnvAsInt("TRANSMON_NG_POINTS", 21),
		TruncationMargin: getEnvAsInt("TRANSMON_N_MARGIN", 6),
		Workers:          getEnvAsInt("TRANSMON_WORKERS", 1),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Pretty:           getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable sweep.
func (c *Config) Validate() error {
	if c.EC <= 0 {
		return fmt.Errorf("TRANSMON_EC must be positive, got %g", c.EC)
	}
	if c.RatioMin <= 0 {
		return fmt.Errorf("TRANSMON_RATIO_MIN must be positive, got %g", c.RatioMin)
	}
	if c.RatioMax < c.RatioMin {
		return fmt.Errorf("TRANSMON_RATIO_MAX (%g) below TRANSMON_RATIO_MIN (%g)", c.RatioMax, c.RatioMin)
	}
	if c.RatioPoints < 1 {
		return fmt.Errorf("TRANSMON_RATIO_POINTS must be at least 1, got %d", c.RatioPoints)
	}
	if c.RatioScale != "LIN" && c.RatioScale != "DEC" {
		return fmt.Errorf("TRANSMON_RATIO_SCALE must be LIN or DEC, got %q", c.RatioScale)
	}
	if c.NgPoints < 2 {
		return fmt.Errorf("TRANSMON_NG_POINTS must be at least 2, got %d", c.NgPoints)
	}
	if c.Workers < 1 {
		return fmt.Errorf("TRANSMON_WORKERS must be at least 1, got %d", c.Workers)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
