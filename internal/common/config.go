package common

import (
	"os"
	"strconv"
	"time"

	"github.com/medintake/docpipeline/constants"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Processing ProcessingConfig
	OCR        OCRConfig
}

// DatabaseConfig holds the processing log location.
type DatabaseConfig struct {
	Path string
}

// ProcessingConfig holds pipeline defaults applied when the caller does
// not override them per run.
type ProcessingConfig struct {
	ConfidenceThreshold     float32
	Workers                 int
	Language                string
	EnableOCR               bool
	EnableClassification    bool
	EnableDataExtraction    bool
	EnableQualityValidation bool
}

// OCRConfig holds text-extractor tuning.
type OCRConfig struct {
	SimulatedDelay time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("DOCPIPE_DB_PATH", "docpipeline.db"),
		},
		Processing: ProcessingConfig{
			ConfidenceThreshold:     getEnvAsFloat32("DOCPIPE_CONFIDENCE_THRESHOLD", constants.DefaultConfidenceThreshold),
			Workers:                 getEnvAsInt("DOCPIPE_WORKERS", 1),
			Language:                getEnv("DOCPIPE_LANGUAGE", "en"),
			EnableOCR:               getEnvAsBool("DOCPIPE_ENABLE_OCR", true),
			EnableClassification:    getEnvAsBool("DOCPIPE_ENABLE_CLASSIFICATION", true),
			EnableDataExtraction:    getEnvAsBool("DOCPIPE_ENABLE_EXTRACTION", true),
			EnableQualityValidation: getEnvAsBool("DOCPIPE_ENABLE_VALIDATION", true),
		},
		OCR: OCRConfig{
			SimulatedDelay: getEnvAsDuration("DOCPIPE_OCR_DELAY", 0),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "DOCPIPE_DB_PATH is required", ErrInvalidInput)
	}
	if c.Processing.ConfidenceThreshold < 0 || c.Processing.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "DOCPIPE_CONFIDENCE_THRESHOLD must be in [0, 1]", ErrInvalidInput)
	}
	if c.Processing.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "DOCPIPE_WORKERS must be at least 1", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
