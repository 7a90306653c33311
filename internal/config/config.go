// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/qmlgo/qheart/internal/domain"
)

// Kernel and encoding selections. "all" runs every variant of the
// corresponding evaluator.
const (
	KernelLinear = "linear"
	KernelRBF    = "rbf"
	KernelAll    = "all"

	EncodingBasis     = "basis"
	EncodingAmplitude = "amplitude"
	EncodingAngle     = "angle"
	EncodingAll       = "all"
)

// ExperimentConfig holds the knobs of a single benchmark run
type ExperimentConfig struct {
	Kernel       string  // linear | rbf | all
	Encoding     string  // basis | amplitude | angle | all
	Shots        int     // circuit executions per kernel entry estimate
	Seed         int64   // split + sampling RNG seed
	TestFraction float64 // held-out fraction in (0,1)
	Stratify     bool    // keep class balance across the split
	MaxQubits    int     // simulator qubit budget
	C            float64 // SVM soft-margin penalty
	Gamma        float64 // RBF gamma; 0 = scale heuristic 1/(d*Var(X))
}

// Config holds application configuration
type Config struct {
	DataDir     string // base directory for the results database
	DatasetPath string // local CSV path or s3://bucket/key
	LogLevel    string
	Port        int
	DevMode     bool
	Schedule    string // cron spec for serve-mode re-evaluation, empty = disabled
	Experiment  ExperimentConfig
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("QHEART_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:     absDataDir,
		DatasetPath: getEnv("QHEART_DATASET", "heart.csv"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnvAsInt("QHEART_PORT", 8080),
		DevMode:     getEnvAsBool("DEV_MODE", false),
		Schedule:    getEnv("QHEART_SCHEDULE", ""),
		Experiment: ExperimentConfig{
			Kernel:       getEnv("QHEART_KERNEL", KernelAll),
			Encoding:     getEnv("QHEART_ENCODING", EncodingAngle),
			Shots:        getEnvAsInt("QHEART_SHOTS", 1024),
			Seed:         int64(getEnvAsInt("QHEART_SEED", 42)),
			TestFraction: getEnvAsFloat("QHEART_TEST_FRACTION", 0.2),
			Stratify:     getEnvAsBool("QHEART_STRATIFY", true),
			MaxQubits:    getEnvAsInt("QHEART_MAX_QUBITS", 20),
			C:            getEnvAsFloat("QHEART_SVM_C", 1.0),
			Gamma:        getEnvAsFloat("QHEART_SVM_GAMMA", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration surface is internally consistent
func (c *Config) Validate() error {
	return c.Experiment.Validate()
}

// Validate checks the experiment knobs against their documented domains
func (e *ExperimentConfig) Validate() error {
	switch e.Kernel {
	case KernelLinear, KernelRBF, KernelAll:
	default:
		return domain.NewConfigurationError("kernel", e.Kernel, "must be linear, rbf or all")
	}
	switch e.Encoding {
	case EncodingBasis, EncodingAmplitude, EncodingAngle, EncodingAll:
	default:
		return domain.NewConfigurationError("encoding", e.Encoding, "must be basis, amplitude, angle or all")
	}
	if e.Shots <= 0 {
		return domain.NewConfigurationError("shots", e.Shots, "must be a positive integer")
	}
	if e.TestFraction <= 0 || e.TestFraction >= 1 {
		return domain.NewConfigurationError("testFraction", e.TestFraction, "must be in (0,1)")
	}
	if e.MaxQubits <= 0 {
		return domain.NewConfigurationError("maxQubits", e.MaxQubits, "must be a positive integer")
	}
	if e.C <= 0 {
		return domain.NewConfigurationError("C", e.C, "must be positive")
	}
	if e.Gamma < 0 {
		return domain.NewConfigurationError("gamma", e.Gamma, "must be non-negative (0 = scale heuristic)")
	}
	return nil
}

// Kernels expands the kernel selection into the list of variants to run
func (e *ExperimentConfig) Kernels() []string {
	if e.Kernel == KernelAll {
		return []string{KernelLinear, KernelRBF}
	}
	return []string{e.Kernel}
}

// Encodings expands the encoding selection into the list of variants to run
func (e *ExperimentConfig) Encodings() []string {
	if e.Encoding == EncodingAll {
		return []string{EncodingBasis, EncodingAmplitude, EncodingAngle}
	}
	return []string{e.Encoding}
}

// Helper functions
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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
