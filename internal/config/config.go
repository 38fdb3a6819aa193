// Package config centralizes application configuration: viper-backed,
// with defaults in code, a YAML config file, FLARECAST_* environment
// variables, and optional .env loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	AI       AI       `mapstructure:"ai"`
	Pipeline Pipeline `mapstructure:"pipeline"`
	Output   Output   `mapstructure:"output"`
	Cache    Cache    `mapstructure:"cache"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	ConfigFile string `mapstructure:"config_file"`
}

// AI holds the upstream insight-generation configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Pipeline holds the content-pipeline thresholds. The defaults match
// the constants in the pipeline packages; overriding them here takes
// effect without a code change.
type Pipeline struct {
	SimilarityContainment float64 `mapstructure:"similarity_containment"`
	SimilarityJaccard     float64 `mapstructure:"similarity_jaccard"`
	RepairMinLength       int     `mapstructure:"repair_min_length"`
	RandomRewrites        bool    `mapstructure:"random_rewrites"`
}

// Output holds output configuration
type Output struct {
	Directory string `mapstructure:"directory"`
}

// Cache holds cache configuration
type Cache struct {
	Directory string `mapstructure:"directory"`
	Enabled   bool   `mapstructure:"enabled"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".flarecast")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("FLARECAST")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.App.ConfigFile = viper.ConfigFileUsed()

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash-preview-05-20")
	viper.SetDefault("ai.gemini.max_tokens", 1024)
	viper.SetDefault("ai.gemini.temperature", 0.7)

	viper.SetDefault("pipeline.similarity_containment", 0.8)
	viper.SetDefault("pipeline.similarity_jaccard", 0.7)
	viper.SetDefault("pipeline.repair_min_length", 10)
	viper.SetDefault("pipeline.random_rewrites", false)

	viper.SetDefault("output.directory", "insights")
	viper.SetDefault("cache.directory", ".flarecast-cache")
	viper.SetDefault("cache.enabled", true)
}

func validateConfig(config *Config) error {
	p := config.Pipeline
	if p.SimilarityContainment <= 0 || p.SimilarityContainment > 1 {
		return fmt.Errorf("pipeline.similarity_containment must be in (0, 1], got %v", p.SimilarityContainment)
	}
	if p.SimilarityJaccard <= 0 || p.SimilarityJaccard > 1 {
		return fmt.Errorf("pipeline.similarity_jaccard must be in (0, 1], got %v", p.SimilarityJaccard)
	}
	if p.RepairMinLength <= 0 {
		return fmt.Errorf("pipeline.repair_min_length must be positive, got %d", p.RepairMinLength)
	}
	return nil
}

// Convenience accessors
func GetApp() App           { return Get().App }
func GetAI() AI             { return Get().AI }
func GetPipeline() Pipeline { return Get().Pipeline }
func GetOutput() Output     { return Get().Output }
func GetCache() Cache       { return Get().Cache }

func GetGeminiAPIKey() string    { return Get().AI.Gemini.APIKey }
func GetGeminiModel() string     { return Get().AI.Gemini.Model }
func GetOutputDirectory() string { return Get().Output.Directory }
func GetCacheDirectory() string  { return Get().Cache.Directory }
func IsDebugMode() bool          { return Get().App.Debug }

// Reset clears the global configuration (for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
