package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"
	DefaultModel   = "qwen/qwen3-next-80b-a3b-instruct"
	DefaultPrompt  = "You are a helpful therapy chatbot."
)

// Config is loaded once at startup and never mutated afterwards.
type Config struct {
	AppPort         string
	AppMode         string
	LogMode         string
	ShutdownTimeout time.Duration
	Completion      CompletionConfig
	Auth            AuthConfig
}

// CompletionConfig points at an OpenAI compatible chat completion API.
type CompletionConfig struct {
	NvidiaAPIKey string
	APIKey       string
	BaseURL      string
	Model        string
	Prompt       string
}

// AuthConfig holds the Supabase project credentials.
type AuthConfig struct {
	URL string
	Key string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	nvidiaKey := getEnv("NGC_NVIDIA_API_KEY", "")

	return &Config{
		AppPort:         getEnv("APP_PORT", "8000"),
		AppMode:         getEnv("APP_MODE", "debug"),
		LogMode:         getEnv("LOG_MODE", "development"),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second,
		Completion: CompletionConfig{
			NvidiaAPIKey: nvidiaKey,
			APIKey:       getEnv("OPENAI_API_KEY", nvidiaKey),
			BaseURL:      getEnv("OPENAI_BASE_URL", DefaultBaseURL),
			Model:        getEnv("OPENAI_MODEL", DefaultModel),
			Prompt:       getEnv("OPENAI_PROMPT", DefaultPrompt),
		},
		Auth: AuthConfig{
			URL: getEnv("SUPABASE_URL", ""),
			Key: getEnv("SUPABASE_KEY", ""),
		},
	}
}

// Validate reports the settings the providers cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Completion.APIKey == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY or NGC_NVIDIA_API_KEY is required"))
	}
	if c.Auth.URL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.Auth.Key == "" {
		errs = append(errs, errors.New("SUPABASE_KEY is required"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
