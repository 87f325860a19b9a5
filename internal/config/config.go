package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server     ServerConfig
	Completion CompletionConfig
	Storage    StorageConfig
	Worker     WorkerConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins string
}

type CompletionConfig struct {
	Provider string
	Groq     GroqConfig
	Gemini   GeminiConfig
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type WorkerConfig struct {
	EvaluationConcurrency int
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using environment and defaults.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "10000"),
			Env:            getEnv("ENV", "development"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Completion: CompletionConfig{
			Provider: strings.ToLower(getEnv("COMPLETION_PROVIDER", ProviderGroq)),
			Groq: GroqConfig{
				APIKey:  getEnv("GROQ_API_KEY", ""),
				BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
				Model:   getEnv("GROQ_MODEL", "llama3-70b-8192"),
			},
			Gemini: GeminiConfig{
				APIKey:  getEnv("GEMINI_API_KEY", ""),
				Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
				BaseURL: getEnv("GEMINI_BASE_URL", ""),
			},
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", filepath.Join(os.TempDir(), "prepgenie-uploads")),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			EvaluationConcurrency: getEnvAsInt("EVALUATION_CONCURRENCY", 1),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate reports configuration that would make every request fail.
func (c *Config) Validate() error {
	switch c.Completion.Provider {
	case ProviderGroq:
		if c.Completion.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when COMPLETION_PROVIDER=%s", ProviderGroq)
		}
	case ProviderGemini:
		if c.Completion.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when COMPLETION_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unknown completion provider: %q", c.Completion.Provider)
	}

	if c.Worker.EvaluationConcurrency < 1 {
		return fmt.Errorf("EVALUATION_CONCURRENCY must be at least 1, got %d", c.Worker.EvaluationConcurrency)
	}

	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Storage.MaxFileSize)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
