package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

type Config struct {
	Host     string
	Port     string
	LogLevel string

	// Uploads
	UploadBackend string
	UploadDir     string
	MaxFileSize   int64

	// S3
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Hugging Face inference
	HFAPIURL        string
	HFAPIToken      string
	SummarizerModel string
	GeneratorModel  string
	ModelTimeoutSec int

	// Pipeline tuning
	SummaryMinLength int
	SummaryMaxLength int
	ChunkMaxWords    int
	BulletMaxItems   int
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnv("PORT", "5000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		UploadBackend:     getEnv("UPLOAD_BACKEND", BackendLocal),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:       int64(getEnvInt("MAX_UPLOAD_MB", 20)) << 20,
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "uploads"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		HFAPIURL:          getEnv("HF_API_URL", "https://api-inference.huggingface.co/models"),
		HFAPIToken:        getEnv("HF_API_TOKEN", ""),
		SummarizerModel:   getEnv("SUMMARIZER_MODEL", "facebook/bart-large-cnn"),
		GeneratorModel:    getEnv("GENERATOR_MODEL", "google/flan-t5-base"),
		ModelTimeoutSec:   getEnvInt("MODEL_TIMEOUT_SECONDS", 120),
		SummaryMinLength:  getEnvInt("SUMMARY_MIN_LENGTH", 40),
		SummaryMaxLength:  getEnvInt("SUMMARY_MAX_LENGTH", 120),
		ChunkMaxWords:     getEnvInt("CHUNK_MAX_WORDS", 400),
		BulletMaxItems:    getEnvInt("BULLET_MAX_ITEMS", 5),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) validate() error {
	if c.UploadBackend != BackendLocal && c.UploadBackend != BackendS3 {
		return &ConfigError{Field: "UPLOAD_BACKEND", Message: fmt.Sprintf("unsupported backend %q", c.UploadBackend)}
	}
	if c.MaxFileSize <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "must be positive"}
	}
	if c.ModelTimeoutSec <= 0 {
		return &ConfigError{Field: "MODEL_TIMEOUT_SECONDS", Message: "must be positive"}
	}
	if c.SummaryMinLength <= 0 || c.SummaryMaxLength <= 0 {
		return &ConfigError{Field: "SUMMARY_MIN_LENGTH", Message: "summary bounds must be positive"}
	}
	if c.SummaryMinLength > c.SummaryMaxLength {
		return &ConfigError{Field: "SUMMARY_MIN_LENGTH", Message: "must not exceed SUMMARY_MAX_LENGTH"}
	}
	if c.ChunkMaxWords <= 0 {
		return &ConfigError{Field: "CHUNK_MAX_WORDS", Message: "must be positive"}
	}
	if c.BulletMaxItems <= 0 {
		return &ConfigError{Field: "BULLET_MAX_ITEMS", Message: "must be positive"}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
