package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set; create a .env with GEMINI_API_KEY=...")

const (
	StoreLocal = "local"
	StoreS3    = "s3"

	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	GeminiAPIKey     string
	GeminiModel      string
	LLMTimeout       time.Duration
	UploadFolder     string
	UploadStore      string
	S3Bucket         string
	S3Prefix         string
	AWSRegion        string
	SSEKMSKeyID      string
	MaxUploadBytes   int64
	CORSAllowOrigins []string
	LogLevel         string
	LogFormat        string
}

var defaults = map[string]any{
	"port":                "5000",
	"env":                 "dev",
	"gemini_model":        "gemini-1.5-flash",
	"llm_timeout_seconds": 120,
	"upload_folder":       "uploads",
	"upload_store":        StoreLocal,
	"max_upload_mb":       10,
	"cors_allow_origins":  "*",
	"log_level":           "info",
}

// Load reads configuration from .env files, an optional CONFIG_FILE and the
// environment, then validates it.
func Load() (Config, error) {
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("env"))
	logFormat := strings.TrimSpace(v.GetString("log_format"))
	if logFormat == "" {
		logFormat = "json"
		if env == EnvDev {
			logFormat = "console"
		}
	}

	timeout := time.Duration(v.GetInt("llm_timeout_seconds")) * time.Second
	if timeout < 0 {
		timeout = 0
	}
	maxMB := v.GetInt64("max_upload_mb")
	if maxMB < 0 {
		maxMB = 0
	}

	return Config{
		Port:             strings.TrimSpace(v.GetString("port")),
		Env:              env,
		GeminiAPIKey:     strings.TrimSpace(v.GetString("gemini_api_key")),
		GeminiModel:      strings.TrimSpace(v.GetString("gemini_model")),
		LLMTimeout:       timeout,
		UploadFolder:     strings.TrimSpace(v.GetString("upload_folder")),
		UploadStore:      normalizeStoreType(v.GetString("upload_store")),
		S3Bucket:         strings.TrimSpace(v.GetString("s3_bucket")),
		S3Prefix:         strings.TrimSpace(v.GetString("s3_prefix")),
		AWSRegion:        strings.TrimSpace(v.GetString("aws_region")),
		SSEKMSKeyID:      strings.TrimSpace(v.GetString("sse_kms_key_id")),
		MaxUploadBytes:   maxMB << 20,
		CORSAllowOrigins: splitAndTrim(v.GetString("cors_allow_origins")),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        logFormat,
	}
}

// Validate checks the settings that must hold before any component is built.
// ErrMissingAPIKey is reported last so storage problems surface first.
func (c Config) Validate() error {
	if c.UploadStore == StoreS3 && strings.TrimSpace(c.S3Bucket) == "" {
		return errors.New("UPLOAD_STORE=s3 requires S3_BUCKET")
	}
	if c.UploadStore == StoreLocal && strings.TrimSpace(c.UploadFolder) == "" {
		return errors.New("UPLOAD_FOLDER must not be empty")
	}
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return EnvProduction
	case "staging":
		return EnvStaging
	default:
		return EnvDev
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreS3:
		return StoreS3
	default:
		return StoreLocal
	}
}
