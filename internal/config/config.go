package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreJSON     = "json"
	StorePostgres = "postgres"

	BlobDisk = "disk"
	BlobS3   = "s3"
)

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// Record storage.
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DataDir     string `mapstructure:"DATA_DIR"`
	DBUrl       string `mapstructure:"DATABASE_URL"`

	// Where the JSON store keeps its files.
	BlobDriver  string `mapstructure:"BLOB_DRIVER"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3Prefix    string `mapstructure:"S3_PREFIX"`

	// Availability cache. Empty address disables it.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	CORSOrigins     string `mapstructure:"CORS_ORIGINS"`
	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN"`
}

var defaults = map[string]any{
	"SERVER_PORT":        "8080",
	"ENV":                "development",
	"LOG_LEVEL":          "info",
	"STORE_DRIVER":       StoreJSON,
	"DATA_DIR":           "./data",
	"DATABASE_URL":       "",
	"BLOB_DRIVER":        BlobDisk,
	"S3_BUCKET":          "",
	"S3_REGION":          "us-east-1",
	"S3_ENDPOINT":        "",
	"S3_ACCESS_KEY":      "",
	"S3_SECRET_KEY":      "",
	"S3_PREFIX":          "",
	"REDIS_ADDR":         "",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"CACHE_TTL":          "5m",
	"CORS_ORIGINS":       "*",
	"RATE_LIMIT_PER_MIN": 200,
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreJSON:
		switch c.BlobDriver {
		case BlobDisk:
			if c.DataDir == "" {
				return errors.New("config: DATA_DIR is required for the disk blob driver")
			}
		case BlobS3:
			if c.S3Bucket == "" {
				return errors.New("config: S3_BUCKET is required for the s3 blob driver")
			}
		default:
			return fmt.Errorf("config: unknown BLOB_DRIVER %q", c.BlobDriver)
		}
	case StorePostgres:
		if c.DBUrl == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.RateLimitPerMin <= 0 {
		return errors.New("config: RATE_LIMIT_PER_MIN must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
