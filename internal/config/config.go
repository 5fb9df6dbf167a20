package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ProductionEnv is the APP_ENV value that disables development-only routes.
const ProductionEnv = "production"

// Config is the application configuration, read from defaults, an optional
// config.yaml and environment variables (in that order of precedence, lowest first).
type Config struct {
	AppPort        string        `mapstructure:"app_port"`
	AppEnv         string        `mapstructure:"app_env"`
	LogLevel       string        `mapstructure:"log_level"`
	DatabaseDriver string        `mapstructure:"database_driver"` // postgres, sqlite or memory
	DatabaseDSN    string        `mapstructure:"database_dsn"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	JWTTTL         time.Duration `mapstructure:"jwt_ttl"`
	BcryptCost     int           `mapstructure:"bcrypt_cost"`
	RabbitMQURL    string        `mapstructure:"rabbitmq_url"` // empty disables product events
	UploadMaxBytes int           `mapstructure:"upload_max_bytes"`

	StorageDriver    string `mapstructure:"storage_driver"` // local or s3
	StorageLocalRoot string `mapstructure:"storage_local_root"`
	StoragePublicURL string `mapstructure:"storage_public_url"`

	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Region   string `mapstructure:"s3_region"`
	S3Key      string `mapstructure:"s3_key"`
	S3Secret   string `mapstructure:"s3_secret"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
	S3URL      string `mapstructure:"s3_url"`
}

// IsProduction reports whether development-only features must be disabled.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, ProductionEnv)
}

// SetDefaults registers every key with its default so AutomaticEnv can see it
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:teslo.db?_foreign_keys=on")
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("UPLOAD_MAX_BYTES", 4*1024*1024)
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("STORAGE_LOCAL_ROOT", "static/products")
	v.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:3000/api/files/product")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_KEY", "")
	v.SetDefault("S3_SECRET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_URL", "")
}

// Load reads the configuration using a fresh viper instance.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	SetDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and checks the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.StorageDriver {
	case "local", "s3":
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	if c.IsProduction() && c.JWTSecret == "change-me-in-production" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}
