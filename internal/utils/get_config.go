package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort         string        `yaml:"APP_PORT" env:"APP_PORT" env-default:"8080"`
	AppURL          string        `yaml:"APP_URL" env:"APP_URL" env-default:"http://localhost:8080"`
	PageSize        int           `yaml:"PAGE_SIZE" env:"PAGE_SIZE" env-default:"6"`
	RateLimitMax    int           `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX" env-default:"10"`
	RateLimitWindow time.Duration `yaml:"RATE_LIMIT_WINDOW" env:"RATE_LIMIT_WINDOW" env-default:"1s"`
	LogLevel        string        `yaml:"LOG_LEVEL" env:"LOG_LEVEL" env-default:"info"`
	LogMode         string        `yaml:"LOG_MODE" env:"LOG_MODE" env-default:"production"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT" env-default:"5432"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST" env-default:"localhost"`
	DBTimeZone string `yaml:"DB_TIMEZONE" env:"DB_TIMEZONE" env-default:"UTC"`

	// JWT
	JWTSecret string        `yaml:"JWT_SECRET" env:"JWT_SECRET"`
	JWTIssuer string        `yaml:"JWT_ISSUER" env:"JWT_ISSUER" env-default:"FOODGRAM"`
	JWTTTL    time.Duration `yaml:"JWT_TTL" env:"JWT_TTL" env-default:"24h"`

	// Redis (token blacklist)
	RedisAddr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB" env:"REDIS_DB"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" env:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" env:"SMTP_PORT" env-default:"587"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" env:"SMTP_SENDER_NAME" env-default:"Foodgram"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" env:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" env:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT" env:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads the optional .env and YAML files, then overlays the
// environment on top of them.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	config = cfg
	return &cfg, nil
}

func GetConfig() *Config {
	return &config
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}
