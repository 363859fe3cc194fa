package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Server configuration
	AppPort           string `yaml:"APP_PORT"`
	SiteURL           string `yaml:"SITE_URL"`
	RevalidateSeconds string `yaml:"REVALIDATE_SECONDS"`
	DiscoveryTimeout  string `yaml:"DISCOVERY_QUERY_TIMEOUT"`
	CORSAllowOrigins  string `yaml:"CORS_ALLOW_ORIGINS"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// JWT and hashing keys
	JWTSecret string `yaml:"JWT_SECRET"`
	AESKey    string `yaml:"AES_KEY"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

const DefaultConfigPath = "config.yaml"

var defaults = map[string]string{
	"APP_PORT":                "8080",
	"SITE_URL":                "https://cuisto.app",
	"DB_SSLMODE":              "disable",
	"REVALIDATE_SECONDS":      "3600",
	"DISCOVERY_QUERY_TIMEOUT": "5s",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"CORS_ALLOW_ORIGINS":      "*",
}

var config Config

// LoadConfig reads the YAML file at path. A missing file is not fatal:
// environment variables and defaults still apply.
func LoadConfig(path string) {
	if path == "" {
		path = DefaultConfigPath
	}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	var parsed Config
	err = yaml.Unmarshal(file, &parsed)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
	config = parsed
}

// ResetConfig clears values loaded from file.
func ResetConfig() {
	config = Config{}
}

// GetConfig returns the environment value for key, then the file value,
// then the built-in default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fileValue(key); v != "" {
		return v
	}
	return defaults[key]
}

// GetDuration parses key as a Go duration, or as whole seconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := GetConfig(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func fileValue(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "APP_PORT":
		return config.AppPort
	case "SITE_URL":
		return config.SiteURL
	case "REVALIDATE_SECONDS":
		return config.RevalidateSeconds
	case "DISCOVERY_QUERY_TIMEOUT":
		return config.DiscoveryTimeout
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "JWT_SECRET":
		return config.JWTSecret
	case "AES_KEY":
		return config.AESKey
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
