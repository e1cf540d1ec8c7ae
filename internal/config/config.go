package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		TokenTTLHours int    `yaml:"token_ttl_hours"`
		// Seeded at boot when no superadmin exists yet
		SuperadminEmail    string `yaml:"superadmin_email"`
		SuperadminPassword string `yaml:"superadmin_password"`
		SuperadminName     string `yaml:"superadmin_name"`
	} `yaml:"auth"`

	// Primary backend plus an ordered fallback, tried in sequence.
	Storage struct {
		Primary  StorageBackend `yaml:"primary"`
		Fallback StorageBackend `yaml:"fallback"`
	} `yaml:"storage"`

	Upload struct {
		MaxFiles    int   `yaml:"max_files"`     // Per request
		MaxFileSize int64 `yaml:"max_file_size"` // Bytes, per file
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		// Destination mailbox for contact/booking notifications
		NotifyAddress string `yaml:"notify_address"`
	} `yaml:"email"`

	Locale struct {
		Default string `yaml:"default"`
	} `yaml:"locale"`
}

// StorageBackend configures a single blob store.
type StorageBackend struct {
	Type      string `yaml:"type"`       // local, s3
	BasePath  string `yaml:"base_path"`  // For local storage
	BaseURL   string `yaml:"base_url"`   // Public URL base
	Bucket    string `yaml:"bucket"`     // For S3/R2
	Region    string `yaml:"region"`     // For S3
	AccessKey string `yaml:"access_key"` // For S3/R2
	SecretKey string `yaml:"secret_key"` // For S3/R2
	Endpoint  string `yaml:"endpoint"`   // For R2 or custom S3
	UseSSL    bool   `yaml:"use_ssl"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables when
// DATABASE_URL is set (used by the test environment). A .env file is loaded
// first when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.TokenTTLHours = 24

	cfg.Storage.Primary.Type = "local"
	cfg.Storage.Primary.BasePath = "./uploads"
	cfg.Storage.Primary.BaseURL = "/files"

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "studio@example.com"
	cfg.Email.NotifyAddress = "studio@example.com"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Upload.MaxFiles == 0 {
		cfg.Upload.MaxFiles = 50
	}
	if cfg.Upload.MaxFileSize == 0 {
		cfg.Upload.MaxFileSize = 100 << 20 // 100MB per file
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = "hr"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}
