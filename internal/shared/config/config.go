package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	JWTSecret   string
	RedisAddr   string
	KafkaBroker string

	DB      DBConfig
	Storage StorageConfig
	Payslip PayslipConfig
	Company CompanyConfig
	SMTP    SMTPConfig
	Casbin  CasbinConfig

	AutoMigrate        bool
	TaxTablePath       string
	CleanupInterval    time.Duration
	OutboxPollInterval time.Duration
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type StorageConfig struct {
	Path string
}

type PayslipConfig struct {
	Retention     time.Duration
	RenderTimeout time.Duration
	PaperSize     string
	FontFamily    string
}

type CompanyConfig struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type CasbinConfig struct {
	ModelPath  string
	PolicyPath string
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "cadebeck_hr"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "./storage"),
		},
		Payslip: PayslipConfig{
			Retention:     getEnvDuration("PAYSLIP_RETENTION", 24*time.Hour),
			RenderTimeout: getEnvDuration("PAYSLIP_RENDER_TIMEOUT", 30*time.Second),
			PaperSize:     getEnv("PAYSLIP_PAPER_SIZE", "A4"),
			FontFamily:    getEnv("PAYSLIP_FONT", "Helvetica"),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "Cadebeck"),
			Address: getEnv("COMPANY_ADDRESS", ""),
			Email:   getEnv("COMPANY_EMAIL", ""),
			Phone:   getEnv("COMPANY_PHONE", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "payroll@localhost"),
			FromName: getEnv("SMTP_FROM_NAME", "Payroll"),
		},
		Casbin: CasbinConfig{
			ModelPath:  getEnv("CASBIN_MODEL_PATH", "internal/rbac/infra/model.conf"),
			PolicyPath: getEnv("CASBIN_POLICY_PATH", "internal/rbac/infra/policy.csv"),
		},
		AutoMigrate:        getEnvBool("AUTO_MIGRATE", false),
		TaxTablePath:       getEnv("TAX_TABLE_PATH", ""),
		CleanupInterval:    getEnvDuration("CLEANUP_INTERVAL", 10*time.Minute),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate reports settings the HTTP server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
