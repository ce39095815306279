package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	RateLimit RateLimit `validate:"required"`

	Sheets Sheets `validate:"required"`

	SMTP SMTP `validate:"required"`

	Backup Backup `validate:"required"`

	// Origem é o local fixo de origem carimbado em todo pedido desta instalação.
	Origem string `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type RateLimit struct {
	RPS   float64 `validate:"gt=0"`
	Burst int     `validate:"gte=1"`
}

type Sheets struct {
	SpreadsheetID   string `validate:"required"`
	CredentialsFile string `validate:"required"`
	AppendRange     string `validate:"required"`
}

type SMTP struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	User     string
	Password string

	From string `validate:"required,email"`
	To   string `validate:"required,email"`

	Timeout time.Duration `validate:"gt=0"`
}

type Backup struct {
	Dir string `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		RateLimit: RateLimit{
			RPS:   envFloat("RATE_LIMIT_RPS", 5),
			Burst: envInt("RATE_LIMIT_BURST", 10),
		},

		Sheets: Sheets{
			SpreadsheetID:   env("SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile: env("SHEETS_CREDENTIALS_FILE", "credentials.json"),
			AppendRange:     env("SHEETS_APPEND_RANGE", "Pedidos!A1"),
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", "localhost"),
			Port:     envInt("SMTP_PORT", 587),
			User:     env("SMTP_USER", ""),
			Password: env("SMTP_PASSWORD", ""),

			From: env("SMTP_FROM", ""),
			To:   env("NOTIFY_TO", ""),

			Timeout: envDuration("SMTP_TIMEOUT", 10*time.Second),
		},

		Backup: Backup{
			Dir: env("BACKUP_DIR", "data"),
		},

		Origem: env("ORIGEM_PEDIDO", "Loja Lugorito"),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
