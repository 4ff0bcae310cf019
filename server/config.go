package server

import (
	"os"
	"time"

	// Loads a .env file from the working directory, if present,
	// before any configuration is read.
	_ "github.com/joho/godotenv/autoload"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/postgres"
)

// Config collects everything the enroll app reads from the process
// environment. Values are read once at startup.
type Config struct {
	Env             enroll.Environment
	Port            int
	BaseURL         string
	ShutdownTimeout time.Duration
	DB              *postgres.CxnConfig
}

// ConfigFromEnv builds a Config from environment variables,
// falling back on development defaults.
//
// DATABASE_URL, when set, wins over the individual DB_* variables.
func ConfigFromEnv() *Config {
	env := enroll.EnvVarOrEnv("ENVIRONMENT", enroll.Development)

	return &Config{
		Env:             env,
		Port:            enroll.EnvVarOrInt("PORT", 8080),
		BaseURL:         enroll.EnvVarOrURL("BASE_URL", "http://localhost:8080").String(),
		ShutdownTimeout: enroll.EnvVarOrDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		DB: &postgres.CxnConfig{
			IsTestDB: env.IsTesting(),
			URL:      os.Getenv("DATABASE_URL"),
			Host:     enroll.EnvVarOrString("DB_HOST", "localhost"),
			Port:     enroll.EnvVarOrString("DB_PORT", "5432"),
			Name:     enroll.EnvVarOrString("DB_NAME", "enroll"),
			User:     enroll.EnvVarOrString("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
	}
}
