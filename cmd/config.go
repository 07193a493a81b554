package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration, populated from environment
// variables. A .env file is loaded first when present.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	PaymentBaseURL string `envconfig:"PAYMENT_BASE_URL" required:"true"`
	PaymentAPIKey  string `envconfig:"PAYMENT_API_KEY"`

	// AutoAssignCron is a six-field cron expression with a seconds
	// column. Empty disables the scheduled auto-assignment job.
	AutoAssignCron string `envconfig:"AUTO_ASSIGN_CRON"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
