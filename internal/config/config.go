package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	OperatorWorkers int
	DefaultCurrency string
	LogLevel        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		OperatorWorkers:  1,
		DefaultCurrency:  "USD",
		LogLevel:         "info",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envPort := os.Getenv("PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envDefaultCurrency := os.Getenv("DEFAULT_CURRENCY")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", envOperatorWorkers)
		}
		env.OperatorWorkers = workers
	}

	if len(envDefaultCurrency) != 0 {
		env.DefaultCurrency = strings.ToUpper(envDefaultCurrency)
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
