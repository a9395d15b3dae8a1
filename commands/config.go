package commands

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config carries the iiko API credentials and the spreadsheet defaults. Credentials
// are environment-only - never source literals and never command line flags (flags
// leak through process listings).
type Config struct {
	BaseURL          string `env:"IIKO_BASE_URL,required"`
	Login            string `env:"IIKO_LOGIN,required"`
	Password         string `env:"IIKO_PASSWORD,required"`
	Credentials      string `env:"GOOGLE_CREDENTIALS" envDefault:"credentials.json"`
	SpreadsheetURL   string `env:"SPREADSHEET_URL"`
	DepartmentFilter string `env:"IIKO_DEPARTMENT_FILTER"`
}

func configure() (*Config, error) {
	// .env is optional - production runs set the environment directly
	if err := godotenv.Load(); err != nil {
		debugf("no .env file loaded (%v)", err)
	}

	config := Config{}
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration (%w)", err)
	}

	return &config, nil
}
