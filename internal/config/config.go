package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tatianab/monopoly-council/internal/models"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY,required"`
	Model        string        `env:"COUNCIL_MODEL" envDefault:"gemini-2.5-flash"`
	RosterPath   string        `env:"COUNCIL_ROSTER"`
	Players      []string      `env:"COUNCIL_PLAYERS" envSeparator:"," envDefault:"player1,player2"`
	Rounds       int           `env:"COUNCIL_ROUNDS" envDefault:"5"`
	CallTimeout  time.Duration `env:"COUNCIL_CALL_TIMEOUT" envDefault:"30s"`
	MaxRetries   int           `env:"COUNCIL_MAX_RETRIES" envDefault:"2"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Advisors returns the advisor roster: the YAML file at RosterPath when set,
// otherwise the default three-advisor bench.
func (c *Config) Advisors() ([]models.Advisor, error) {
	if c.RosterPath == "" {
		return DefaultRoster(), nil
	}
	return LoadRoster(c.RosterPath)
}

// DefaultRoster is the built-in advisor bench.
func DefaultRoster() []models.Advisor {
	return []models.Advisor{
		{Name: "Advisor A", Strategy: models.StrategyAggressive},
		{Name: "Advisor B", Strategy: models.StrategyConservative},
		{Name: "Advisor C", Strategy: models.StrategyOpportunistic},
	}
}

type rosterFile struct {
	Advisors []struct {
		Name     string `yaml:"name"`
		Strategy string `yaml:"strategy"`
	} `yaml:"advisors"`
}

// LoadRoster reads and validates an advisor roster YAML file.
func LoadRoster(path string) ([]models.Advisor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster %s: %v", path, err)
	}
	if len(file.Advisors) == 0 {
		return nil, fmt.Errorf("roster %s defines no advisors", path)
	}

	advisors := make([]models.Advisor, 0, len(file.Advisors))
	for _, entry := range file.Advisors {
		if entry.Name == "" {
			return nil, fmt.Errorf("roster %s: advisor with empty name", path)
		}
		strategy, err := models.ParseStrategy(entry.Strategy)
		if err != nil {
			return nil, fmt.Errorf("roster %s: %v", path, err)
		}
		advisors = append(advisors, models.Advisor{Name: entry.Name, Strategy: strategy})
	}
	return advisors, nil
}
