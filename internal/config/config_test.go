package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tatianab/monopoly-council/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Expected default model, got %q", cfg.Model)
	}
	if cfg.Rounds != 5 {
		t.Errorf("Expected 5 rounds, got %d", cfg.Rounds)
	}
	if cfg.CallTimeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.CallTimeout)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("Expected 2 retries, got %d", cfg.MaxRetries)
	}
	if len(cfg.Players) != 2 || cfg.Players[0] != "player1" {
		t.Errorf("Expected default players, got %v", cfg.Players)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	if _, err := LoadConfig(); err == nil {
		t.Errorf("Expected error when GEMINI_API_KEY is unset")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("COUNCIL_ROUNDS", "8")
	t.Setenv("COUNCIL_CALL_TIMEOUT", "5s")
	t.Setenv("COUNCIL_PLAYERS", "alice,bob,carol")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Rounds != 8 {
		t.Errorf("Expected 8 rounds, got %d", cfg.Rounds)
	}
	if cfg.CallTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.CallTimeout)
	}
	if len(cfg.Players) != 3 {
		t.Errorf("Expected 3 players, got %v", cfg.Players)
	}
}

func TestDefaultRoster(t *testing.T) {
	advisors := DefaultRoster()
	if len(advisors) != 3 {
		t.Fatalf("Expected 3 default advisors, got %d", len(advisors))
	}
	want := []models.Strategy{models.StrategyAggressive, models.StrategyConservative, models.StrategyOpportunistic}
	for i, adv := range advisors {
		if adv.Strategy != want[i] {
			t.Errorf("Advisor %d strategy = %q, want %q", i, adv.Strategy, want[i])
		}
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `advisors:
  - name: Cautious Carl
    strategy: conservative
  - name: Bold Bella
    strategy: Aggressive
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write roster: %v", err)
	}

	advisors, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("Failed to load roster: %v", err)
	}
	if len(advisors) != 2 {
		t.Fatalf("Expected 2 advisors, got %d", len(advisors))
	}
	if advisors[0].Strategy != models.StrategyConservative {
		t.Errorf("Expected strategy to be canonicalized, got %q", advisors[0].Strategy)
	}
	if advisors[1].Name != "Bold Bella" {
		t.Errorf("Unexpected advisor name %q", advisors[1].Name)
	}
}

func TestLoadRosterRejectsBadStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `advisors:
  - name: Confused Chris
    strategy: chaotic
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write roster: %v", err)
	}

	if _, err := LoadRoster(path); err == nil {
		t.Errorf("Expected error for unknown strategy")
	}
}

func TestLoadRosterRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte("advisors: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write roster: %v", err)
	}

	if _, err := LoadRoster(path); err == nil {
		t.Errorf("Expected error for empty roster")
	}
}
