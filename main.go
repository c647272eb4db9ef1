package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/monopoly-council/internal/advisor"
	"github.com/tatianab/monopoly-council/internal/config"
	"github.com/tatianab/monopoly-council/internal/engine"
	"github.com/tatianab/monopoly-council/internal/monopoly"
	"github.com/tatianab/monopoly-council/internal/orchestrator"
	"github.com/tatianab/monopoly-council/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	advisors, err := cfg.Advisors()
	if err != nil {
		fmt.Printf("Error loading advisor roster: %v\n", err)
		os.Exit(1)
	}

	source, err := engine.NewGeminiSource(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		fmt.Printf("Error creating decision source: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	eng := engine.New(source, cfg.CallTimeout, cfg.MaxRetries)
	game := monopoly.New(cfg.Players...)
	panel := advisor.NewPanel(eng)
	orch := orchestrator.New(game, eng, panel, advisors, cfg.Rounds)

	if err := tui.Run(orch); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
