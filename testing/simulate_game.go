package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/tatianab/monopoly-council/internal/advisor"
	"github.com/tatianab/monopoly-council/internal/config"
	"github.com/tatianab/monopoly-council/internal/engine"
	"github.com/tatianab/monopoly-council/internal/monopoly"
	"github.com/tatianab/monopoly-council/internal/orchestrator"
)

const maxCycles = 3

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	advisors, err := cfg.Advisors()
	if err != nil {
		log.Fatalf("Failed to load advisor roster: %v", err)
	}

	source, err := engine.NewGeminiSource(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to create decision source: %v", err)
	}
	defer source.Close()

	eng := engine.New(source, cfg.CallTimeout, cfg.MaxRetries)
	game := monopoly.New(cfg.Players...)
	panel := advisor.NewPanel(eng)
	orch := orchestrator.New(game, eng, panel, advisors, cfg.Rounds)

	for cycle := 1; cycle <= maxCycles; cycle++ {
		fmt.Printf("--- Cycle %d ---\n", cycle)

		report, err := orch.RunCycle(ctx)
		if err != nil && !errors.Is(err, orchestrator.ErrAllAbstained) {
			log.Fatalf("Cycle %d failed: %v", cycle, err)
		}

		if report.GameOver {
			fmt.Printf("Game over at round %d.\n", report.Round)
			break
		}

		fmt.Printf("Round: %d\n", report.Round)
		fmt.Printf("Proposal: %s\n", report.Proposal.Decision)
		for _, outcome := range report.Outcomes {
			if outcome.Abstained {
				fmt.Printf("  %s (%s): abstained (%s)\n", outcome.Advisor.Name, outcome.Advisor.Strategy, outcome.Reason)
				continue
			}
			vote := "reject"
			if outcome.Approved {
				vote = "approve"
			}
			fmt.Printf("  %s (%s): %s\n", outcome.Advisor.Name, outcome.Advisor.Strategy, vote)
		}

		switch {
		case report.AllAbstained:
			fmt.Println("Verdict: discarded (all advisors abstained)")
		case report.Verdict.Accepted:
			fmt.Println("Verdict: accepted")
		default:
			fmt.Println("Verdict: rejected")
		}
		fmt.Printf("Phase: %s\n", orch.Phase())
		fmt.Printf("Tokens so far: %d\n\n", report.Usage.TotalTokens)
	}

	for _, p := range game.Players {
		fmt.Printf("%s: cash=%d, holdings=%d, lost=%v\n", p.Name, p.Cash, len(p.Roads)+len(p.Properties), p.HasLost())
	}
}
