// Command council plays a game to the decision checkpoint, asks the primary
// agent for a proposal, puts it to the advisor panel, and prints the verdict.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tatianab/monopoly-council/internal/advisor"
	"github.com/tatianab/monopoly-council/internal/config"
	"github.com/tatianab/monopoly-council/internal/engine"
	"github.com/tatianab/monopoly-council/internal/models"
	"github.com/tatianab/monopoly-council/internal/monopoly"
	"github.com/tatianab/monopoly-council/internal/orchestrator"
)

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

	report, err := orch.RunCycle(ctx)
	allAbstained := errors.Is(err, orchestrator.ErrAllAbstained)
	if err != nil && !allAbstained {
		log.Fatalf("Cycle failed: %v", err)
	}

	if report.GameOver {
		fmt.Printf("Game over after %d rounds; no proposal requested.\n", report.Round)
		return
	}

	fmt.Println("Player proposal:")
	fmt.Println(report.Proposal.Decision)
	fmt.Println("Player reasoning:")
	fmt.Println(report.Proposal.Reasoning)
	fmt.Println()

	fmt.Println("Turning to advisors for a vote...")
	for _, outcome := range report.Outcomes {
		if outcome.Abstained {
			fmt.Printf("%s (%s) abstained: %s\n", outcome.Advisor.Name, outcome.Advisor.Strategy, outcome.Reason)
			continue
		}
		vote := "reject"
		if outcome.Approved {
			vote = "approve"
		}
		fmt.Printf("%s (%s) votes to %s the proposal.\n", outcome.Advisor.Name, outcome.Advisor.Strategy, vote)
	}

	switch {
	case allAbstained:
		fmt.Println("No usable votes: every advisor abstained. Proposal discarded.")
	case report.Verdict.Accepted:
		fmt.Println("Proposal accepted by advisors.")
	default:
		fmt.Println("Proposal rejected by advisors.")
	}

	fmt.Printf("Votes: %d approve, %d reject, %d abstain\n",
		report.Verdict.Approvals, report.Verdict.Rejections, report.Verdict.Abstentions)
	fmt.Printf("Total Tokens Used: %d (prompt %d, candidates %d)\n",
		report.Usage.TotalTokens, report.Usage.PromptTokens, report.Usage.CandidateTokens)

	name := fmt.Sprintf("cycle-%d", time.Now().Unix())
	snap, snapErr := models.BuildSnapshot(game)
	if snapErr != nil {
		snap = nil
	}
	if err := report.Save(name, snap); err != nil {
		log.Printf("Warning: failed to save report: %v", err)
	}
}
