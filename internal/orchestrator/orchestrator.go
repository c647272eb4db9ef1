// Package orchestrator drives the game to a decision checkpoint, collects
// the primary proposal and the advisor votes, and reports the verdict.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/tatianab/monopoly-council/internal/advisor"
	"github.com/tatianab/monopoly-council/internal/engine"
	"github.com/tatianab/monopoly-council/internal/models"
	"github.com/tatianab/monopoly-council/internal/monopoly"
)

// Phase is where a decision cycle currently stands.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseAwaitingProposal
	PhaseAwaitingVotes
	PhaseCommitted
	PhaseDiscarded
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseAwaitingProposal:
		return "AwaitingProposal"
	case PhaseAwaitingVotes:
		return "AwaitingVotes"
	case PhaseCommitted:
		return "Committed"
	case PhaseDiscarded:
		return "Discarded"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// PrimaryRole names the participant the proposal is requested for.
const PrimaryRole = "Player 1"

type Orchestrator struct {
	game     *monopoly.Game
	engine   *engine.Engine
	panel    *advisor.Panel
	advisors []models.Advisor
	rounds   int
	phase    Phase
}

// New wires the orchestrator. rounds is how many full rounds to play before
// each decision checkpoint.
func New(game *monopoly.Game, eng *engine.Engine, panel *advisor.Panel, advisors []models.Advisor, rounds int) *Orchestrator {
	return &Orchestrator{
		game:     game,
		engine:   eng,
		panel:    panel,
		advisors: advisors,
		rounds:   rounds,
		phase:    PhaseRunning,
	}
}

// Phase reports the current state-machine position.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Game exposes the underlying game for rendering.
func (o *Orchestrator) Game() *monopoly.Game {
	return o.game
}

// Advance plays up to the configured number of rounds. It stops early when a
// player loses, moving to GameOver; otherwise it ends at AwaitingProposal.
func (o *Orchestrator) Advance() {
	o.phase = PhaseRunning
	for played := 0; played < o.rounds; played++ {
		if o.game.Over() {
			break
		}
		o.game.PlayRound()
	}
	if o.game.Over() {
		o.phase = PhaseGameOver
		return
	}
	o.phase = PhaseAwaitingProposal
}

// RunCycle advances the game to the decision checkpoint and runs one full
// proposal/vote round. Snapshot and primary-proposal failures are fatal to
// the cycle; advisor failures become abstentions in the report. When every
// advisor abstains the report is still returned together with
// ErrAllAbstained so callers can tell it apart from a majority reject.
func (o *Orchestrator) RunCycle(ctx context.Context) (*models.CycleReport, error) {
	o.Advance()
	if o.phase == PhaseGameOver {
		return &models.CycleReport{Round: o.game.Round, GameOver: true}, nil
	}

	snap, err := models.BuildSnapshot(o.game)
	if err != nil {
		return nil, err
	}

	proposal, err := o.engine.ProposeAction(ctx, PrimaryRole, snap)
	if err != nil {
		return nil, fmt.Errorf("primary proposal: %w", err)
	}

	o.phase = PhaseAwaitingVotes
	evals := o.panel.Evaluate(ctx, o.advisors, snap, proposal)
	if ctx.Err() != nil {
		// Cycle cancelled mid-vote; no partial verdict.
		return nil, ctx.Err()
	}

	report := &models.CycleReport{
		Round:    o.game.Round,
		Proposal: *proposal,
	}
	for _, eval := range evals {
		outcome := models.AdvisorOutcome{Advisor: eval.Advisor}
		if eval.Err != nil {
			outcome.Abstained = true
			outcome.Reason = eval.Err.Error()
		} else {
			outcome.Approved = eval.Approve
			outcome.Reasoning = eval.Reasoning
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	verdict, err := Aggregate(evals)
	report.Verdict = verdict
	report.Usage = o.engine.Usage()
	if errors.Is(err, ErrAllAbstained) {
		report.AllAbstained = true
		o.phase = PhaseDiscarded
		return report, err
	}

	if verdict.Accepted {
		o.phase = PhaseCommitted
	} else {
		o.phase = PhaseDiscarded
	}
	return report, nil
}
