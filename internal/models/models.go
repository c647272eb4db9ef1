package models

import (
	"fmt"
	"strings"
)

// Strategy labels how an advisor weighs a proposed action.
type Strategy string

const (
	StrategyAggressive    Strategy = "Aggressive"
	StrategyConservative  Strategy = "Conservative"
	StrategyOpportunistic Strategy = "Opportunistic"
)

// ParseStrategy canonicalizes a strategy label.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aggressive":
		return StrategyAggressive, nil
	case "conservative":
		return StrategyConservative, nil
	case "opportunistic":
		return StrategyOpportunistic, nil
	}
	return "", fmt.Errorf("unknown advisor strategy %q", s)
}

// Advisor is an independent evaluator with a fixed strategy. Advisors keep no
// memory between decision cycles.
type Advisor struct {
	Name     string   `yaml:"name"`
	Strategy Strategy `yaml:"strategy"`
}

// Proposal is a structured decision from the model: the recommended action
// plus the reasoning behind it. Immutable once produced.
type Proposal struct {
	Reasoning string `yaml:"reasoning"`
	Decision  string `yaml:"decision"`
}

// Vote is one advisor's verdict on a proposal.
type Vote struct {
	Advisor Advisor `yaml:"advisor"`
	Approve bool    `yaml:"approve"`
}

// Verdict is the aggregated outcome of a voting round. Accepted requires a
// strict majority of approvals among the resolved votes.
type Verdict struct {
	Accepted    bool `yaml:"accepted"`
	Approvals   int  `yaml:"approvals"`
	Rejections  int  `yaml:"rejections"`
	Abstentions int  `yaml:"abstentions"`
}

// UsageTotals accumulates token accounting across model calls.
type UsageTotals struct {
	PromptTokens    int64 `yaml:"prompt_tokens"`
	CandidateTokens int64 `yaml:"candidate_tokens"`
	TotalTokens     int64 `yaml:"total_tokens"`
}

// Add merges another usage reading into the totals.
func (u *UsageTotals) Add(other UsageTotals) {
	u.PromptTokens += other.PromptTokens
	u.CandidateTokens += other.CandidateTokens
	u.TotalTokens += other.TotalTokens
}

// AdvisorOutcome records how one advisor's evaluation ended: a vote with
// reasoning, or an abstention with the failure reason.
type AdvisorOutcome struct {
	Advisor   Advisor `yaml:"advisor"`
	Approved  bool    `yaml:"approved"`
	Reasoning string  `yaml:"reasoning,omitempty"`
	Abstained bool    `yaml:"abstained,omitempty"`
	Reason    string  `yaml:"reason,omitempty"`
}

// CycleReport is everything one decision cycle produced.
type CycleReport struct {
	Round        int              `yaml:"round"`
	GameOver     bool             `yaml:"game_over,omitempty"`
	Proposal     Proposal         `yaml:"proposal"`
	Outcomes     []AdvisorOutcome `yaml:"outcomes"`
	Verdict      Verdict          `yaml:"verdict"`
	AllAbstained bool             `yaml:"all_abstained,omitempty"`
	Usage        UsageTotals      `yaml:"usage"`
}
