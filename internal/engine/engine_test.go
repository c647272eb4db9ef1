package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tatianab/monopoly-council/internal/models"
	"github.com/tatianab/monopoly-council/internal/monopoly"
)

// scriptedSource replays canned replies in order, repeating the last one.
type scriptedSource struct {
	mu      sync.Mutex
	replies []Response
	errs    []error
	calls   int
}

func (s *scriptedSource) Generate(ctx context.Context, prompt string) (Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return s.replies[i], err
}

// stalledSource blocks until the per-call deadline fires.
type stalledSource struct{}

func (stalledSource) Generate(ctx context.Context, prompt string) (Response, error) {
	<-ctx.Done()
	return Response{}, ctx.Err()
}

func testSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	snap, err := models.BuildSnapshot(monopoly.NewSeeded(1, "player1", "player2"))
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}
	return snap
}

func TestProposeActionParsesFencedYAML(t *testing.T) {
	source := &scriptedSource{replies: []Response{{
		Text:  "```yaml\nreasoning: the property is cheap\ndecision: yes, buy it\n```",
		Usage: models.UsageTotals{PromptTokens: 10, CandidateTokens: 5, TotalTokens: 15},
	}}}
	eng := New(source, time.Second, 2)

	proposal, err := eng.ProposeAction(context.Background(), "Player 1", testSnapshot(t))
	if err != nil {
		t.Fatalf("Failed to propose action: %v", err)
	}
	if proposal.Decision != "yes, buy it" {
		t.Errorf("Expected decision %q, got %q", "yes, buy it", proposal.Decision)
	}
	if proposal.Reasoning != "the property is cheap" {
		t.Errorf("Expected reasoning to survive parsing, got %q", proposal.Reasoning)
	}
	if got := eng.Usage().TotalTokens; got != 15 {
		t.Errorf("Expected 15 total tokens recorded, got %d", got)
	}
}

func TestRequestRetriesMalformedReplies(t *testing.T) {
	source := &scriptedSource{replies: []Response{
		{Text: "I think you should definitely buy it!"},
		{Text: "reasoning: fine\ndecision: approve"},
	}}
	eng := New(source, time.Second, 2)

	proposal, err := eng.ProposeAction(context.Background(), "Player 1", testSnapshot(t))
	if err != nil {
		t.Fatalf("Expected retry to recover, got %v", err)
	}
	if proposal.Decision != "approve" {
		t.Errorf("Expected decision from second attempt, got %q", proposal.Decision)
	}
	if source.calls != 2 {
		t.Errorf("Expected 2 calls, got %d", source.calls)
	}
}

func TestRequestFailsAfterRetryBudget(t *testing.T) {
	source := &scriptedSource{replies: []Response{{Text: "not yaml at all"}}}
	eng := New(source, time.Second, 2)

	_, err := eng.ProposeAction(context.Background(), "Player 1", testSnapshot(t))
	if !errors.Is(err, ErrMalformedDecision) {
		t.Fatalf("Expected ErrMalformedDecision, got %v", err)
	}
	if source.calls != 3 {
		t.Errorf("Expected 1 attempt + 2 retries = 3 calls, got %d", source.calls)
	}
}

func TestEmptyDecisionIsMalformed(t *testing.T) {
	source := &scriptedSource{replies: []Response{{Text: "reasoning: thought hard\ndecision: \"\""}}}
	eng := New(source, time.Second, 0)

	_, err := eng.ProposeAction(context.Background(), "Player 1", testSnapshot(t))
	if !errors.Is(err, ErrMalformedDecision) {
		t.Fatalf("Expected ErrMalformedDecision for empty decision, got %v", err)
	}
}

func TestTimeoutBecomesMalformedDecision(t *testing.T) {
	eng := New(stalledSource{}, 20*time.Millisecond, 1)

	start := time.Now()
	_, err := eng.ProposeAction(context.Background(), "Player 1", testSnapshot(t))
	if !errors.Is(err, ErrMalformedDecision) {
		t.Fatalf("Expected ErrMalformedDecision on timeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Timeout took too long: %v", elapsed)
	}
}

func TestCancelledContextIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	source := &scriptedSource{replies: []Response{{Text: "reasoning: r\ndecision: approve"}}}
	eng := New(source, time.Second, 2)

	_, err := eng.ProposeAction(ctx, "Player 1", testSnapshot(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if source.calls != 0 {
		t.Errorf("Expected no calls after cancellation, got %d", source.calls)
	}
}

func TestEvaluateProposalRendersAdvisorPrompt(t *testing.T) {
	source := &scriptedSource{replies: []Response{{Text: "reasoning: too risky\ndecision: reject"}}}
	eng := New(source, time.Second, 0)
	adv := models.Advisor{Name: "Advisor B", Strategy: models.StrategyConservative}
	proposal := &models.Proposal{Decision: "buy Mayfair"}

	resp, err := eng.EvaluateProposal(context.Background(), adv, testSnapshot(t), proposal)
	if err != nil {
		t.Fatalf("Failed to evaluate proposal: %v", err)
	}
	if resp.Decision != "reject" {
		t.Errorf("Expected decision %q, got %q", "reject", resp.Decision)
	}
}

func TestUsageAccumulatesAcrossCalls(t *testing.T) {
	source := &scriptedSource{replies: []Response{{
		Text:  "reasoning: r\ndecision: approve",
		Usage: models.UsageTotals{PromptTokens: 7, CandidateTokens: 3, TotalTokens: 10},
	}}}
	eng := New(source, time.Second, 0)
	snap := testSnapshot(t)

	for i := 0; i < 3; i++ {
		if _, err := eng.ProposeAction(context.Background(), "Player 1", snap); err != nil {
			t.Fatalf("Call %d failed: %v", i, err)
		}
	}

	usage := eng.Usage()
	if usage.TotalTokens != 30 || usage.PromptTokens != 21 || usage.CandidateTokens != 9 {
		t.Errorf("Unexpected usage totals: %+v", usage)
	}
}
