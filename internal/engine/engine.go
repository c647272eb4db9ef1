// Package engine obtains structured decisions from a language model.
//
// Every request renders a role-specific prompt, sends it to a DecisionSource,
// and parses the reply as YAML with two required fields: reasoning and
// decision. Replies that fail the schema are retried with the same prompt a
// fixed number of times before the call is reported as malformed.
package engine

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/tatianab/monopoly-council/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/propose_action.txt
var proposeActionPrompt string

//go:embed prompts/evaluate_proposal.txt
var evaluateProposalPrompt string

// ErrMalformedDecision is returned when the model's reply never conformed to
// the {reasoning, decision} schema within the retry budget, or timed out.
var ErrMalformedDecision = errors.New("malformed decision response")

type Engine struct {
	source  DecisionSource
	timeout time.Duration
	retries int

	mu    sync.Mutex
	usage models.UsageTotals
}

// New wraps a DecisionSource with the per-call timeout and retry policy.
func New(source DecisionSource, timeout time.Duration, retries int) *Engine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &Engine{source: source, timeout: timeout, retries: retries}
}

// Usage returns token totals accumulated across all calls so far.
func (e *Engine) Usage() models.UsageTotals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.usage
}

// ProposeAction asks the primary agent for its next move given the snapshot.
func (e *Engine) ProposeAction(ctx context.Context, role string, snap *models.Snapshot) (*models.Proposal, error) {
	state, err := snap.RenderYAML()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("propose_action").Parse(proposeActionPrompt)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	data := struct {
		Role  string
		State string
	}{Role: role, State: state}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return e.request(ctx, buf.String())
}

// EvaluateProposal asks one advisor to approve or reject a proposed action
// given the same snapshot the primary agent decided against.
func (e *Engine) EvaluateProposal(ctx context.Context, adv models.Advisor, snap *models.Snapshot, proposal *models.Proposal) (*models.Proposal, error) {
	state, err := snap.RenderYAML()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("evaluate_proposal").Parse(evaluateProposalPrompt)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	data := struct {
		AdvisorName    string
		Strategy       string
		State          string
		ProposedAction string
	}{
		AdvisorName:    adv.Name,
		Strategy:       string(adv.Strategy),
		State:          state,
		ProposedAction: proposal.Decision,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return e.request(ctx, buf.String())
}

// request sends the rendered prompt and enforces the schema, timeout, and
// retry policy. The same prompt is reused on every attempt.
func (e *Engine) request(ctx context.Context, prompt string) (*models.Proposal, error) {
	var lastErr error
	for attempt := 0; attempt <= e.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		resp, err := e.source.Generate(callCtx, prompt)
		cancel()

		e.mu.Lock()
		e.usage.Add(resp.Usage)
		e.mu.Unlock()

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		proposal, err := parseDecision(resp.Text)
		if err != nil {
			lastErr = err
			continue
		}
		return proposal, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrMalformedDecision, lastErr)
}

// parseDecision strips markdown fences and decodes the reply. A reply with an
// empty decision field fails the schema.
func parseDecision(text string) (*models.Proposal, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var proposal models.Proposal
	if err := yaml.Unmarshal([]byte(clean), &proposal); err != nil {
		return nil, fmt.Errorf("failed to parse decision YAML: %v", err)
	}
	if strings.TrimSpace(proposal.Decision) == "" {
		return nil, fmt.Errorf("decision field is empty")
	}
	return &proposal, nil
}
