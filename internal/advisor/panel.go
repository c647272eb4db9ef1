package advisor

import (
	"context"
	"sync"

	"github.com/tatianab/monopoly-council/internal/models"
)

// Requester is the slice of the decision engine the panel needs: one
// evaluation call per advisor. It must be safe for concurrent use.
type Requester interface {
	EvaluateProposal(ctx context.Context, adv models.Advisor, snap *models.Snapshot, proposal *models.Proposal) (*models.Proposal, error)
}

// Evaluation is the result of one advisor's review. A non-nil Err means the
// advisor abstained and Approve is meaningless.
type Evaluation struct {
	Advisor   models.Advisor
	Approve   bool
	Reasoning string
	Err       error
}

type Panel struct {
	requester Requester
}

func NewPanel(requester Requester) *Panel {
	return &Panel{requester: requester}
}

// Evaluate asks every advisor for a vote on the proposal concurrently. All
// advisors see the same snapshot and proposal and never each other's votes.
// One advisor's failure never aborts the others; results come back in roster
// order regardless of completion order.
func (p *Panel) Evaluate(ctx context.Context, advisors []models.Advisor, snap *models.Snapshot, proposal *models.Proposal) []Evaluation {
	evals := make([]Evaluation, len(advisors))

	var wg sync.WaitGroup
	for i, adv := range advisors {
		wg.Add(1)
		go func(i int, adv models.Advisor) {
			defer wg.Done()
			resp, err := p.requester.EvaluateProposal(ctx, adv, snap, proposal)
			if err != nil {
				evals[i] = Evaluation{Advisor: adv, Err: err}
				return
			}
			evals[i] = Evaluation{
				Advisor:   adv,
				Approve:   Classify(resp.Decision),
				Reasoning: resp.Reasoning,
			}
		}(i, adv)
	}
	wg.Wait()

	return evals
}
