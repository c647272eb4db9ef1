package orchestrator

import (
	"errors"

	"github.com/tatianab/monopoly-council/internal/advisor"
	"github.com/tatianab/monopoly-council/internal/models"
)

// ErrAllAbstained distinguishes "no usable votes" from a normal majority
// reject. The verdict still fails closed.
var ErrAllAbstained = errors.New("all advisors abstained")

// Aggregate applies the strict-majority rule to a finished evaluation round.
// Abstentions are counted but excluded from the majority test; a tie rejects.
// When no advisor produced a usable vote the verdict is a reject and
// ErrAllAbstained is returned alongside it.
func Aggregate(evals []advisor.Evaluation) (models.Verdict, error) {
	var verdict models.Verdict
	for _, eval := range evals {
		switch {
		case eval.Err != nil:
			verdict.Abstentions++
		case eval.Approve:
			verdict.Approvals++
		default:
			verdict.Rejections++
		}
	}

	if verdict.Approvals+verdict.Rejections == 0 {
		return verdict, ErrAllAbstained
	}

	verdict.Accepted = verdict.Approvals > verdict.Rejections
	return verdict, nil
}
