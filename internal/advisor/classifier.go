// Package advisor evaluates a proposed action against a panel of independent
// advisors and classifies their free-text decisions into votes.
package advisor

import "strings"

// ClassifierVersion identifies the token list below. Bump it when the list
// changes so saved reports remain interpretable.
const ClassifierVersion = "v1"

// approveTokens are the affirmative markers. Anything that contains none of
// them is a rejection: ambiguous language fails closed.
var approveTokens = []string{"approve", "accept", "yes"}

// Classify turns an advisor's free-text decision into a boolean vote,
// case-insensitively.
func Classify(decision string) bool {
	lower := strings.ToLower(decision)
	for _, token := range approveTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
