package cover

import (
	"sort"

	"github.com/covermax/satflow/cnf"
)

// sortCandidatesByScore orders candidates by descending greedy score,
// breaking ties by leaving equal-score entries in their original
// (first-seen) relative order.
func sortCandidatesByScore(candidates []cnf.Lit, score []int) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return score[candidates[i].Var()] > score[candidates[j].Var()]
	})
}
