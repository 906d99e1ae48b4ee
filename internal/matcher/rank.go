package matcher

import "sort"

// Rank orders results descending by score and flags the top one as the
// best candidate. The sort is stable, so candidates with equal scores keep
// their submission order and the earliest-submitted one wins the tie.
// Repeated runs on identical input always pick the same best candidate.
func Rank(results []CandidateResult) []CandidateResult {
	ranked := make([]CandidateResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].IsBestCandidate = i == 0
	}

	return ranked
}
