package matching

import (
	"sort"
	"sync"

	"github.com/365days/tribematch/quiz"
)

// DefaultLimit is the number of matches Rank returns when no limit is given.
const DefaultLimit = 5

// Candidate sets at or above this size are scored across goroutines. Each
// tribe's score is independent, so the fan-out is purely a throughput
// optimization; results land at fixed indexes and ordering is decided by the
// sort alone.
const parallelThreshold = 32

// Rank scores every tribe against the profile, orders by combined score
// descending, and returns the top limit results (DefaultLimit when limit <= 0).
// Ordering uses the unrounded combined score; exact ties are broken by tribe
// id ascending, so the output is deterministic regardless of input order.
//
// Rank performs no membership filtering: tribes the user already belongs to
// must be removed by the caller beforehand.
func Rank(profile UserProfile, tribes []TribeProfile, goalWeights map[quiz.GoalTag]float64, limit int) []MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]MatchResult, len(tribes))
	if len(tribes) >= parallelThreshold {
		var wg sync.WaitGroup
		for i := range tribes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = Score(profile, tribes[i], goalWeights)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range tribes {
			results[i] = Score(profile, tribes[i], goalWeights)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].combined != results[j].combined {
			return results[i].combined > results[j].combined
		}
		return results[i].TribeID < results[j].TribeID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
