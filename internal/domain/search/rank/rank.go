package rank

import (
	"sort"

	"github.com/kollektivet/sitesearch/internal/domain/search/result"
)

// Candidate is a scored, shaped match for one parent entity, prior to
// within-index deduplication.
type Candidate struct {
	Key       string // parent entity id, unique within one index
	Score     float64
	UpdatedAt int64
	Result    result.Result
}

// Best folds candidates into at most one survivor per key: the highest score
// wins, ties go to the greater UpdatedAt. The fold is a pure function of the
// input list and commutative, so survivorship does not depend on the order in
// which field queries resolved. Survivors come back sorted by score
// descending, ties by UpdatedAt descending, then by key for determinism.
func Best(cands []Candidate) []Candidate {
	byKey := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		cur, seen := byKey[c.Key]
		if !seen || better(c, cur) {
			byKey[c.Key] = c
		}
	}

	out := make([]Candidate, 0, len(byKey))
	for _, c := range byKey {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func better(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.UpdatedAt > b.UpdatedAt
}

// Merge globally orders results from all index handlers by score descending,
// ties by recency descending, and truncates to limit.
func Merge(results []result.Result, limit int) []result.Result {
	merged := make([]result.Result, len(results))
	copy(merged, results)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].UpdatedAt > merged[j].UpdatedAt
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
