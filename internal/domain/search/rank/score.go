// Package rank implements relevance scoring and candidate aggregation.
package rank

import "strings"

// Scoring weights. Field priority 0 is the highest-priority field (title);
// each step down costs fieldStep. Earlier positions in the upstream paged
// response earn a small boost with a floor of 1.
const (
	baseScore     = 120
	fieldStep     = 12
	positionBoost = 20
	localeBonus   = 15

	exactBonus     = 30
	prefixBonus    = 20
	substringBonus = 10
	indirectMalus  = 25
)

// Score computes the relevance score for one matched (value, query) pair.
//
// An empty value scores 0 and is excluded downstream. A non-empty value with
// no lexical relation to the query (the upstream full-text engine can match
// on stemming or other fields) is penalized but floored at 1, so it still
// ranks below any direct match without being dropped.
//
// For fixed field/position/locale the score is strictly monotonic in match
// quality: exact > prefix > substring > indirect.
func Score(value, query string, fieldPriority, position int, localeMatch bool) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}

	score := baseScore - fieldPriority*fieldStep

	if p := positionBoost - position; p > 1 {
		score += p
	} else {
		score++
	}

	if localeMatch {
		score += localeBonus
	}

	lv := strings.ToLower(v)
	lq := strings.ToLower(strings.TrimSpace(query))
	switch {
	case lv == lq:
		score += exactBonus
	case strings.HasPrefix(lv, lq):
		score += prefixBonus
	case strings.Contains(lv, lq):
		score += substringBonus
	default:
		score -= indirectMalus
		if score < 1 {
			score = 1
		}
	}

	return float64(score)
}
