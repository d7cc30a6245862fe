package statService

import (
	"propSettler/services/common"
	"strings"
)

// Player match policy, strictest tier first:
//  1. exact match on normalized names
//  2. one normalized name contains the other (handles boxscore short forms
//     like "McDavid" and suffix variations like "Erik Karlsson Jr")
//  3. last name only (covers abbreviated first names like "C. McDavid")
// A looser tier is only consulted when every candidate misses the tier above, so
// an exact match always beats a sibling who merely shares the last name.

func matchTier(target, candidate string) int {
	t := common.NormalizeName(target)
	c := common.NormalizeName(candidate)
	if t == "" || c == "" {
		return 0
	}
	if t == c {
		return 3
	}
	if strings.Contains(t, c) || strings.Contains(c, t) {
		return 2
	}
	if common.LastName(target) == common.LastName(candidate) {
		return 1
	}
	return 0
}

// BestMatch returns the index of the candidate that matches target at the highest
// tier, or -1 when nothing matches at all.
func BestMatch(candidates []string, target string) int {
	bestIdx := -1
	bestTier := 0
	for i, c := range candidates {
		if tier := matchTier(target, c); tier > bestTier {
			bestTier = tier
			bestIdx = i
		}
	}
	return bestIdx
}
