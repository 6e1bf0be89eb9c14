package rules

import (
	"fmt"
	"slices"

	"gol-editor/pkg/core"
)

// maxRandomSpread bounds the radius picked by Randomize and RandomRulestring.
const maxRandomSpread = 10

// Random returns a new rule drawn the way Randomize draws one.
func Random(rng *core.RNG, randomSpread, randomCenter bool) *RuleSet {
	r := &RuleSet{Spread: 1}
	r.Randomize(rng, randomSpread, randomCenter)
	return r
}

// Randomize redraws r in place. With randomSpread the radius is picked from
// [1, 10], otherwise it is 1; with randomCenter IncludeCenter is a coin flip,
// otherwise false. Birth and survive become random subsets of
// [0, NeighborCountLimit].
func (r *RuleSet) Randomize(rng *core.RNG, randomSpread, randomCenter bool) {
	r.Spread = 1
	if randomSpread {
		r.Spread = rng.Between(1, maxRandomSpread)
	}
	r.IncludeCenter = randomCenter && rng.Bool()
	limit := r.NeighborCountLimit()
	r.survive = newCountSet(randomCounts(rng, limit))
	r.birth = newCountSet(randomCounts(rng, limit))
}

func randomCounts(rng *core.RNG, limit int) []int {
	counts := rng.Sample(limit+1, rng.IntN(limit+2))
	slices.Sort(counts)
	return counts
}

// RandomRulestring draws a rulestring of the given family. LtL rules use
// contiguous ranges inside [1, limit] and never produce R1 without the center,
// which B/S already covers.
func RandomRulestring(family string, rng *core.RNG) (string, error) {
	switch family {
	case FamilyBS:
		return generateBS(Random(rng, false, false)), nil
	case FamilyLtL:
		spread := rng.Between(1, maxRandomSpread)
		center := rng.Bool()
		if spread == 1 {
			center = true
		}
		limit := New(nil, nil, spread, center).NeighborCountLimit()
		sLo, sHi := randomRange(rng, 1, limit)
		bLo, bHi := randomRange(rng, 1, limit)
		m := 0
		if center {
			m = 1
		}
		return fmt.Sprintf("R%d,C0,M%d,S%d..%d,B%d..%d,NM", spread, m, sLo, sHi, bLo, bHi), nil
	default:
		return "", fmt.Errorf("rules: unknown family %q", family)
	}
}

func randomRange(rng *core.RNG, lo, hi int) (int, int) {
	a := rng.Between(lo, hi)
	b := rng.Between(lo, hi)
	return min(a, b), max(a, b)
}
