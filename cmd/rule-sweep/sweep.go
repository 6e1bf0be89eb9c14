package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	gridcore "gol-editor/pkg/core"
	"gol-editor/pkg/engine"
	"gol-editor/pkg/rules"
)

type candidate struct {
	name string
	rule string
}

type scenario struct {
	width, height int
	density       float64
	gens          int
	seeds         []int64
	edge          engine.EdgePolicy
}

type scenarioResult struct {
	candidate candidate

	meanFinal float64
	peak      int
	extinct   int
	// settled counts seeds whose last generation changed nothing.
	settled int
	// activity is the mean number of births plus deaths per generation over
	// the last tenth of the run.
	activity float64
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("final=%.1f peak=%d activity=%.1f extinct=%d settled=%d %s (%s)",
		r.meanFinal, r.peak, r.activity, r.extinct, r.settled, r.candidate.rule, r.candidate.name)
}

// candidates lists the presets of the requested families followed by count
// random rules drawn from family.
func candidates(presetFamilies []string, family string, count int, seed int64) ([]candidate, error) {
	var out []candidate
	for _, fam := range presetFamilies {
		if _, ok := rules.Presets(fam); !ok {
			return nil, fmt.Errorf("unknown family %q", fam)
		}
		for _, name := range rules.Names(fam) {
			s, _ := rules.Preset(fam, name)
			out = append(out, candidate{name: name, rule: s})
		}
	}
	rng := gridcore.NewRNG(seed)
	for i := range count {
		s, err := rules.RandomRulestring(family, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate{name: fmt.Sprintf("random-%d", i+1), rule: s})
	}
	return out, nil
}

func runScenario(sc scenario, c candidate) (scenarioResult, error) {
	rule, err := rules.Parse(c.rule)
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{candidate: c}
	tail := max(sc.gens/10, 1)
	var activity, final int
	for _, seed := range sc.seeds {
		eng := engine.New(sc.width, sc.height, rule.Clone(), engine.WithEdgePolicy(sc.edge), engine.WithHistoryDepth(1))
		eng.Randomize(sc.density, seed)
		var last engine.Delta
		for gen := range sc.gens {
			last = eng.Step()
			res.peak = max(res.peak, eng.Population())
			if gen >= sc.gens-tail {
				activity += len(last.Birth) + len(last.Doomed)
			}
		}
		eng.Board().Refresh()
		pop := eng.Population()
		final += pop
		res.peak = max(res.peak, pop)
		if pop == 0 {
			res.extinct++
		}
		if sc.gens > 0 && len(last.Birth) == 0 && len(last.Doomed) == 0 {
			res.settled++
		}
	}
	if n := len(sc.seeds); n > 0 {
		res.meanFinal = float64(final) / float64(n)
		res.activity = float64(activity) / float64(n*tail)
	}
	return res, nil
}

// sweep evaluates every candidate on a pool of at most workers goroutines.
// Results keep the order of cands.
func sweep(ctx context.Context, sc scenario, cands []candidate, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(cands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, c := range cands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(sc, c)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// rank orders results by the chosen key, best first. Ties fall back to the
// rulestring so the order is stable across runs.
func rank(results []scenarioResult, by string) error {
	var key func(scenarioResult) float64
	switch by {
	case "final", "":
		key = func(r scenarioResult) float64 { return r.meanFinal }
	case "activity":
		key = func(r scenarioResult) float64 { return r.activity }
	case "peak":
		key = func(r scenarioResult) float64 { return float64(r.peak) }
	default:
		return fmt.Errorf("unknown sort key %q", by)
	}
	slices.SortStableFunc(results, func(a, b scenarioResult) int {
		ka, kb := key(a), key(b)
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		}
		return strings.Compare(a.candidate.rule, b.candidate.rule)
	})
	return nil
}
