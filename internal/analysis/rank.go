package analysis

import (
	"sort"

	"output-floor/internal/data"
	"output-floor/internal/floor"
)

type RankedImpact struct {
	CapitalImpact
}

// RankByFloorAddOn computes impacts per entity and sorts descending by
// FloorAddOn, i.e. the entities the floor hurts most come first.
// Entities with invalid profiles are skipped.
func RankByFloorAddOn(entities []data.Entity, eval *floor.Evaluator) []RankedImpact {
	out := make([]RankedImpact, 0, len(entities))
	for _, e := range entities {
		impact, err := ComputeImpact(e, eval)
		if err != nil {
			continue
		}
		out = append(out, RankedImpact{CapitalImpact: impact})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FloorAddOn > out[j].FloorAddOn
	})
	return out
}
