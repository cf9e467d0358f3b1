package analysis

import (
	"math"

	"output-floor/internal/data"
	"output-floor/internal/floor"
	"output-floor/internal/model"
)

// CapitalImpact is an entity-level summary you can use for ranking.
// It captures what the output floor does to one business unit's capital base.
type CapitalImpact struct {
	EntityID string
	Name     string

	StandardizedSum  float64
	OutputFloor      float64
	InternalModelRWA float64

	Binding       float64
	BindingSource model.BindingSource

	// FloorAddOn is the extra capital base the floor imposes over the
	// internal-model figure: Binding - InternalModelRWA (zero when the
	// internal model binds).
	FloorAddOn float64

	Benefit float64
	WorthIt bool

	// BreakevenRatio is the floor ratio at which the floor would start to
	// bind for this entity: InternalModelRWA / StandardizedSum. NaN when the
	// standardized sum is zero.
	BreakevenRatio float64
}

// ComputeImpact evaluates one entity against the floor.
func ComputeImpact(e data.Entity, eval *floor.Evaluator) (CapitalImpact, error) {
	a, err := eval.Evaluate(e.Profile)
	if err != nil {
		return CapitalImpact{}, err
	}

	breakeven := math.NaN()
	if a.StandardizedSum > 0 {
		breakeven = e.Profile.InternalModelRWA / a.StandardizedSum
	}

	return CapitalImpact{
		EntityID: e.ID,
		Name:     e.Name,

		StandardizedSum:  a.StandardizedSum,
		OutputFloor:      a.OutputFloor,
		InternalModelRWA: e.Profile.InternalModelRWA,

		Binding:       a.Binding,
		BindingSource: a.BindingSource,

		FloorAddOn: a.Binding - e.Profile.InternalModelRWA,

		Benefit: a.Benefit,
		WorthIt: a.WorthIt,

		BreakevenRatio: breakeven,
	}, nil
}

// SensitivityPoint is one ratio sample of a floor sweep for a profile.
type SensitivityPoint struct {
	Ratio         float64
	OutputFloor   float64
	Binding       float64
	BindingSource model.BindingSource
}

// RatioSensitivity evaluates a profile across a set of floor ratios.
// Invalid ratios are skipped.
func RatioSensitivity(p model.RWAProfile, ratios []float64) ([]SensitivityPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]SensitivityPoint, 0, len(ratios))
	for _, r := range ratios {
		eval, err := floor.NewWithRatio(r)
		if err != nil {
			continue
		}
		a, err := eval.Evaluate(p)
		if err != nil {
			continue
		}
		out = append(out, SensitivityPoint{
			Ratio:         r,
			OutputFloor:   a.OutputFloor,
			Binding:       a.Binding,
			BindingSource: a.BindingSource,
		})
	}
	return out, nil
}
