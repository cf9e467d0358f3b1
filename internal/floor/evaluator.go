package floor

import (
	"fmt"
	"math"

	"output-floor/internal/model"
)

// DefaultRatio is the fully phased-in Basel III output floor: 72.5% of the
// standardized-approach RWA sum.
const DefaultRatio = 0.725

// Evaluator computes the output floor at a fixed ratio.
type Evaluator struct {
	ratio float64
}

// New returns an evaluator at the fully phased-in ratio.
func New() *Evaluator { return &Evaluator{ratio: DefaultRatio} }

// NewWithRatio returns an evaluator at a custom ratio, e.g. a phase-in year.
func NewWithRatio(ratio float64) (*Evaluator, error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("floor ratio must be in (0, 1], got %v", ratio)
	}
	return &Evaluator{ratio: ratio}, nil
}

func (e *Evaluator) Ratio() float64 { return e.ratio }

// Evaluate runs one floor assessment. Pure: the profile is validated, the
// derived figures are computed, nothing else happens.
func (e *Evaluator) Evaluate(p model.RWAProfile) (model.Assessment, error) {
	if err := p.Validate(); err != nil {
		return model.Assessment{}, err
	}

	sum := p.StandardizedSum()
	outputFloor := e.ratio * sum
	binding := math.Max(p.InternalModelRWA, outputFloor)
	benefit := sum - p.InternalModelRWA
	worthIt := benefit > p.InternalModelCost

	verdict := "The internal model is not worth the cost. Stick to the standard model."
	if worthIt {
		verdict = "The internal model is worth the cost."
	}

	return model.Assessment{
		FloorRatio:      e.ratio,
		StandardizedSum: sum,
		OutputFloor:     outputFloor,
		Binding:         binding,
		BindingSource:   model.BindingSourceFrom(p.InternalModelRWA, outputFloor),
		Benefit:         benefit,
		MaxBenefit:      (1 - e.ratio) * sum,
		WorthIt:         worthIt,
		Verdict:         verdict,
	}, nil
}
