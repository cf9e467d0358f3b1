package floor

import (
	"fmt"

	"output-floor/internal/model"
)

// PhaseStep is one year of the Basel III floor phase-in timetable.
type PhaseStep struct {
	Year  int
	Ratio float64
}

// DefaultSchedule is the BCBS phase-in timetable: the floor rises from 50%
// in 2022 to its final 72.5% in 2027.
func DefaultSchedule() []PhaseStep {
	return []PhaseStep{
		{Year: 2022, Ratio: 0.50},
		{Year: 2023, Ratio: 0.55},
		{Year: 2024, Ratio: 0.60},
		{Year: 2025, Ratio: 0.65},
		{Year: 2026, Ratio: 0.70},
		{Year: 2027, Ratio: 0.725},
	}
}

// ScheduleRow is one row of per-year output.
// This is the primary artifact for "what the floor does over time" to one profile.
type ScheduleRow struct {
	Year  int
	Ratio float64

	StandardizedSum  float64
	OutputFloor      float64
	InternalModelRWA float64

	Binding       float64
	BindingSource model.BindingSource

	// FloorAddOn is the extra capital base the floor imposes that year:
	// Binding - InternalModelRWA (zero when the internal model binds).
	FloorAddOn    float64
	CumFloorAddOn float64
}

// ScheduleResult bundles the per-year ledger with its end state.
type ScheduleResult struct {
	Ledger []ScheduleRow

	// FinalAssessment is the evaluation at the last step's ratio.
	FinalAssessment model.Assessment
	TotalFloorAddOn float64
}

// RunSchedule evaluates one profile at each step of a phase-in timetable.
func RunSchedule(p model.RWAProfile, steps []PhaseStep) (*ScheduleResult, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("no schedule steps")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ledger := make([]ScheduleRow, 0, len(steps))
	cum := 0.0
	var last model.Assessment

	for i, step := range steps {
		eval, err := NewWithRatio(step.Ratio)
		if err != nil {
			return nil, fmt.Errorf("schedule step %d (%d): %w", i, step.Year, err)
		}
		a, err := eval.Evaluate(p)
		if err != nil {
			return nil, fmt.Errorf("schedule step %d (%d): %w", i, step.Year, err)
		}
		addOn := a.Binding - p.InternalModelRWA
		cum += addOn

		ledger = append(ledger, ScheduleRow{
			Year:  step.Year,
			Ratio: step.Ratio,

			StandardizedSum:  a.StandardizedSum,
			OutputFloor:      a.OutputFloor,
			InternalModelRWA: p.InternalModelRWA,

			Binding:       a.Binding,
			BindingSource: a.BindingSource,

			FloorAddOn:    addOn,
			CumFloorAddOn: cum,
		})
		last = a
	}

	return &ScheduleResult{
		Ledger:          ledger,
		FinalAssessment: last,
		TotalFloorAddOn: cum,
	}, nil
}
