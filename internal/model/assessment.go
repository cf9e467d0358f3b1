package model

// BindingSource says which figure set the regulatory capital base.
// Keep these values stable; they are intended for CSV and JSON output.
type BindingSource string

const (
	SourceInternalModel BindingSource = "INTERNAL_MODEL"
	SourceOutputFloor   BindingSource = "OUTPUT_FLOOR"
)

// BindingSourceFrom picks the source label for a binding choice. Ties go to
// the internal model: when the two figures are equal the floor is not binding.
func BindingSourceFrom(internalModelRWA, outputFloor float64) BindingSource {
	if internalModelRWA >= outputFloor {
		return SourceInternalModel
	}
	return SourceOutputFloor
}

// Assessment is the full result of one floor evaluation.
type Assessment struct {
	// FloorRatio is the ratio the floor was computed at (0.725 when fully phased in).
	FloorRatio float64

	// StandardizedSum is the total standardized-approach RWA.
	StandardizedSum float64

	// OutputFloor = FloorRatio * StandardizedSum.
	OutputFloor float64

	// Binding is the regulatory capital base: max(InternalModelRWA, OutputFloor).
	Binding float64

	// BindingSource labels which of the two figures won.
	BindingSource BindingSource

	// Benefit is the RWA reduction from internal models: StandardizedSum - InternalModelRWA.
	Benefit float64

	// MaxBenefit is the largest reduction the floor permits: (1 - FloorRatio) * StandardizedSum.
	MaxBenefit float64

	// WorthIt is true when Benefit exceeds the internal model's running cost.
	WorthIt bool

	// Verdict is a human-readable restatement of WorthIt.
	Verdict string
}
