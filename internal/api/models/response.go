package models

// EvaluateResponse represents the response from a floor evaluation
type EvaluateResponse struct {
	Status     string     `json:"status"`
	Assessment Assessment `json:"assessment"`
}

// Assessment contains the derived floor figures
type Assessment struct {
	FloorRatio      float64 `json:"floor_ratio"`
	StandardizedSum float64 `json:"standardized_sum"`
	OutputFloor     float64 `json:"output_floor"`
	Binding         float64 `json:"binding"`
	BindingSource   string  `json:"binding_source"` // "INTERNAL_MODEL", "OUTPUT_FLOOR"
	Benefit         float64 `json:"benefit"`
	MaxBenefit      float64 `json:"max_benefit"`
	WorthIt         bool    `json:"worth_it"`
	Verdict         string  `json:"verdict"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains the assessment for one variation
type ComparisonResult struct {
	Name       string     `json:"name"`
	Assessment Assessment `json:"assessment"`
}

// ScheduleResponse represents the response from a phase-in schedule run
type ScheduleResponse struct {
	Ledger          []ScheduleRow `json:"ledger"`
	TotalFloorAddOn float64       `json:"total_floor_add_on"`
	Final           Assessment    `json:"final"`
}

// ScheduleRow represents one year in the phase-in ledger
type ScheduleRow struct {
	Year             int     `json:"year"`
	Ratio            float64 `json:"ratio"`
	StandardizedSum  float64 `json:"standardized_sum"`
	OutputFloor      float64 `json:"output_floor"`
	InternalModelRWA float64 `json:"internal_model_rwa"`
	Binding          float64 `json:"binding"`
	BindingSource    string  `json:"binding_source"`
	FloorAddOn       float64 `json:"floor_add_on"`
	CumFloorAddOn    float64 `json:"cum_floor_add_on"`
}

// RankResponse represents the response from ranking entities
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked entity
type Ranking struct {
	Rank             int     `json:"rank"`
	EntityID         string  `json:"entity_id"`
	Name             string  `json:"name"`
	StandardizedSum  float64 `json:"standardized_sum"`
	OutputFloor      float64 `json:"output_floor"`
	InternalModelRWA float64 `json:"internal_model_rwa"`
	Binding          float64 `json:"binding"`
	BindingSource    string  `json:"binding_source"`
	FloorAddOn       float64 `json:"floor_add_on"`
	WorthIt          bool    `json:"worth_it"`
}

// ProfileInfo represents information about a profile preset
type ProfileInfo struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	File    string         `json:"file"`
	Figures ProfileFigures `json:"figures"`
}

// ProfileFigures contains a preset's headline numbers
type ProfileFigures struct {
	StandardizedSum  float64 `json:"standardized_sum"`
	InternalModelRWA float64 `json:"internal_model_rwa"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
