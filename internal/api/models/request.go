package models

// EvaluateRequest represents the request body for a single floor evaluation
type EvaluateRequest struct {
	// ProfileFile names a preset in the profile directory (without .yaml).
	// Fields set in Profile override the preset.
	ProfileFile string        `json:"profile_file,omitempty"`
	Profile     ProfileConfig `json:"profile,omitempty"`
	// FloorRatio overrides the fully phased-in 72.5% when non-zero.
	FloorRatio float64 `json:"floor_ratio,omitempty"`
}

// ProfileConfig defines RWA profile parameters
type ProfileConfig struct {
	Name              string  `json:"name,omitempty"`
	CreditRWA         float64 `json:"credit_rwa"`
	EquityRWA         float64 `json:"equity_rwa"`
	OperationalRWA    float64 `json:"operational_rwa"`
	MarketRWA         float64 `json:"market_rwa"`
	CVARWA            float64 `json:"cva_rwa"`
	InternalModelRWA  float64 `json:"internal_model_rwa"`
	InternalModelCost float64 `json:"internal_model_cost"`
}

// CompareRequest represents a request to evaluate multiple profile variations
type CompareRequest struct {
	ProfileFile string             `json:"profile_file,omitempty"`
	BaseProfile ProfileConfig      `json:"base_profile,omitempty"`
	Variations  []ProfileVariation `json:"variations" binding:"required"`
	FloorRatio  float64            `json:"floor_ratio,omitempty"`
}

// ProfileVariation defines a variation to evaluate. Non-zero fields overlay
// the base profile.
type ProfileVariation struct {
	Name    string        `json:"name" binding:"required"`
	Profile ProfileConfig `json:"profile"`
}

// ScheduleRequest represents query parameters for a phase-in schedule run
type ScheduleRequest struct {
	ProfileFile       string  `form:"profile_file"`
	CreditRWA         float64 `form:"credit_rwa"`
	EquityRWA         float64 `form:"equity_rwa"`
	OperationalRWA    float64 `form:"operational_rwa"`
	MarketRWA         float64 `form:"market_rwa"`
	CVARWA            float64 `form:"cva_rwa"`
	InternalModelRWA  float64 `form:"internal_model_rwa"`
	InternalModelCost float64 `form:"internal_model_cost"`
}

// RankRequest represents a request to rank portfolio entities by floor impact
type RankRequest struct {
	Entities   []EntityConfig `json:"entities" binding:"required"`
	FloorRatio float64        `json:"floor_ratio,omitempty"`
	Limit      int            `json:"limit,omitempty"` // 0 = all
}

// EntityConfig is one business unit in a rank request
type EntityConfig struct {
	ID      string        `json:"id" binding:"required"`
	Name    string        `json:"name,omitempty"`
	Profile ProfileConfig `json:"profile" binding:"required"`
}
