package model

import (
	"fmt"
	"math"
	"strings"
)

// RWAProfile defines one bank's risk-weighted asset figures and the cost of
// running its internal models.
// Units:
// - All RWA fields: currency amount (same unit across all fields)
// - InternalModelCost: currency amount
// All fields must be finite and >= 0.
type RWAProfile struct {
	CreditRWA         float64 `json:"credit_rwa"`
	EquityRWA         float64 `json:"equity_rwa"`
	OperationalRWA    float64 `json:"operational_rwa"`
	MarketRWA         float64 `json:"market_rwa"`
	CVARWA            float64 `json:"cva_rwa"`
	InternalModelRWA  float64 `json:"internal_model_rwa"`
	InternalModelCost float64 `json:"internal_model_cost"`
}

// InvalidInputError reports every profile field that failed validation.
type InvalidInputError struct {
	Fields []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// Validate checks that every field is finite and non-negative.
// It reports all failing fields at once so a form caller can flag each one.
func (p RWAProfile) Validate() error {
	var bad []string
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			bad = append(bad, name)
		}
	}
	check("credit_rwa", p.CreditRWA)
	check("equity_rwa", p.EquityRWA)
	check("operational_rwa", p.OperationalRWA)
	check("market_rwa", p.MarketRWA)
	check("cva_rwa", p.CVARWA)
	check("internal_model_rwa", p.InternalModelRWA)
	check("internal_model_cost", p.InternalModelCost)
	if len(bad) > 0 {
		return &InvalidInputError{Fields: bad}
	}
	return nil
}

// StandardizedSum is the total standardized-approach RWA across the five
// risk categories. This is the base the output floor is applied to.
func (p RWAProfile) StandardizedSum() float64 {
	return p.CreditRWA + p.EquityRWA + p.OperationalRWA + p.MarketRWA + p.CVARWA
}

// ScaleRWAs returns a copy with the five standardized RWA inputs scaled by k.
// InternalModelRWA and InternalModelCost are left untouched.
func (p RWAProfile) ScaleRWAs(k float64) RWAProfile {
	out := p
	out.CreditRWA *= k
	out.EquityRWA *= k
	out.OperationalRWA *= k
	out.MarketRWA *= k
	out.CVARWA *= k
	return out
}
