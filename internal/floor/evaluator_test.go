package floor

import (
	"errors"
	"math"
	"testing"

	"output-floor/internal/model"
)

func baseProfile() model.RWAProfile {
	return model.RWAProfile{
		CreditRWA:      100,
		EquityRWA:      20,
		OperationalRWA: 30,
		MarketRWA:      40,
		CVARWA:         10,
	}
}

func TestEvaluate_WorthItExamples(t *testing.T) {
	tests := []struct {
		name        string
		internalRWA float64
		cost        float64
		wantBinding float64
		wantSource  model.BindingSource
		wantBenefit float64
		wantWorthIt bool
	}{
		{"floor-binds-model-pays", 120, 20, 145, model.SourceOutputFloor, 80, true},
		{"model-binds-not-worth-it", 150, 60, 150, model.SourceInternalModel, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			p.InternalModelRWA = tt.internalRWA
			p.InternalModelCost = tt.cost

			a, err := New().Evaluate(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.StandardizedSum != 200 {
				t.Errorf("standardized sum: got %v, want 200", a.StandardizedSum)
			}
			if a.OutputFloor != 145 {
				t.Errorf("output floor: got %v, want 145", a.OutputFloor)
			}
			if a.Binding != tt.wantBinding {
				t.Errorf("binding: got %v, want %v", a.Binding, tt.wantBinding)
			}
			if a.BindingSource != tt.wantSource {
				t.Errorf("binding source: got %q, want %q", a.BindingSource, tt.wantSource)
			}
			if a.Benefit != tt.wantBenefit {
				t.Errorf("benefit: got %v, want %v", a.Benefit, tt.wantBenefit)
			}
			if a.WorthIt != tt.wantWorthIt {
				t.Errorf("worth it: got %v, want %v", a.WorthIt, tt.wantWorthIt)
			}
		})
	}
}

func TestEvaluate_FloorFormula(t *testing.T) {
	p := baseProfile()
	p.InternalModelRWA = 120

	a, err := New().Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := DefaultRatio * a.StandardizedSum; a.OutputFloor != want {
		t.Errorf("output floor: got %v, want %v", a.OutputFloor, want)
	}
	if want := math.Max(p.InternalModelRWA, a.OutputFloor); a.Binding != want {
		t.Errorf("binding: got %v, want %v", a.Binding, want)
	}
	if want := (1 - DefaultRatio) * a.StandardizedSum; a.MaxBenefit != want {
		t.Errorf("max benefit: got %v, want %v", a.MaxBenefit, want)
	}
}

func TestEvaluate_ScalingProperty(t *testing.T) {
	base, err := New().Evaluate(baseProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, k := range []float64{0.5, 2, 4, 1024} {
		scaled, err := New().Evaluate(baseProfile().ScaleRWAs(k))
		if err != nil {
			t.Fatalf("k=%v: unexpected error: %v", k, err)
		}
		// Powers of two scale exactly in float64.
		if scaled.OutputFloor != k*base.OutputFloor {
			t.Errorf("k=%v: output floor got %v, want %v", k, scaled.OutputFloor, k*base.OutputFloor)
		}
	}

	// Non-dyadic factors scale to within rounding.
	scaled, err := New().Evaluate(baseProfile().ScaleRWAs(3.7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3.7 * base.OutputFloor
	if diff := math.Abs(scaled.OutputFloor - want); diff > 1e-9*want {
		t.Errorf("k=3.7: output floor got %v, want %v", scaled.OutputFloor, want)
	}
}

func TestEvaluate_TieGoesToInternalModel(t *testing.T) {
	p := baseProfile()
	p.InternalModelRWA = 145 // exactly the floor

	a, err := New().Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.BindingSource != model.SourceInternalModel {
		t.Errorf("tie should report internal model, got %q", a.BindingSource)
	}
	if a.Binding != 145 {
		t.Errorf("binding: got %v, want 145", a.Binding)
	}
}

func TestEvaluate_ZeroProfile(t *testing.T) {
	a, err := New().Evaluate(model.RWAProfile{})
	if err != nil {
		t.Fatalf("zero profile should be valid: %v", err)
	}
	if a.OutputFloor != 0 || a.Binding != 0 {
		t.Errorf("zero profile should yield zero floor, got %+v", a)
	}
	if a.WorthIt {
		t.Error("zero benefit should not beat zero cost")
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.RWAProfile)
		wantField string
	}{
		{"negative-credit", func(p *model.RWAProfile) { p.CreditRWA = -1 }, "credit_rwa"},
		{"nan-market", func(p *model.RWAProfile) { p.MarketRWA = math.NaN() }, "market_rwa"},
		{"inf-cost", func(p *model.RWAProfile) { p.InternalModelCost = math.Inf(1) }, "internal_model_cost"},
		{"negative-internal", func(p *model.RWAProfile) { p.InternalModelRWA = -0.001 }, "internal_model_rwa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			tt.mutate(&p)

			a, err := New().Evaluate(p)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var invalid *model.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
			}
			found := false
			for _, f := range invalid.Fields {
				if f == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("fields %v should include %q", invalid.Fields, tt.wantField)
			}
			if a != (model.Assessment{}) {
				t.Errorf("no numeric result expected on invalid input, got %+v", a)
			}
		})
	}
}

func TestNewWithRatio_Bounds(t *testing.T) {
	for _, bad := range []float64{0, -0.1, 1.01, math.NaN()} {
		if _, err := NewWithRatio(bad); err == nil {
			t.Errorf("ratio %v should be rejected", bad)
		}
	}
	eval, err := NewWithRatio(0.5)
	if err != nil {
		t.Fatalf("ratio 0.5 should be accepted: %v", err)
	}
	if eval.Ratio() != 0.5 {
		t.Errorf("ratio: got %v, want 0.5", eval.Ratio())
	}
}
