package floor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"output-floor/internal/model"
)

func TestDefaultSchedule(t *testing.T) {
	steps := DefaultSchedule()
	if len(steps) == 0 {
		t.Fatal("default schedule is empty")
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Ratio <= steps[i-1].Ratio {
			t.Errorf("ratios must rise: step %d %v <= %v", i, steps[i].Ratio, steps[i-1].Ratio)
		}
		if steps[i].Year != steps[i-1].Year+1 {
			t.Errorf("years must be consecutive: %d after %d", steps[i].Year, steps[i-1].Year)
		}
	}
	if last := steps[len(steps)-1]; last.Ratio != DefaultRatio {
		t.Errorf("final ratio: got %v, want %v", last.Ratio, DefaultRatio)
	}
}

func TestRunSchedule(t *testing.T) {
	p := model.RWAProfile{
		CreditRWA:        100,
		EquityRWA:        20,
		OperationalRWA:   30,
		MarketRWA:        40,
		CVARWA:           10,
		InternalModelRWA: 120,
	}

	res, err := RunSchedule(p, DefaultSchedule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Ledger) != len(DefaultSchedule()) {
		t.Fatalf("ledger rows: got %d, want %d", len(res.Ledger), len(DefaultSchedule()))
	}

	cum := 0.0
	for i, row := range res.Ledger {
		if row.StandardizedSum != 200 {
			t.Errorf("row %d standardized sum: got %v, want 200", i, row.StandardizedSum)
		}
		if want := row.Ratio * 200; row.OutputFloor != want {
			t.Errorf("row %d output floor: got %v, want %v", i, row.OutputFloor, want)
		}
		if row.FloorAddOn < 0 {
			t.Errorf("row %d add-on must be >= 0, got %v", i, row.FloorAddOn)
		}
		if row.BindingSource == model.SourceInternalModel && row.FloorAddOn != 0 {
			t.Errorf("row %d: internal model binds but add-on is %v", i, row.FloorAddOn)
		}
		cum += row.FloorAddOn
		if row.CumFloorAddOn != cum {
			t.Errorf("row %d cum add-on: got %v, want %v", i, row.CumFloorAddOn, cum)
		}
	}
	if res.TotalFloorAddOn != cum {
		t.Errorf("total add-on: got %v, want %v", res.TotalFloorAddOn, cum)
	}

	// At 50% the floor (100) is below the internal model figure (120):
	// the internal model binds early in the phase-in.
	if first := res.Ledger[0]; first.BindingSource != model.SourceInternalModel {
		t.Errorf("2022 should bind on the internal model, got %q", first.BindingSource)
	}
	// At 72.5% the floor (145) exceeds it.
	if last := res.Ledger[len(res.Ledger)-1]; last.BindingSource != model.SourceOutputFloor {
		t.Errorf("final year should bind on the floor, got %q", last.BindingSource)
	}
	if res.FinalAssessment.Binding != 145 {
		t.Errorf("final binding: got %v, want 145", res.FinalAssessment.Binding)
	}
}

func TestRunSchedule_Errors(t *testing.T) {
	valid := model.RWAProfile{CreditRWA: 100, InternalModelRWA: 50}

	if _, err := RunSchedule(valid, nil); err == nil {
		t.Error("empty schedule should fail")
	}

	invalid := valid
	invalid.CreditRWA = -1
	if _, err := RunSchedule(invalid, DefaultSchedule()); err == nil {
		t.Error("invalid profile should fail")
	}
}

func TestWriteScheduleCSV(t *testing.T) {
	p := model.RWAProfile{CreditRWA: 200, InternalModelRWA: 120}
	res, err := RunSchedule(p, DefaultSchedule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := WriteScheduleCSV(path, res.Ledger); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if got, want := len(lines), len(res.Ledger)+1; got != want {
		t.Fatalf("csv lines: got %d, want %d", got, want)
	}
	if !strings.HasPrefix(lines[0], "year,ratio,standardized_sum") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2022,") {
		t.Errorf("first row should start with 2022: %s", lines[1])
	}
}
