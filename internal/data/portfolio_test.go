package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPortfolioJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	content := `{
  "as_of": "2026-06-30",
  "entities": [
    {"id": "a", "name": "Bank A", "profile": {"credit_rwa": 100, "internal_model_rwa": 60}},
    {"id": "b", "name": "Bank B", "profile": {"credit_rwa": 200, "internal_model_rwa": 120}}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := LoadPortfolioJSON(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.AsOf != "2026-06-30" {
		t.Errorf("as_of: got %q", p.AsOf)
	}
	if len(p.Entities) != 2 {
		t.Fatalf("entities: got %d, want 2", len(p.Entities))
	}
	if p.Entities[0].Profile.CreditRWA != 100 {
		t.Errorf("profile fields not parsed: %+v", p.Entities[0].Profile)
	}

	byID := p.ByID()
	if byID["b"].Name != "Bank B" {
		t.Errorf("ByID lookup: got %+v", byID["b"])
	}

	if _, err := LoadPortfolioJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}
