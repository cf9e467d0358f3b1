package data

import (
	"encoding/json"
	"fmt"
	"os"

	"output-floor/internal/model"
)

// Entity is one business unit in a portfolio file.
type Entity struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Profile model.RWAProfile `json:"profile"`
}

// Portfolio is a collection of entities to evaluate together.
type Portfolio struct {
	AsOf     string   `json:"as_of"` // ISO 8601 date
	Entities []Entity `json:"entities"`
}

// LoadPortfolioJSON loads a portfolio from a JSON file.
func LoadPortfolioJSON(path string) (*Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}
	var p Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file: %w", err)
	}
	return &p, nil
}

// SavePortfolioJSON writes a portfolio to a JSON file.
func SavePortfolioJSON(p *Portfolio, path string) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write portfolio file: %w", err)
	}
	return nil
}

// ByID indexes the portfolio's entities by ID. Later duplicates win.
func (p *Portfolio) ByID() map[string]Entity {
	out := map[string]Entity{}
	if p == nil {
		return out
	}
	for _, e := range p.Entities {
		out[e.ID] = e
	}
	return out
}
