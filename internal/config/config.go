package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"output-floor/internal/floor"
	"output-floor/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: floor settings. Ratio 0 means "use the fully phased-in default".
	Floor FloorConfig `yaml:"floor"`

	// Optional: load an RWA profile from a separate YAML (e.g. examples/profiles/*.yaml).
	// If both ProfileFile and Profile are provided, Profile overrides ProfileFile.
	ProfileFile string        `yaml:"profile_file"`
	Profile     ProfileConfig `yaml:"profile"`
}

type FloorConfig struct {
	Ratio float64 `yaml:"ratio"`
	// Schedule overrides the default Basel phase-in timetable when non-empty.
	Schedule []ScheduleStepConfig `yaml:"schedule"`
}

type ScheduleStepConfig struct {
	Year  int     `yaml:"year"`
	Ratio float64 `yaml:"ratio"`
}

type ProfileConfig struct {
	Name              string  `yaml:"name"`
	CreditRWA         float64 `yaml:"credit_rwa"`
	EquityRWA         float64 `yaml:"equity_rwa"`
	OperationalRWA    float64 `yaml:"operational_rwa"`
	MarketRWA         float64 `yaml:"market_rwa"`
	CVARWA            float64 `yaml:"cva_rwa"`
	InternalModelRWA  float64 `yaml:"internal_model_rwa"`
	InternalModelCost float64 `yaml:"internal_model_cost"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If profile_file is set, load it and merge in any explicit overrides from c.Profile.
	if c.ProfileFile != "" {
		profilePath := c.ProfileFile
		if !filepath.IsAbs(profilePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), profilePath)
			if _, err := os.Stat(cand); err == nil {
				profilePath = cand
			}
		}
		loaded, err := LoadProfileFile(profilePath)
		if err != nil {
			return nil, err
		}
		c.Profile = MergeProfile(loaded, c.Profile)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Floor.Ratio != 0 {
		if _, err := floor.NewWithRatio(c.Floor.Ratio); err != nil {
			return fmt.Errorf("floor config invalid: %w", err)
		}
	}
	for i, s := range c.Floor.Schedule {
		if _, err := floor.NewWithRatio(s.Ratio); err != nil {
			return fmt.Errorf("floor schedule step %d invalid: %w", i, err)
		}
	}
	if err := c.Profile.ToModelProfile().Validate(); err != nil {
		return fmt.Errorf("profile config invalid: %w", err)
	}
	return nil
}

// Ratio resolves the configured floor ratio, defaulting to the fully
// phased-in 72.5%.
func (c *Config) Ratio() float64 {
	if c.Floor.Ratio != 0 {
		return c.Floor.Ratio
	}
	return floor.DefaultRatio
}

// Schedule resolves the phase-in timetable, defaulting to the BCBS one.
func (c *Config) Schedule() []floor.PhaseStep {
	if len(c.Floor.Schedule) == 0 {
		return floor.DefaultSchedule()
	}
	steps := make([]floor.PhaseStep, len(c.Floor.Schedule))
	for i, s := range c.Floor.Schedule {
		steps[i] = floor.PhaseStep{Year: s.Year, Ratio: s.Ratio}
	}
	return steps
}

func (p ProfileConfig) ToModelProfile() model.RWAProfile {
	return model.RWAProfile{
		CreditRWA:         p.CreditRWA,
		EquityRWA:         p.EquityRWA,
		OperationalRWA:    p.OperationalRWA,
		MarketRWA:         p.MarketRWA,
		CVARWA:            p.CVARWA,
		InternalModelRWA:  p.InternalModelRWA,
		InternalModelCost: p.InternalModelCost,
	}
}

type profileFileWrapper struct {
	Profile ProfileConfig `yaml:"profile"`
}

// LoadProfileFile reads a standalone profile preset (examples/profiles/*.yaml).
func LoadProfileFile(path string) (ProfileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProfileConfig{}, err
	}
	var w profileFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ProfileConfig{}, err
	}
	return w.Profile, nil
}

// MergeProfile overlays non-zero fields from override onto base.
// This is used when loading a profile file and then applying overrides from
// the config or an API request.
func MergeProfile(base, override ProfileConfig) ProfileConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CreditRWA != 0 {
		out.CreditRWA = override.CreditRWA
	}
	if override.EquityRWA != 0 {
		out.EquityRWA = override.EquityRWA
	}
	if override.OperationalRWA != 0 {
		out.OperationalRWA = override.OperationalRWA
	}
	if override.MarketRWA != 0 {
		out.MarketRWA = override.MarketRWA
	}
	if override.CVARWA != 0 {
		out.CVARWA = override.CVARWA
	}
	if override.InternalModelRWA != 0 {
		out.InternalModelRWA = override.InternalModelRWA
	}
	if override.InternalModelCost != 0 {
		out.InternalModelCost = override.InternalModelCost
	}
	return out
}
