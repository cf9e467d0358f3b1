package handlers

import (
	"log"
	"os"
	"path/filepath"

	"output-floor/internal/api/models"
	"output-floor/internal/config"
	"output-floor/internal/floor"
	"output-floor/internal/model"
)

// profileDir resolves the preset directory: PROFILE_DIR env var, falling back
// to examples/profiles under the working directory.
func profileDir() string {
	if dir := os.Getenv("PROFILE_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/profiles"
	}
	return filepath.Join(wd, "examples", "profiles")
}

// resolveProfile builds the profile to evaluate: the named preset (if any)
// with request fields overlaid.
func resolveProfile(profileFile string, override models.ProfileConfig) (model.RWAProfile, error) {
	merged, err := mergeRequestProfile(profileFile, override)
	if err != nil {
		return model.RWAProfile{}, err
	}
	return merged.ToModelProfile(), nil
}

func mergeRequestProfile(profileFile string, override models.ProfileConfig) (config.ProfileConfig, error) {
	cfg := toConfigProfile(override)
	if profileFile == "" {
		return cfg, nil
	}

	// profile_file should be just the preset name (e.g. "universal_bank");
	// files are always looked up in the profile directory.
	path := filepath.Join(profileDir(), profileFile+".yaml")
	loaded, err := config.LoadProfileFile(path)
	if err != nil {
		log.Printf("handlers: failed to load profile file %s: %v", path, err)
		return config.ProfileConfig{}, err
	}
	return config.MergeProfile(loaded, cfg), nil
}

func toConfigProfile(p models.ProfileConfig) config.ProfileConfig {
	return config.ProfileConfig{
		Name:              p.Name,
		CreditRWA:         p.CreditRWA,
		EquityRWA:         p.EquityRWA,
		OperationalRWA:    p.OperationalRWA,
		MarketRWA:         p.MarketRWA,
		CVARWA:            p.CVARWA,
		InternalModelRWA:  p.InternalModelRWA,
		InternalModelCost: p.InternalModelCost,
	}
}

// evaluatorFor builds an evaluator for an optional request ratio.
// Zero means "use the fully phased-in default".
func evaluatorFor(ratio float64) (*floor.Evaluator, error) {
	if ratio == 0 {
		return floor.New(), nil
	}
	return floor.NewWithRatio(ratio)
}

func toAssessmentModel(a model.Assessment) models.Assessment {
	return models.Assessment{
		FloorRatio:      a.FloorRatio,
		StandardizedSum: a.StandardizedSum,
		OutputFloor:     a.OutputFloor,
		Binding:         a.Binding,
		BindingSource:   string(a.BindingSource),
		Benefit:         a.Benefit,
		MaxBenefit:      a.MaxBenefit,
		WorthIt:         a.WorthIt,
		Verdict:         a.Verdict,
	}
}
