package domain

import "fmt"

// Config is the optional per-directory configuration read from
// .prognosticator.yaml. Zero values mean "use the built-in default".
type Config struct {
	// Defaults override the extractor's fallback values for files that
	// carry no annotations.
	Defaults struct {
		InfillPercent *float64 `yaml:"infill_percent"`
		WallLineCount *int     `yaml:"wall_line_count"`
		LayerHeightMM *float64 `yaml:"layer_height_mm"`
		InfillPattern string   `yaml:"infill_pattern"`
	} `yaml:"defaults"`

	// LogPath overrides where the CSV log is written. DisableLog turns the
	// log off entirely.
	LogPath    string `yaml:"log_path"`
	DisableLog bool   `yaml:"disable_log"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config { return Config{} }

// Validate rejects values the extractor could never have produced, so typos
// in the YAML surface immediately instead of skewing every analysis.
func (c Config) Validate() error {
	d := c.Defaults
	if d.InfillPercent != nil && (*d.InfillPercent < 0 || *d.InfillPercent > 100) {
		return fmt.Errorf("defaults.infill_percent must be in [0,100], got %v", *d.InfillPercent)
	}
	if d.WallLineCount != nil && *d.WallLineCount < 0 {
		return fmt.Errorf("defaults.wall_line_count must be non-negative, got %d", *d.WallLineCount)
	}
	if d.LayerHeightMM != nil && *d.LayerHeightMM <= 0 {
		return fmt.Errorf("defaults.layer_height_mm must be positive, got %v", *d.LayerHeightMM)
	}
	if d.InfillPattern != "" && !knownPatterns[Pattern(d.InfillPattern)] {
		return fmt.Errorf("defaults.infill_pattern %q is not a supported pattern", d.InfillPattern)
	}
	return nil
}

// BaseParameters resolves the configured defaults into a full parameter set.
func (c Config) BaseParameters() PrintParameters {
	p := DefaultParameters()
	d := c.Defaults
	if d.InfillPercent != nil {
		p.InfillPercent = *d.InfillPercent
	}
	if d.WallLineCount != nil {
		p.WallLineCount = *d.WallLineCount
	}
	if d.LayerHeightMM != nil {
		p.LayerHeightMM = *d.LayerHeightMM
	}
	if d.InfillPattern != "" {
		p.InfillPattern = Pattern(d.InfillPattern)
	}
	return p
}
