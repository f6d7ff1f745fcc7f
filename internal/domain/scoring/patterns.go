package scoring

import "github.com/FeMonky/Impact-Prognasticator/internal/domain"

// patternMultipliers rate each infill geometry's omnidirectional impact
// resistance relative to GRID. The ordering is a static calibration table,
// not derived from mechanics: gyroid and cubic spread load in all directions,
// lines and concentric shells shear easily along their grain.
var patternMultipliers = map[domain.Pattern]float64{
	domain.PatternGrid:       1.0,
	domain.PatternLines:      0.8,
	domain.PatternTriangles:  1.2,
	domain.PatternCubic:      1.1,
	domain.PatternGyroid:     1.3,
	domain.PatternConcentric: 0.9,
}

// PatternMultiplier returns the strength multiplier for a pattern. Patterns
// outside the table rate as GRID.
func PatternMultiplier(p domain.Pattern) float64 {
	if m, ok := patternMultipliers[p]; ok {
		return m
	}
	return patternMultipliers[domain.PatternGrid]
}
