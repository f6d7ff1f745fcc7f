// Package scoring turns print parameters and static material/impact tables
// into a resistance score and a three-way verdict.
//
// The numbers are a comparative heuristic, not physics. The weighting
// constants below are the model's entire value and are preserved as-is from
// the original calibration; do not re-derive them.
package scoring

import (
	"fmt"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// Calibration constants. Walls are normalized against a 5-wall baseline,
// layer adhesion against a 0.5 mm "very weak" layer height.
const (
	infillWeight        = 0.4
	wallWeight          = 0.5
	layerAdhesionWeight = 0.1

	wallBaseline = 5.0
	layerRefMM   = 0.5
)

// Verdict thresholds on the resistance/energy ratio. A tie at a boundary
// resolves to the lower-severity band.
const (
	surviveRatio = 1.5
	damagedRatio = 0.8
)

// Score computes the resistance of a print against an impact preset. It is a
// pure function: identical inputs always produce an identical result. It
// fails only on an unknown material or impact identifier, before any
// computation.
func Score(params domain.PrintParameters, material, impactLevel string) (*domain.AnalysisResult, error) {
	mat, err := domain.LookupMaterial(material)
	if err != nil {
		return nil, err
	}
	scenario, err := domain.LookupImpact(impactLevel)
	if err != nil {
		return nil, err
	}

	mult := PatternMultiplier(params.InfillPattern)

	// Weighted structural sum, exactly as calibrated: infill density plus
	// normalized wall count plus layer adhesion.
	infillTerm := params.InfillPercent / 100 * infillWeight
	wallTerm := float64(params.WallLineCount) / wallBaseline * wallWeight
	layerTerm := (1 - params.LayerHeightMM/layerRefMM) * layerAdhesionWeight
	structuralSum := infillTerm + wallTerm + layerTerm

	resistance := structuralSum * mat.TensileStrength * mat.ImpactStrength * mult

	factors := breakdown(infillTerm, wallTerm, layerTerm, mult, mat)

	ratio := resistance / scenario.EnergyJ
	verdict := classify(ratio)

	return &domain.AnalysisResult{
		Parameters:      params,
		Material:        mat,
		Impact:          scenario,
		Factors:         factors,
		ResistanceScore: resistance,
		Ratio:           ratio,
		Verdict:         verdict,
		Rationale:       rationale(factors, verdict, scenario),
	}, nil
}

// breakdown normalizes the three contributions so they are comparable: the
// structural and infill terms against their maximum weight share, the
// material against the PLA reference product.
func breakdown(infillTerm, wallTerm, layerTerm, mult float64, mat domain.MaterialProfile) domain.FactorBreakdown {
	ref, _ := domain.LookupMaterial(domain.ReferenceMaterial)
	refProduct := ref.TensileStrength * ref.ImpactStrength

	return domain.FactorBreakdown{
		Structural: (wallTerm + layerTerm) / (wallWeight + layerAdhesionWeight),
		Infill:     infillTerm * mult / infillWeight,
		Material:   mat.TensileStrength * mat.ImpactStrength / refProduct,
	}
}

func classify(ratio float64) domain.Verdict {
	switch {
	case ratio >= surviveRatio:
		return domain.VerdictSurvives
	case ratio >= damagedRatio:
		return domain.VerdictDamaged
	default:
		return domain.VerdictShatters
	}
}

func rationale(f domain.FactorBreakdown, v domain.Verdict, s domain.ImpactScenario) string {
	var outcome string
	switch v {
	case domain.VerdictSurvives:
		outcome = "resistance comfortably exceeds the impact energy"
	case domain.VerdictDamaged:
		outcome = "resistance and impact energy are comparable"
	default:
		outcome = "impact energy dominates the resistance"
	}

	var detail string
	switch f.Dominant() {
	case domain.FactorStructural:
		detail = "walls and layer adhesion carry most of the score"
	case domain.FactorInfill:
		detail = "infill density and pattern carry most of the score"
	default:
		detail = "material properties carry most of the score"
	}

	return fmt.Sprintf("Against a %s of %.0f J, %s; %s.",
		s.Character, s.EnergyJ, outcome, detail)
}
