package domain

// Verdict is the three-way outcome classification of an analysis.
type Verdict string

const (
	VerdictSurvives Verdict = "SURVIVES"
	VerdictDamaged  Verdict = "DAMAGED"
	VerdictShatters Verdict = "SHATTERS"
)

// Label returns the long-form verdict used by renderers and the log,
// matching the wording the tool has always printed.
func (v Verdict) Label() string {
	switch v {
	case VerdictSurvives:
		return "ROBUST - LIKELY TO SURVIVE"
	case VerdictDamaged:
		return "DAMAGED - LIKELY TO BE COMPROMISED"
	case VerdictShatters:
		return "FRAGILE - LIKELY TO SHATTER"
	default:
		return string(v)
	}
}

// Factor names used in rationale strings.
const (
	FactorStructural = "structural"
	FactorInfill     = "infill"
	FactorMaterial   = "material"
)

// FactorBreakdown holds the three normalized factors behind a score. Each is
// scaled so 1.0 means "reference print in reference material"; comparing them
// picks the dominant contributor for the rationale.
type FactorBreakdown struct {
	Structural float64 `json:"structural"`
	Infill     float64 `json:"infill"`
	Material   float64 `json:"material"`
}

// Dominant returns the factor with the largest normalized value. Ties prefer
// structural over infill over material, so the answer is deterministic.
func (f FactorBreakdown) Dominant() string {
	switch {
	case f.Structural >= f.Infill && f.Structural >= f.Material:
		return FactorStructural
	case f.Infill >= f.Material:
		return FactorInfill
	default:
		return FactorMaterial
	}
}

// AnalysisResult is the complete outcome of one analysis. It is created
// fresh per call and never mutated; collaborators (CLI, web, log) only read
// it. The core attaches no timestamp; loggers add their own.
type AnalysisResult struct {
	Parameters PrintParameters `json:"parameters"`
	Material   MaterialProfile `json:"material"`
	Impact     ImpactScenario  `json:"impact"`

	Factors         FactorBreakdown `json:"factors"`
	ResistanceScore float64         `json:"resistance_score"`
	// Ratio is ResistanceScore divided by the scenario energy; the verdict
	// bands are cut on this value.
	Ratio     float64 `json:"ratio"`
	Verdict   Verdict `json:"verdict"`
	Rationale string  `json:"rationale"`
}
